/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package version_test -source=controller.go

package version

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/vctrust/pkg/canonical"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	Version       string
	ServerVersion string
	// HashAlgorithm is the digest used when a request does not name one.
	HashAlgorithm canonical.Algorithm
}

type Controller struct {
	version       string
	serverVersion string
	hashAlgorithm canonical.Algorithm
}

type versionResponse struct {
	Version string `json:"version"`
}

type serverVersionResponse struct {
	Version string `json:"version"`
}

type canonicalizationResponse struct {
	Version           canonical.Version   `json:"version"`
	SupportedVersions []canonical.Version `json:"supportedVersions"`
	HashAlgorithm     canonical.Algorithm `json:"hashAlgorithm"`
}

func NewController(router router, cfg Config) *Controller {
	c := &Controller{
		version:       cfg.Version,
		serverVersion: cfg.ServerVersion,
		hashAlgorithm: cfg.HashAlgorithm,
	}

	if c.hashAlgorithm == "" {
		c.hashAlgorithm = canonical.SHA256
	}

	router.GET("/version", c.Version)
	router.GET("/version/system", c.ServerVersion)
	router.GET("/version/canonicalization", c.Canonicalization)

	return c
}

func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Version: c.version})
}

func (c *Controller) ServerVersion(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, serverVersionResponse{Version: c.serverVersion})
}

// Canonicalization reports the canonicalization version new hashes are produced with.
func (c *Controller) Canonicalization(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, canonicalizationResponse{
		Version:           canonical.VersionCurrent,
		SupportedVersions: []canonical.Version{canonical.VersionLegacy, canonical.VersionCurrent},
		HashAlgorithm:     c.hashAlgorithm,
	})
}
