/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mw

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const header = "X-API-Key"

// probePaths are never guarded so orchestrators can reach them without credentials.
var probePaths = []string{"/healthcheck", "/ready"} //nolint:gochecknoglobals

// APIKeyAuth returns a middleware that authenticates requests using the API key from X-API-Key header.
// It guards operator endpoints: dead-letter inspection, replay, log append and log level changes.
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isProbe(c.Request().URL.Path) {
				return next(c)
			}

			apiKeyHeader := c.Request().Header.Get(header)
			if subtle.ConstantTimeCompare([]byte(apiKeyHeader), []byte(apiKey)) != 1 {
				return &echo.HTTPError{
					Code:    http.StatusUnauthorized,
					Message: "Unauthorized",
				}
			}

			return next(c)
		}
	}
}

func isProbe(path string) bool {
	path = strings.ToLower(path)

	for _, p := range probePaths {
		if strings.HasSuffix(path, p) {
			return true
		}
	}

	return false
}
