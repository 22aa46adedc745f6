/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
	"github.com/trustbloc/vctrust/pkg/restapi/resterr"
)

//go:generate mockgen -destination controller_mocks_test.go -package logapi_test -source=controller.go

const maxSpecSize = 4096

var logger = log.New("logapi")

// Controller serves the runtime log level endpoints.
type Controller struct{}

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type logLevelResponse struct {
	Module string `json:"module,omitempty"`
	Level  string `json:"level"`
}

// NewController registers GET and POST /loglevels. The middleware, typically API key auth,
// guards only the POST route.
func NewController(
	router router,
	m ...echo.MiddlewareFunc,
) *Controller {
	c := &Controller{}

	router.GET("/loglevels", c.GetLogLevel)
	router.POST("/loglevels", c.PostLogLevels, m...)

	return c
}

// GetLogLevel returns the level of the module named by the module query parameter, or the
// default level.
// (GET /loglevels).
func (c *Controller) GetLogLevel(ctx echo.Context) error {
	module := ctx.QueryParam("module")

	return ctx.JSON(http.StatusOK, logLevelResponse{
		Module: module,
		Level:  log.GetLevel(module).String(),
	})
}

// PostLogLevels applies a log spec such as anchor-service=DEBUG:INFO.
// (POST /loglevels).
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxSpecSize))
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	spec := strings.TrimSpace(string(body))
	if spec == "" {
		return resterr.NewValidationError(resterr.InvalidValue, "logLevels", errors.New("log spec is empty"))
	}

	if err = log.SetSpec(spec); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "logLevels",
			fmt.Errorf("failed to set log spec: %w", err))
	}

	logger.Info("Log levels modified", logfields.WithUserLogLevel(spec))

	return ctx.NoContent(http.StatusOK)
}
