/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package healthcheck_test -source=controller.go -mock_names router=MockRouter

package healthcheck

import (
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"

	"github.com/trustbloc/vctrust/pkg/observability/health/healthutil"
)

const readinessTimeout = 5 * time.Second

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// HealthCheckResponse is the liveness response.
type HealthCheckResponse struct {
	Status      string     `json:"status"`
	CurrentTime *time.Time `json:"currentTime,omitempty"`
}

type Config struct {
	// Checks are the backend probes evaluated by GET /ready.
	Checks []health.Check
	// BreakerStates is optional. It reports the circuit breaker of every downstream endpoint.
	BreakerStates func() map[string]string
	Now           func() time.Time
}

// Controller for health check API.
type Controller struct {
	now   func() time.Time
	ready http.Handler
}

func NewController(router router, config *Config) *Controller {
	now := config.Now
	if now == nil {
		now = time.Now
	}

	responseTimes := healthutil.NewResponseTimes()

	checkerOpts := []health.CheckerOption{health.WithTimeout(readinessTimeout)}

	for _, check := range config.Checks {
		checkerOpts = append(checkerOpts, health.WithCheck(check))
	}

	checkerOpts = append(checkerOpts, health.WithInterceptors(responseTimes.Interceptor()))

	checker := health.NewChecker(checkerOpts...)

	var writerOpts []healthutil.WriterOpt

	if config.BreakerStates != nil {
		writerOpts = append(writerOpts, healthutil.WithBreakerStates(config.BreakerStates))
	}

	c := &Controller{
		now: now,
		ready: health.NewHandler(checker,
			health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes, writerOpts...))),
	}

	router.GET("/healthcheck", c.GetHealthcheck)
	router.GET("/ready", c.GetReady)

	return c
}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	currentTime := c.now()

	return ctx.JSON(http.StatusOK, HealthCheckResponse{Status: "success", CurrentTime: &currentTime})
}

// GetReady reports whether every configured backend is reachable.
// GET /ready.
func (c *Controller) GetReady(ctx echo.Context) error {
	return echo.WrapHandler(c.ready)(ctx)
}
