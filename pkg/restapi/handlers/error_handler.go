/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/trustbloc/vctrust/internal/logfields"
	"github.com/trustbloc/vctrust/pkg/restapi/resterr"
)

// TraceIDHeader carries the trace ID of a failed request so clients can quote it.
const TraceIDHeader = "X-Trace-Id"

var logger = log.New("rest-err")

// HTTPErrorHandler renders handler errors as {"code": ..., "message": ...}. Errors that are
// neither echo nor rest errors are classified by resterr.FromDomainError.
func HTTPErrorHandler(tracer trace.Tracer) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		ctx, span := tracer.Start(c.Request().Context(), "HTTPErrorHandler")
		defer span.End()

		code, message := processError(err, c.Path())

		span.SetStatus(codes.Error, fmt.Sprint(message))
		span.RecordError(err)

		if sc := span.SpanContext(); sc.HasTraceID() {
			c.Response().Header().Set(TraceIDHeader, sc.TraceID().String())
		}

		fields := []zap.Field{
			log.WithURL(c.Request().RequestURI),
			log.WithHTTPStatus(code),
			logfields.WithAdditionalMessage(fmt.Sprint(message)),
		}

		if code >= http.StatusInternalServerError {
			logger.Errorc(ctx, "HTTP request failed", fields...)
		} else {
			logger.Debugc(ctx, "HTTP request rejected", fields...)
		}

		if c.Response().Committed {
			return
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}

		if err != nil {
			logger.Errorc(ctx, "write http response", log.WithError(err))
		}
	}
}

func processError(err error, path string) (int, interface{}) {
	var echoHTTPError *echo.HTTPError
	if errors.As(err, &echoHTTPError) {
		message := echoHTTPError.Message
		if echoHTTPError.Internal != nil {
			message = err.Error()
		}

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"message": strMsg,
			}
		}

		return echoHTTPError.Code, message
	}

	return resterr.FromDomainError(resterr.RESTComponent, path, err).HTTPCodeMsg()
}
