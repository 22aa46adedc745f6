/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/vctrust/pkg/restapi/resterr"
)

const (
	requestBody = "requestBody"
)

func ReadBody(ctx echo.Context, body interface{}) error {
	if err := ctx.Bind(body); err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, requestBody, err)
	}
	return nil
}

// PathUint parses the named path parameter as an unsigned integer.
func PathUint(ctx echo.Context, name string) (uint64, error) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, resterr.NewValidationError(resterr.InvalidValue, name,
			fmt.Errorf("not an unsigned integer: %q", ctx.Param(name)))
	}

	return v, nil
}

// QueryUint parses the named query parameter, returning def when it is absent.
func QueryUint(ctx echo.Context, name string, def uint64) (uint64, error) {
	s := ctx.QueryParam(name)
	if s == "" {
		return def, nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, resterr.NewValidationError(resterr.InvalidValue, name,
			fmt.Errorf("not an unsigned integer: %q", s))
	}

	return v, nil
}

func WriteOutput(ctx echo.Context) func(output interface{}, err error) error {
	return WriteOutputWithCode(http.StatusOK, ctx)
}

func WriteOutputWithCode(code int, ctx echo.Context) func(output interface{}, err error) error {
	return func(output interface{}, err error) error {
		if err != nil {
			return err
		}

		b, err := json.Marshal(output)
		if err != nil {
			return err
		}

		return ctx.JSONBlob(code, b)
	}
}
