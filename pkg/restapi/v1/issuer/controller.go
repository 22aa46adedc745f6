/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package issuer_test -source=controller.go -mock_names router=MockRouter,issuanceService=MockIssuanceService,statusService=MockStatusService

package issuer

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/vctrust/pkg/restapi/resterr"
	"github.com/trustbloc/vctrust/pkg/restapi/v1/util"
	"github.com/trustbloc/vctrust/pkg/service/issuance"
	"github.com/trustbloc/vctrust/pkg/service/statuslist"
)

const (
	credentialsEndpoint = "/credentials"
	hashParam           = "hash"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type issuanceService interface {
	Issue(ctx context.Context, req *issuance.Request) (*issuance.Result, error)
}

type statusService interface {
	Revoke(ctx context.Context, credentialHash, reason string) (*statuslist.Status, error)
	Reinstate(ctx context.Context, credentialHash string) (*statuslist.Status, error)
	Get(ctx context.Context, credentialHash string) (*statuslist.Status, error)
}

type Config struct {
	IssuanceService issuanceService
	StatusService   statusService
}

// Controller for issuer REST API.
type Controller struct {
	issuanceService issuanceService
	statusService   statusService
}

// RevokeRequest is the body of a revocation.
type RevokeRequest struct {
	Reason string `json:"reason,omitempty"`
}

// NewController creates a new controller for issuer REST API.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		issuanceService: config.IssuanceService,
		statusService:   config.StatusService,
	}

	router.POST(credentialsEndpoint, c.PostCredentials)
	router.GET(credentialsEndpoint+"/:"+hashParam+"/status", c.GetCredentialStatus)
	router.POST(credentialsEndpoint+"/:"+hashParam+"/revoke", c.PostRevokeCredential)
	router.POST(credentialsEndpoint+"/:"+hashParam+"/reinstate", c.PostReinstateCredential)

	return c
}

// PostCredentials issues a credential and queues its hash for anchoring.
// POST /credentials.
func (c *Controller) PostCredentials(ctx echo.Context) error {
	var body issuance.Request

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	result, err := c.issuanceService.Issue(ctx.Request().Context(), &body)
	if err != nil {
		return resterr.FromDomainError(resterr.IssuanceSvcComponent, "Issue", err)
	}

	return util.WriteOutputWithCode(http.StatusCreated, ctx)(result, nil)
}

// GetCredentialStatus returns the status list entry of a credential.
// GET /credentials/{hash}/status.
func (c *Controller) GetCredentialStatus(ctx echo.Context) error {
	st, err := c.statusService.Get(ctx.Request().Context(), ctx.Param(hashParam))
	if err != nil {
		return resterr.FromDomainError(resterr.StatusListSvcComponent, "Get", err)
	}

	return util.WriteOutput(ctx)(st, nil)
}

// PostRevokeCredential marks a credential as revoked.
// POST /credentials/{hash}/revoke.
func (c *Controller) PostRevokeCredential(ctx echo.Context) error {
	var body RevokeRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	st, err := c.statusService.Revoke(ctx.Request().Context(), ctx.Param(hashParam), body.Reason)
	if err != nil {
		return resterr.FromDomainError(resterr.StatusListSvcComponent, "Revoke", err)
	}

	return util.WriteOutput(ctx)(st, nil)
}

// PostReinstateCredential clears the revocation of a credential.
// POST /credentials/{hash}/reinstate.
func (c *Controller) PostReinstateCredential(ctx echo.Context) error {
	st, err := c.statusService.Reinstate(ctx.Request().Context(), ctx.Param(hashParam))
	if err != nil {
		return resterr.FromDomainError(resterr.StatusListSvcComponent, "Reinstate", err)
	}

	return util.WriteOutput(ctx)(st, nil)
}
