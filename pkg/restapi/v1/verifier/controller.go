/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package verifier_test -source=controller.go -mock_names router=MockRouter,verificationService=MockVerificationService,witnessService=MockWitnessService

package verifier

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/restapi/resterr"
	"github.com/trustbloc/vctrust/pkg/restapi/v1/util"
	"github.com/trustbloc/vctrust/pkg/service/issuance"
	"github.com/trustbloc/vctrust/pkg/service/verification"
	"github.com/trustbloc/vctrust/pkg/service/witness"
)

const (
	verificationsEndpoint = "/verifications"
	proofsEndpoint        = "/proofs"
	witnessEndpoint       = "/witness"
	hashParam             = "hash"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type verificationService interface {
	SubmitVerification(ctx context.Context, req *verification.Request) (*verification.Decision, error)
}

type witnessService interface {
	Compose(ctx context.Context, credentialHash string) (*witness.RevocationWitness, error)
}

type Config struct {
	VerificationService verificationService
	WitnessService      witnessService
}

// Controller for verifier REST API.
type Controller struct {
	verificationService verificationService
	witnessService      witnessService
}

// ProofMetadataRequest carries the payload to hash.
type ProofMetadataRequest struct {
	Payload json.RawMessage `json:"payload"`
}

// VerifyProofRequest carries a payload and the proof metadata declared for it.
type VerifyProofRequest struct {
	Payload json.RawMessage          `json:"payload"`
	Proof   *canonical.ProofMetadata `json:"proof"`
}

// NewController creates a new controller for verifier REST API.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		verificationService: config.VerificationService,
		witnessService:      config.WitnessService,
	}

	router.POST(verificationsEndpoint, c.PostVerifications)
	router.POST(proofsEndpoint+"/metadata", c.PostProofMetadata)
	router.POST(proofsEndpoint+"/verify", c.PostVerifyProof)
	router.GET(witnessEndpoint+"/:"+hashParam, c.GetWitness)

	return c
}

// PostVerifications decides whether a presented credential is trusted. Every structurally
// parseable request gets a decision; only input errors are returned as errors.
// POST /verifications.
func (c *Controller) PostVerifications(ctx echo.Context) error {
	var body verification.Request

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	decision, err := c.verificationService.SubmitVerification(ctx.Request().Context(), &body)
	if err != nil {
		return resterr.FromDomainError(resterr.VerificationSvcComponent, "SubmitVerification", err)
	}

	return util.WriteOutput(ctx)(decision, nil)
}

// PostProofMetadata hashes a payload under the current canonicalization.
// POST /proofs/metadata.
func (c *Controller) PostProofMetadata(ctx echo.Context) error {
	var body ProofMetadataRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if len(body.Payload) == 0 {
		return resterr.NewValidationError(resterr.InvalidValue, "payload", errors.New("payload is required"))
	}

	meta, err := issuance.GenerateProofMetadata(body.Payload)
	if err != nil {
		return resterr.FromDomainError(resterr.CanonicalizerComponent, "GenerateProofMetadata", err)
	}

	return util.WriteOutput(ctx)(meta, nil)
}

// PostVerifyProof checks a payload against declared proof metadata.
// POST /proofs/verify.
func (c *Controller) PostVerifyProof(ctx echo.Context) error {
	var body VerifyProofRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if len(body.Payload) == 0 {
		return resterr.NewValidationError(resterr.InvalidValue, "payload", errors.New("payload is required"))
	}

	if body.Proof == nil {
		return resterr.NewValidationError(resterr.InvalidValue, "proof", errors.New("proof is required"))
	}

	result, err := issuance.VerifyProof(body.Payload, body.Proof)
	if err != nil {
		return resterr.FromDomainError(resterr.CanonicalizerComponent, "VerifyProof", err)
	}

	return util.WriteOutput(ctx)(result, nil)
}

// GetWitness returns the revocation witness of a credential hash.
// GET /witness/{hash}.
func (c *Controller) GetWitness(ctx echo.Context) error {
	w, err := c.witnessService.Compose(ctx.Request().Context(), ctx.Param(hashParam))
	if err != nil {
		return resterr.FromDomainError(resterr.WitnessSvcComponent, "Compose", err)
	}

	return util.WriteOutput(ctx)(w, nil)
}
