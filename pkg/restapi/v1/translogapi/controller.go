/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package translogapi_test -source=controller.go -mock_names router=MockRouter,transparencyLog=MockTransparencyLog

package translogapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/vctrust/pkg/restapi/resterr"
	"github.com/trustbloc/vctrust/pkg/restapi/v1/util"
	"github.com/trustbloc/vctrust/pkg/translog"
)

const (
	logEndpoint = "/log"
	indexParam  = "index"

	// maxPageSize bounds GET /log/entries.
	maxPageSize = 1000
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type transparencyLog interface {
	Append(ctx context.Context, entryType translog.EntryType, payload interface{}) (*translog.Entry, error)
	Get(ctx context.Context, index uint64) (*translog.Entry, error)
	List(ctx context.Context, from, to uint64) ([]*translog.Entry, error)
	GetInclusionProof(ctx context.Context, index uint64) (*translog.InclusionProof, error)
	VerifyIntegrity(ctx context.Context, from, to uint64) (*translog.IntegrityReport, error)
	Checkpoint() *translog.Checkpoint
}

type Config struct {
	TransparencyLog transparencyLog
	// AppendMiddleware guards POST /log/entries.
	AppendMiddleware []echo.MiddlewareFunc
}

// Controller for transparency log REST API.
type Controller struct {
	log transparencyLog
}

// AppendRequest is an entry to append.
type AppendRequest struct {
	EntryType translog.EntryType `json:"entryType"`
	Payload   json.RawMessage    `json:"payload"`
}

// VerifyInclusionRequest carries a proof and, optionally, the entry it is claimed to cover.
type VerifyInclusionRequest struct {
	Proof *translog.InclusionProof `json:"proof"`
	Entry *translog.Entry          `json:"entry,omitempty"`
}

// VerifyInclusionResponse is the outcome of an inclusion check.
type VerifyInclusionResponse struct {
	Valid bool `json:"valid"`
}

// EntriesResponse is a page of log entries.
type EntriesResponse struct {
	TreeSize uint64            `json:"treeSize"`
	Entries  []*translog.Entry `json:"entries"`
}

// NewController creates a new controller for transparency log REST API.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		log: config.TransparencyLog,
	}

	router.POST(logEndpoint+"/entries", c.PostEntries, config.AppendMiddleware...)
	router.GET(logEndpoint+"/entries", c.GetEntries)
	router.GET(logEndpoint+"/entries/:"+indexParam, c.GetEntry)
	router.GET(logEndpoint+"/entries/:"+indexParam+"/proof", c.GetInclusionProof)
	router.POST(logEndpoint+"/proofs/verify", c.PostVerifyInclusion)
	router.GET(logEndpoint+"/integrity", c.GetIntegrity)
	router.GET(logEndpoint+"/checkpoint", c.GetCheckpoint)

	return c
}

// PostEntries appends an entry.
// POST /log/entries.
func (c *Controller) PostEntries(ctx echo.Context) error {
	var body AppendRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if body.EntryType == "" {
		return resterr.NewValidationError(resterr.InvalidValue, "entryType", errors.New("entry type is required"))
	}

	if len(body.Payload) == 0 {
		return resterr.NewValidationError(resterr.InvalidValue, "payload", errors.New("payload is required"))
	}

	e, err := c.log.Append(ctx.Request().Context(), body.EntryType, body.Payload)
	if err != nil {
		return resterr.FromDomainError(resterr.TransparencyLogComponent, "Append", err)
	}

	return util.WriteOutputWithCode(http.StatusCreated, ctx)(e, nil)
}

// GetEntries returns entries in [from, to). Pages hold at most maxPageSize entries.
// GET /log/entries.
func (c *Controller) GetEntries(ctx echo.Context) error {
	from, err := util.QueryUint(ctx, "from", 0)
	if err != nil {
		return err
	}

	treeSize := c.log.Checkpoint().TreeSize

	to, err := util.QueryUint(ctx, "to", treeSize)
	if err != nil {
		return err
	}

	if to > from+maxPageSize {
		to = from + maxPageSize
	}

	if to == 0 {
		return util.WriteOutput(ctx)(&EntriesResponse{TreeSize: treeSize, Entries: []*translog.Entry{}}, nil)
	}

	entries, err := c.log.List(ctx.Request().Context(), from, to)
	if err != nil {
		return resterr.FromDomainError(resterr.TransparencyLogComponent, "List", err)
	}

	return util.WriteOutput(ctx)(&EntriesResponse{TreeSize: treeSize, Entries: entries}, nil)
}

// GetEntry returns the entry at index.
// GET /log/entries/{index}.
func (c *Controller) GetEntry(ctx echo.Context) error {
	index, err := util.PathUint(ctx, indexParam)
	if err != nil {
		return err
	}

	e, err := c.log.Get(ctx.Request().Context(), index)
	if err != nil {
		return resterr.FromDomainError(resterr.TransparencyLogComponent, "Get", err)
	}

	return util.WriteOutput(ctx)(e, nil)
}

// GetInclusionProof returns the inclusion proof of the entry at index against the current root.
// GET /log/entries/{index}/proof.
func (c *Controller) GetInclusionProof(ctx echo.Context) error {
	index, err := util.PathUint(ctx, indexParam)
	if err != nil {
		return err
	}

	p, err := c.log.GetInclusionProof(ctx.Request().Context(), index)
	if err != nil {
		return resterr.FromDomainError(resterr.TransparencyLogComponent, "GetInclusionProof", err)
	}

	return util.WriteOutput(ctx)(p, nil)
}

// PostVerifyInclusion recomputes the root of a proof. When an entry is supplied its hash
// must also be the proven leaf.
// POST /log/proofs/verify.
func (c *Controller) PostVerifyInclusion(ctx echo.Context) error {
	var body VerifyInclusionRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if body.Proof == nil {
		return resterr.NewValidationError(resterr.InvalidValue, "proof", errors.New("proof is required"))
	}

	if body.Entry == nil {
		return util.WriteOutput(ctx)(&VerifyInclusionResponse{Valid: translog.VerifyInclusionProof(body.Proof)}, nil)
	}

	valid, err := translog.VerifyEntryInclusion(body.Entry, body.Proof)
	if err != nil {
		return resterr.NewValidationError(resterr.InvalidValue, "entry", err)
	}

	return util.WriteOutput(ctx)(&VerifyInclusionResponse{Valid: valid}, nil)
}

// GetIntegrity re-verifies the hash chain and Merkle leaves of [from, to). Violations
// are reported in the body, never repaired.
// GET /log/integrity.
func (c *Controller) GetIntegrity(ctx echo.Context) error {
	from, err := util.QueryUint(ctx, "from", 0)
	if err != nil {
		return err
	}

	to, err := util.QueryUint(ctx, "to", 0)
	if err != nil {
		return err
	}

	report, err := c.log.VerifyIntegrity(ctx.Request().Context(), from, to)
	if err != nil {
		return resterr.FromDomainError(resterr.TransparencyLogComponent, "VerifyIntegrity", err)
	}

	return util.WriteOutput(ctx)(report, nil)
}

// GetCheckpoint returns the current tree size and root.
// GET /log/checkpoint.
func (c *Controller) GetCheckpoint(ctx echo.Context) error {
	return util.WriteOutput(ctx)(c.log.Checkpoint(), nil)
}
