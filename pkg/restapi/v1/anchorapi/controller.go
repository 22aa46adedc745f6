/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package anchorapi_test -source=controller.go -mock_names router=MockRouter,anchorService=MockAnchorService

package anchorapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
	"github.com/trustbloc/vctrust/pkg/restapi/resterr"
	"github.com/trustbloc/vctrust/pkg/restapi/v1/util"
	"github.com/trustbloc/vctrust/pkg/service/anchor"
)

var logger = log.New("anchor-rest")

const (
	anchorsEndpoint = "/anchors"
	hashParam       = "hash"
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type anchorService interface {
	Enqueue(ctx context.Context, hash, submitterID string) (*anchor.Record, error)
	GetState(ctx context.Context, hash string) (*anchor.Record, error)
	ListDeadLettered(ctx context.Context) ([]*anchor.Record, error)
	Replay(ctx context.Context, hash string) (*anchor.Record, error)
}

type Config struct {
	AnchorService anchorService
	// AdminMiddleware guards the operator endpoints (dead-letter listing and replay).
	AdminMiddleware []echo.MiddlewareFunc
}

// Controller for anchor queue REST API.
type Controller struct {
	anchorService anchorService
}

// EnqueueRequest asks for a hash to be anchored.
type EnqueueRequest struct {
	RootHash    string `json:"rootHash"`
	SubmitterID string `json:"submitterId,omitempty"`
}

// EnqueueResponse reports the job that anchors the hash. Duplicate is set when the hash
// was already confirmed and nothing was queued.
type EnqueueResponse struct {
	JobID     string         `json:"jobId"`
	Duplicate bool           `json:"duplicate"`
	Anchor    *anchor.Record `json:"anchor"`
}

// DeadLetterResponse lists dead-lettered jobs.
type DeadLetterResponse struct {
	Jobs []*anchor.Record `json:"jobs"`
}

// NewController creates a new controller for anchor queue REST API.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		anchorService: config.AnchorService,
	}

	router.POST(anchorsEndpoint, c.PostAnchors)
	router.GET(anchorsEndpoint+"/dead-letter", c.GetDeadLettered, config.AdminMiddleware...)
	router.GET(anchorsEndpoint+"/:"+hashParam, c.GetAnchor)
	router.POST(anchorsEndpoint+"/:"+hashParam+"/replay", c.PostReplay, config.AdminMiddleware...)

	return c
}

// PostAnchors queues a hash for anchoring. Submitting an already confirmed hash is a
// no-op reported with the existing confirmation.
// POST /anchors.
func (c *Controller) PostAnchors(ctx echo.Context) error {
	var body EnqueueRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	rec, err := c.anchorService.Enqueue(ctx.Request().Context(), body.RootHash, body.SubmitterID)
	if err != nil {
		var dupErr *anchor.DuplicateError
		if errors.As(err, &dupErr) {
			logger.Debugc(ctx.Request().Context(), "Hash already anchored",
				logfields.WithRootHash(dupErr.Record.Hash), logfields.WithJobID(dupErr.Record.JobID))

			return util.WriteOutput(ctx)(&EnqueueResponse{
				JobID:     dupErr.Record.JobID,
				Duplicate: true,
				Anchor:    dupErr.Record,
			}, nil)
		}

		return resterr.FromDomainError(resterr.AnchorQueueComponent, "Enqueue", err)
	}

	return util.WriteOutputWithCode(http.StatusAccepted, ctx)(&EnqueueResponse{
		JobID:  rec.JobID,
		Anchor: rec,
	}, nil)
}

// GetAnchor returns the anchor state of a hash.
// GET /anchors/{hash}.
func (c *Controller) GetAnchor(ctx echo.Context) error {
	rec, err := c.anchorService.GetState(ctx.Request().Context(), ctx.Param(hashParam))
	if err != nil {
		return resterr.FromDomainError(resterr.AnchorQueueComponent, "GetState", err)
	}

	return util.WriteOutput(ctx)(rec, nil)
}

// GetDeadLettered lists jobs that exhausted their retry budget.
// GET /anchors/dead-letter.
func (c *Controller) GetDeadLettered(ctx echo.Context) error {
	recs, err := c.anchorService.ListDeadLettered(ctx.Request().Context())
	if err != nil {
		return resterr.FromDomainError(resterr.AnchorQueueComponent, "ListDeadLettered", err)
	}

	if recs == nil {
		recs = []*anchor.Record{}
	}

	return util.WriteOutput(ctx)(&DeadLetterResponse{Jobs: recs}, nil)
}

// PostReplay re-queues a dead-lettered job with a fresh retry budget.
// POST /anchors/{hash}/replay.
func (c *Controller) PostReplay(ctx echo.Context) error {
	rec, err := c.anchorService.Replay(ctx.Request().Context(), ctx.Param(hashParam))
	if err != nil {
		return resterr.FromDomainError(resterr.AnchorQueueComponent, "Replay", err)
	}

	logger.Infoc(ctx.Request().Context(), "Dead-lettered anchor job replayed",
		logfields.WithRootHash(rec.Hash), logfields.WithJobID(rec.JobID))

	return util.WriteOutputWithCode(http.StatusAccepted, ctx)(rec, nil)
}
