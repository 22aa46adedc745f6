/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package issuance . Service

package issuance

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/vctrust/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/vctrust/pkg/service/issuance"
)

const maxAttributeLength = 4096

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements issuance.ServiceInterface

type Service issuance.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Issue(ctx context.Context, req *issuance.Request) (*issuance.Result, error) {
	ctx, span := w.tracer.Start(ctx, "issuance.Issue")
	defer span.End()

	if req != nil {
		span.SetAttributes(attribute.String("subject_did", req.SubjectDID))
		span.SetAttributes(attribute.StringSlice("types", req.Types))
		span.SetAttributes(attributeutil.JSON("request", req,
			attributeutil.WithRedacted("claims"), attributeutil.WithMaxLength(maxAttributeLength)))
	}

	res, err := w.svc.Issue(ctx, req)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("credential_hash", res.ProofMetadata.Hash))

	return res, nil
}
