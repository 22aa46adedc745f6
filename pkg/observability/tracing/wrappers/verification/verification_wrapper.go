/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package verification . Service

package verification

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/vctrust/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/vctrust/pkg/service/verification"
)

const maxAttributeLength = 4096

var _ Service = (*Wrapper)(nil) // make sure Wrapper implements verification.ServiceInterface

type Service verification.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) SubmitVerification(ctx context.Context, req *verification.Request) (*verification.Decision, error) {
	ctx, span := w.tracer.Start(ctx, "verification.SubmitVerification")
	defer span.End()

	if req != nil {
		span.SetAttributes(attributeutil.JSON("expectations", req.Expectations,
			attributeutil.WithMaxLength(maxAttributeLength)))
	}

	d, err := w.svc.SubmitVerification(ctx, req)
	if err != nil {
		span.RecordError(err)

		return nil, err
	}

	span.SetAttributes(
		attribute.String("credential_hash", d.CredentialHash),
		attribute.String("decision", string(d.Decision)),
		attributeutil.JSON("reason_codes", d.ReasonCodes),
		attribute.Int64("log_index", int64(d.LogIndex)),
	)

	return d, nil
}
