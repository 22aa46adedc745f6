/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/vctrust/pkg/breaker"
	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/restapi/resterr"
	"github.com/trustbloc/vctrust/pkg/service/anchor"
	"github.com/trustbloc/vctrust/pkg/service/statuslist"
	"github.com/trustbloc/vctrust/pkg/service/verification"
	"github.com/trustbloc/vctrust/pkg/translog"
)

func TestFromDomainError(t *testing.T) {
	_, canonicalErr := canonical.Parse([]byte(`{"a":1e400}`))
	require.Error(t, canonicalErr)

	_, algErr := canonical.ParseAlgorithm("md5")
	require.Error(t, algErr)

	tests := []struct {
		name string
		err  error
		code resterr.ErrorCode
	}{
		{"input", &verification.InputError{Code: verification.ProofInputInvalid, Reason: "bad did"},
			resterr.ProofInputInvalid},
		{"canonicalization", canonicalErr, resterr.CanonicalizationError},
		{"invalid hash", fmt.Errorf("wrap: %w", anchor.ErrInvalidHash), resterr.InvalidValue},
		{"unsupported algorithm", algErr, resterr.InvalidValue},
		{"status not found", statuslist.ErrDataNotFound, resterr.DoesntExist},
		{"log entry not found", translog.ErrDataNotFound, resterr.DoesntExist},
		{"duplicate", &anchor.DuplicateError{Record: &anchor.Record{Hash: "h"}}, resterr.DuplicateAnchor},
		{"dead-lettered", anchor.ErrDeadLettered, resterr.DeadLettered},
		{"not dead-lettered", anchor.ErrNotDeadLettered, resterr.ConditionNotMet},
		{"integrity", translog.ErrIntegrityViolation, resterr.IntegrityViolation},
		{"breaker", breaker.ErrOpen, resterr.ServiceUnavailable},
		{"other", errors.New("boom"), resterr.SystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resterr.FromDomainError(resterr.AnchorQueueComponent, "op", tt.err)
			require.Equal(t, tt.code, got.Code)
			require.ErrorIs(t, got, tt.err)
		})
	}

	t.Run("custom error passes through", func(t *testing.T) {
		custom := resterr.NewCustomError(resterr.DoesntExist, errors.New("x"))
		require.Same(t, custom, resterr.FromDomainError("", "", fmt.Errorf("wrap: %w", custom)))
	})
}
