/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verification

//go:generate mockgen -destination verification_service_mocks_test.go -self_package mocks -package verification_test -source=verification_service.go -mock_names keyResolver=MockKeyResolver,witnessComposer=MockWitnessComposer,transparencyLog=MockTransparencyLog,eventPublisher=MockEventPublisher,metricsRecorder=MockMetricsRecorder

import (
	"context"
	"crypto"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/didkey"
	"github.com/trustbloc/vctrust/pkg/doc/credential"
	"github.com/trustbloc/vctrust/pkg/event/spi"
	"github.com/trustbloc/vctrust/pkg/observability/metrics/noop"
	"github.com/trustbloc/vctrust/pkg/service/witness"
	"github.com/trustbloc/vctrust/pkg/translog"
)

var logger = log.New("verification-service")

type keyResolver interface {
	ResolveKey(ctx context.Context, didURL string) (crypto.PublicKey, error)
}

type witnessComposer interface {
	Compose(ctx context.Context, credentialHash string) (*witness.RevocationWitness, error)
}

type transparencyLog interface {
	Append(ctx context.Context, entryType translog.EntryType, payload interface{}) (*translog.Entry, error)
}

type eventPublisher interface {
	PublishPayload(ctx context.Context, topic string, eventType spi.EventType, subject string, payload interface{}) error
}

type metricsRecorder interface {
	VerificationTime(value time.Duration)
	DecisionRecorded(decision string, reasonCodes []string)
}

// Config holds the dependencies of the decision engine.
type Config struct {
	KeyResolver     keyResolver
	Witness         witnessComposer
	TransparencyLog transparencyLog
	// EventPublisher is optional.
	EventPublisher eventPublisher
	// Metrics is optional.
	Metrics metricsRecorder
	// Parser is optional; the default validates against the built-in credential schema.
	Parser *credential.Parser
	Now    func() time.Time
}

// Service runs every check of a verification request and aggregates them into one decision.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	keys      keyResolver
	witness   witnessComposer
	tlog      transparencyLog
	publisher eventPublisher
	metrics   metricsRecorder
	parser    *credential.Parser
	now       func() time.Time
}

// New returns a decision engine.
func New(config *Config) *Service {
	s := &Service{
		keys:      config.KeyResolver,
		witness:   config.Witness,
		tlog:      config.TransparencyLog,
		publisher: config.EventPublisher,
		metrics:   config.Metrics,
		parser:    config.Parser,
		now:       config.Now,
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	if s.parser == nil {
		s.parser = credential.NewParser()
	}

	if s.now == nil {
		s.now = time.Now
	}

	return s
}

type evidence struct {
	DecisionID     string                     `json:"decisionId"`
	CredentialHash string                     `json:"credentialHash"`
	Envelope       credential.Envelope        `json:"envelope"`
	Issuer         string                     `json:"issuer"`
	Subject        string                     `json:"subject,omitempty"`
	Expectations   Expectations               `json:"expectations"`
	HashCheck      *canonical.VerifyResult    `json:"hashCheck,omitempty"`
	Witness        *witness.RevocationWitness `json:"witness"`
	Decision       Outcome                    `json:"decision"`
	ReasonCodes    []ReasonCode               `json:"reasonCodes"`
	DecidedAt      time.Time                  `json:"decidedAt"`
}

type logPayload struct {
	DecisionID     string       `json:"decisionId"`
	CredentialHash string       `json:"credentialHash"`
	Decision       Outcome      `json:"decision"`
	ReasonCodes    []ReasonCode `json:"reasonCodes"`
	EvidenceHash   string       `json:"evidenceHash"`
}

// SubmitVerification normalizes the credential, runs the signature, hash-binding, DID-match,
// expiry and revocation checks and returns the aggregated decision. Malformed requests fail
// with an InputError before any check runs. Failed checks are reported as reason codes, never
// as errors; errors are returned only when the witness sources or the log are unavailable.
func (s *Service) SubmitVerification(ctx context.Context, req *Request) (*Decision, error) {
	start := time.Now()

	defer func() {
		s.metrics.VerificationTime(time.Since(start))
	}()

	if req == nil {
		return nil, inputError("request is required", nil)
	}

	exp, err := normalizeExpectations(req.Expectations)
	if err != nil {
		return nil, err
	}

	cred, err := s.parser.Parse(req.Credential)
	if err != nil {
		return nil, inputError("credential cannot be normalized", err)
	}

	if exp.SubjectDID != "" && cred.Subject == "" {
		return nil, inputError("credential has no subject identifier", nil)
	}

	credentialHash, err := canonical.Hash(cred.Payload, canonical.SHA256, canonical.VersionCurrent)
	if err != nil {
		return nil, inputError("credential cannot be hashed", err)
	}

	var reasons []ReasonCode

	if err = cred.VerifySignature(ctx, s.keys); err != nil {
		logger.Debugc(ctx, "Signature check failed", logfields.WithCredentialHash(credentialHash), log.WithError(err))

		reasons = append(reasons, InvalidSignature)
	}

	hashCheck, err := checkHash(cred.Payload, exp.ExpectedHash)
	if err != nil {
		return nil, inputError("expected hash cannot be checked", err)
	}

	if hashCheck != nil {
		if !hashCheck.Valid {
			reasons = append(reasons, HashMismatch)
		} else if hashCheck.LegacyFallback && canonical.IsHexDigest(exp.ExpectedHash) {
			// the credential was recorded under its legacy hash
			credentialHash = exp.ExpectedHash
		}
	}

	if exp.IssuerDID != "" && exp.IssuerDID != cred.Issuer {
		reasons = append(reasons, IssuerDIDMismatch)
	}

	if exp.SubjectDID != "" && exp.SubjectDID != cred.Subject {
		reasons = append(reasons, SubjectDIDMismatch)
	}

	decidedAt := s.now().UTC().Truncate(time.Millisecond)

	if cred.Expired(decidedAt) {
		reasons = append(reasons, ExpiredCredential)
	}

	w, err := s.witness.Compose(ctx, credentialHash)
	if err != nil {
		return nil, fmt.Errorf("compose revocation witness: %w", err)
	}

	if w.StatusListEntry.Revoked {
		reasons = append(reasons, RevokedCredential)
	}

	if !w.AnchorInclusion.Present {
		reasons = append(reasons, PendingAnchor)
	}

	reasons = orderReasons(reasons)
	outcome := aggregate(reasons)

	if outcome == Reject {
		// pending anchoring only matters for downgrading an approval
		reasons = lo.Without(reasons, PendingAnchor)
	}

	d := &Decision{
		ID:                 uuid.NewString(),
		CredentialHash:     credentialHash,
		Envelope:           cred.Envelope,
		CredentialValidity: credentialValidity(reasons),
		StatusValidity:     statusValidity(w),
		Decision:           outcome,
		ReasonCodes:        reasons,
		HashVerification:   hashCheck,
		Witness:            w,
		DecidedAt:          decidedAt,
	}

	d.EvidenceHash, err = evidenceHash(&evidence{
		DecisionID:     d.ID,
		CredentialHash: d.CredentialHash,
		Envelope:       d.Envelope,
		Issuer:         cred.Issuer,
		Subject:        cred.Subject,
		Expectations:   exp,
		HashCheck:      hashCheck,
		Witness:        w,
		Decision:       d.Decision,
		ReasonCodes:    d.ReasonCodes,
		DecidedAt:      d.DecidedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("compute evidence hash: %w", err)
	}

	entry, err := s.tlog.Append(ctx, translog.EntryVerificationDecision, &logPayload{
		DecisionID:     d.ID,
		CredentialHash: d.CredentialHash,
		Decision:       d.Decision,
		ReasonCodes:    d.ReasonCodes,
		EvidenceHash:   d.EvidenceHash,
	})
	if err != nil {
		return nil, fmt.Errorf("record decision: %w", err)
	}

	d.LogIndex = entry.Index

	codes := lo.Map(d.ReasonCodes, func(c ReasonCode, _ int) string { return string(c) })

	s.metrics.DecisionRecorded(string(d.Decision), codes)

	logger.Infoc(ctx, "Verification decided",
		logfields.WithCredentialHash(d.CredentialHash),
		logfields.WithDecision(string(d.Decision)),
		logfields.WithReasonCodes(codes),
		logfields.WithLogIndex(d.LogIndex),
	)

	if s.publisher != nil {
		err = s.publisher.PublishPayload(ctx, spi.VerifierEventTopic, spi.VerificationDecided, d.CredentialHash, d)
		if err != nil {
			logger.Warnc(ctx, "Failed to publish decision event", log.WithTopic(spi.VerifierEventTopic), log.WithError(err))
		}
	}

	return d, nil
}

func normalizeExpectations(exp Expectations) (Expectations, error) {
	exp.IssuerDID = strings.TrimSpace(exp.IssuerDID)
	exp.SubjectDID = strings.TrimSpace(exp.SubjectDID)
	exp.ExpectedHash = strings.ToLower(strings.TrimSpace(exp.ExpectedHash))

	if exp.IssuerDID != "" && !didkey.IsValidDID(exp.IssuerDID) {
		return exp, inputError(fmt.Sprintf("malformed issuer DID %q", exp.IssuerDID), nil)
	}

	if exp.SubjectDID != "" && !didkey.IsValidDID(exp.SubjectDID) {
		return exp, inputError(fmt.Sprintf("malformed subject DID %q", exp.SubjectDID), nil)
	}

	if exp.ExpectedHash != "" {
		if _, ok := digestAlgorithm(exp.ExpectedHash); !ok {
			return exp, inputError(fmt.Sprintf("malformed expected hash %q", exp.ExpectedHash), nil)
		}
	}

	return exp, nil
}

// digestAlgorithm infers the digest function from the length of a hex digest.
func digestAlgorithm(digest string) (canonical.Algorithm, bool) {
	b, err := hex.DecodeString(digest)
	if err != nil {
		return "", false
	}

	switch len(b) {
	case 32: //nolint:gomnd
		return canonical.SHA256, true
	case 48: //nolint:gomnd
		return canonical.SHA384, true
	case 64: //nolint:gomnd
		return canonical.SHA512, true
	default:
		return "", false
	}
}

// checkHash returns nil when no hash is expected.
func checkHash(payload canonical.Value, expected string) (*canonical.VerifyResult, error) {
	if expected == "" {
		return nil, nil //nolint:nilnil
	}

	alg, _ := digestAlgorithm(expected)

	return canonical.VerifyHash(payload, expected, alg, canonical.VersionCurrent)
}

func orderReasons(reasons []ReasonCode) []ReasonCode {
	out := lo.Uniq(reasons)

	sort.SliceStable(out, func(i, j int) bool {
		return reasonOrder[out[i]] < reasonOrder[out[j]]
	})

	return out
}

func aggregate(reasons []ReasonCode) Outcome {
	switch {
	case lo.SomeBy(reasons, ReasonCode.Fatal):
		return Reject
	case len(reasons) > 0:
		return Review
	default:
		return Approve
	}
}

func credentialValidity(reasons []ReasonCode) Validity {
	if lo.ContainsBy(reasons, func(c ReasonCode) bool {
		return c.Fatal() && c != RevokedCredential
	}) {
		return Invalid
	}

	return Valid
}

func statusValidity(w *witness.RevocationWitness) StatusValidity {
	switch {
	case w.StatusListEntry.Revoked:
		return StatusRevoked
	case !w.AnchorInclusion.Present:
		return StatusPending
	default:
		return StatusActive
	}
}

func evidenceHash(e *evidence) (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}

	v, err := canonical.Parse(b)
	if err != nil {
		return "", err
	}

	return canonical.Hash(v, canonical.SHA256, canonical.VersionCurrent)
}
