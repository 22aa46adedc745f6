/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anchor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/vctrust/internal/logfields"
	"github.com/trustbloc/vctrust/pkg/breaker"
	"github.com/trustbloc/vctrust/pkg/canonical"
	"github.com/trustbloc/vctrust/pkg/chain"
	"github.com/trustbloc/vctrust/pkg/event/spi"
	"github.com/trustbloc/vctrust/pkg/lifecycle"
	"github.com/trustbloc/vctrust/pkg/observability/metrics/noop"
	"github.com/trustbloc/vctrust/pkg/translog"
)

var logger = log.New("anchor-service")

const (
	defaultWorkers   = 4
	defaultQueueSize = 1024
)

var errNoReceipt = errors.New("registry returned no receipt")

// Config holds the dependencies of the anchor queue.
type Config struct {
	Store           store
	Submitter       chain.Submitter
	Breaker         circuitBreaker
	TransparencyLog transparencyLog
	// EventPublisher is optional.
	EventPublisher eventPublisher
	// Metrics is optional.
	Metrics   metricsRecorder
	Policy    Policy
	Workers   int
	QueueSize int
	Now       func() time.Time
}

// Service is a durable queue that anchors hashes with a pool of workers.
type Service struct {
	*lifecycle.Lifecycle

	store     store
	submitter chain.Submitter
	cb        circuitBreaker
	tlog      transparencyLog
	publisher eventPublisher
	metrics   metricsRecorder
	policy    Policy
	workers   int
	now       func() time.Time

	queue    chan string
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	inflight sync.Map

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New returns an anchor queue. Workers run between Start and Stop; jobs enqueued before
// Start are picked up when it is called.
func New(config *Config) *Service {
	s := &Service{
		store:     config.Store,
		submitter: config.Submitter,
		cb:        config.Breaker,
		tlog:      config.TransparencyLog,
		publisher: config.EventPublisher,
		metrics:   config.Metrics,
		policy:    config.Policy.WithDefaults(),
		workers:   config.Workers,
		now:       config.Now,
		done:      make(chan struct{}),
		timers:    make(map[string]*time.Timer),
	}

	if s.metrics == nil {
		s.metrics = noop.GetMetrics()
	}

	if s.workers <= 0 {
		s.workers = defaultWorkers
	}

	if s.now == nil {
		s.now = time.Now
	}

	queueSize := config.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	s.queue = make(chan string, queueSize)

	s.Lifecycle = lifecycle.New("anchor-queue",
		lifecycle.WithStart(s.start),
		lifecycle.WithStop(s.stop),
	)

	return s
}

// Enqueue creates the anchor job for hash. Enqueueing a hash that already has a job does not
// create a second one: a confirmed hash is reported with a *DuplicateError carrying the existing
// record, a dead-lettered hash with ErrDeadLettered, and a job still in progress is returned as is.
func (s *Service) Enqueue(ctx context.Context, hash, submitterID string) (*Record, error) {
	if !canonical.IsHexDigest(hash) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHash, hash)
	}

	hash = strings.ToLower(hash)
	now := s.now().UTC()

	rec := &Record{
		JobID:         uuid.NewString(),
		Hash:          hash,
		SubmitterID:   submitterID,
		State:         StateQueued,
		NextAttemptAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.store.Create(ctx, rec)
	if errors.Is(err, ErrAlreadyExists) {
		return s.existing(ctx, hash)
	}

	if err != nil {
		return nil, fmt.Errorf("create anchor job: %w", err)
	}

	logger.Infoc(ctx, "Anchor job queued", logfields.WithJobID(rec.JobID), logfields.WithRootHash(hash))

	s.record(ctx, translog.EntryAnchorQueued, spi.AnchorQueued, newTransitionPayload(rec))
	s.push(hash)

	return rec.Copy(), nil
}

func (s *Service) existing(ctx context.Context, hash string) (*Record, error) {
	rec, err := s.store.Get(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("get anchor job: %w", err)
	}

	switch {
	case rec.State == StateConfirmed:
		return rec, &DuplicateError{Record: rec}
	case rec.DeadLettered:
		return rec, fmt.Errorf("%w: %s", ErrDeadLettered, hash)
	default:
		logger.Debugc(ctx, "Hash already has an anchor job",
			logfields.WithJobID(rec.JobID), logfields.WithAnchorState(string(rec.State)))

		return rec, nil
	}
}

// GetState returns the anchor job of hash.
func (s *Service) GetState(ctx context.Context, hash string) (*Record, error) {
	rec, err := s.store.Get(ctx, strings.ToLower(hash))
	if err != nil {
		return nil, fmt.Errorf("get anchor job: %w", err)
	}

	return rec, nil
}

// ListDeadLettered returns the jobs that exhausted their retries or failed permanently.
func (s *Service) ListDeadLettered(ctx context.Context) ([]*Record, error) {
	records, err := s.store.ListDeadLettered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dead-lettered anchor jobs: %w", err)
	}

	return records, nil
}

// Replay moves a dead-lettered job back to the queue with a fresh retry budget.
func (s *Service) Replay(ctx context.Context, hash string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.store.Get(ctx, strings.ToLower(hash))
	if err != nil {
		return nil, fmt.Errorf("get anchor job: %w", err)
	}

	if !rec.DeadLettered {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotDeadLettered, rec.Hash, rec.State)
	}

	now := s.now().UTC()

	rec.DeadLettered = false
	rec.Attempts = 0
	rec.LastError = ""
	rec.State = StateQueued
	rec.NextAttemptAt = now
	rec.UpdatedAt = now

	if err = s.store.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("update anchor job: %w", err)
	}

	logger.Infoc(ctx, "Anchor job replayed", logfields.WithJobID(rec.JobID), logfields.WithRootHash(rec.Hash))

	s.record(ctx, translog.EntryAnchorReplayed, spi.AnchorReplayed, newTransitionPayload(rec))
	s.push(rec.Hash)

	return rec.Copy(), nil
}

func (s *Service) start() {
	logger.Info("Starting anchor workers", logfields.WithWorkers(s.workers))

	for i := 0; i < s.workers; i++ {
		s.wg.Add(1)

		go s.worker()
	}

	s.recover(context.Background())
}

func (s *Service) stop() {
	s.stopOnce.Do(func() {
		close(s.done)

		s.mu.Lock()
		for hash, t := range s.timers {
			t.Stop()
			delete(s.timers, hash)
		}
		s.mu.Unlock()
	})

	s.wg.Wait()
}

// recover reschedules jobs left behind by a previous run. A job found in submitted had an
// attempt interrupted and is handled as a transient failure of that attempt.
func (s *Service) recover(ctx context.Context) {
	pending, err := s.store.ListPending(ctx)
	if err != nil {
		logger.Errorc(ctx, "Failed to list pending anchor jobs", log.WithError(err))

		return
	}

	for _, rec := range pending {
		switch rec.State {
		case StateQueued:
			s.scheduleAfter(rec.Hash, rec.NextAttemptAt.Sub(s.now()))
		case StateSubmitted:
			s.handleFailure(ctx, rec, errors.New("attempt interrupted by restart"))
		case StateFailed:
			s.decide(ctx, rec, KindTransient)
		case StateConfirmed:
		}
	}

	if len(pending) > 0 {
		logger.Infoc(ctx, "Recovered pending anchor jobs", logfields.WithAdditionalMessage(fmt.Sprintf("%d jobs", len(pending))))
	}
}

func (s *Service) worker() {
	defer s.wg.Done()

	for {
		select {
		case <-s.done:
			return
		case hash := <-s.queue:
			s.process(context.Background(), hash)
		}
	}
}

func (s *Service) push(hash string) {
	select {
	case s.queue <- hash:
	case <-s.done:
	default:
		go func() {
			select {
			case s.queue <- hash:
			case <-s.done:
			}
		}()
	}
}

// scheduleAfter pushes hash after d. It replaces a timer already pending for the hash.
func (s *Service) scheduleAfter(hash string, d time.Duration) {
	if d <= 0 {
		s.push(hash)

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.done:
		return
	default:
	}

	if t, ok := s.timers[hash]; ok {
		t.Stop()
	}

	var t *time.Timer

	t = time.AfterFunc(d, func() {
		s.mu.Lock()
		if s.timers[hash] == t {
			delete(s.timers, hash)
		}
		s.mu.Unlock()

		s.push(hash)
	})

	s.timers[hash] = t
}

func (s *Service) process(ctx context.Context, hash string) {
	if _, busy := s.inflight.LoadOrStore(hash, struct{}{}); busy {
		return
	}

	defer s.inflight.Delete(hash)

	rec, err := s.store.Get(ctx, hash)
	if err != nil {
		logger.Errorc(ctx, "Failed to load anchor job", logfields.WithRootHash(hash), log.WithError(err))

		if !errors.Is(err, ErrDataNotFound) {
			s.scheduleAfter(hash, s.policy.BaseDelay)
		}

		return
	}

	if rec.State != StateQueued || rec.DeadLettered {
		return
	}

	if wait := rec.NextAttemptAt.Sub(s.now()); wait > 0 {
		s.scheduleAfter(hash, wait)

		return
	}

	if s.cb.State() == breaker.StateOpen {
		logger.Debugc(ctx, "Circuit breaker open, deferring anchor job",
			logfields.WithJobID(rec.JobID), logfields.WithSleep(s.policy.BaseDelay))

		s.scheduleAfter(hash, s.policy.BaseDelay)

		return
	}

	s.attempt(ctx, rec)
}

// attempt marks the job submitted only once the breaker has admitted the call.
func (s *Service) attempt(ctx context.Context, rec *Record) {
	var (
		receipt   *chain.Receipt
		submitted bool
		start     time.Time
	)

	err := s.cb.Execute(ctx, func(ctx context.Context) error {
		if err := s.transition(ctx, rec, StateSubmitted); err != nil {
			return fmt.Errorf("%w: mark anchor job submitted: %w", breaker.ErrNotCalled, err)
		}

		submitted = true

		s.record(ctx, translog.EntryAnchorSubmitted, spi.AnchorSubmitted, newTransitionPayload(rec))

		start = s.now()

		var err error

		receipt, err = s.submit(ctx, rec.Hash)

		return err
	})

	if !submitted {
		s.deferJob(ctx, rec, err)

		return
	}

	s.metrics.AnchorSubmitTime(s.now().Sub(start))

	if err != nil {
		s.handleFailure(ctx, rec, err)

		return
	}

	s.confirm(ctx, rec, receipt)
}

// deferJob puts a job that never reached the registry back on the queue. Its attempts and state
// are left as they were.
func (s *Service) deferJob(ctx context.Context, rec *Record, cause error) {
	if errors.Is(cause, breaker.ErrNotCalled) {
		logger.Errorc(ctx, "Failed to mark anchor job submitted", logfields.WithJobID(rec.JobID), log.WithError(cause))
	} else {
		logger.Debugc(ctx, "Circuit breaker rejected anchor job", logfields.WithJobID(rec.JobID),
			logfields.WithSleep(s.policy.BaseDelay), log.WithError(cause))
	}

	s.scheduleAfter(rec.Hash, s.policy.BaseDelay)
}

// submit calls the registry. The call is abandoned when the attempt timeout expires, which
// counts as a transient failure.
func (s *Service) submit(ctx context.Context, hash string) (*chain.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, s.policy.AttemptTimeout)
	defer cancel()

	type result struct {
		receipt *chain.Receipt
		err     error
	}

	ch := make(chan result, 1)

	go func() {
		r, err := s.submitter.Submit(ctx, hash)
		ch <- result{receipt: r, err: err}
	}()

	select {
	case res := <-ch:
		switch {
		case res.err != nil && ctx.Err() != nil:
			return nil, fmt.Errorf("%w after %s: %w", ErrAttemptTimeout, s.policy.AttemptTimeout, res.err)
		case res.err == nil && res.receipt == nil:
			return nil, errNoReceipt
		}

		return res.receipt, res.err
	case <-ctx.Done():
		return nil, fmt.Errorf("%w after %s: %w", ErrAttemptTimeout, s.policy.AttemptTimeout, ctx.Err())
	}
}

func (s *Service) confirm(ctx context.Context, rec *Record, receipt *chain.Receipt) {
	anchoredAt := receipt.AnchoredAt.UTC()

	rec.Attempts++
	rec.LastError = ""
	rec.TxID = receipt.TxID
	rec.BlockNumber = receipt.BlockNumber
	rec.AnchoredAt = &anchoredAt

	if err := s.transition(ctx, rec, StateConfirmed); err != nil {
		logger.Errorc(ctx, "Failed to mark anchor job confirmed", logfields.WithJobID(rec.JobID), log.WithError(err))

		return
	}

	logger.Infoc(ctx, "Hash anchored", logfields.WithJobID(rec.JobID), logfields.WithRootHash(rec.Hash),
		logfields.WithAttempt(rec.Attempts))

	p := newTransitionPayload(rec)
	p.TxID = receipt.TxID
	p.BlockNumber = receipt.BlockNumber
	p.AnchoredAt = rec.AnchoredAt

	entry := s.record(ctx, translog.EntryAnchorConfirmed, spi.AnchorConfirmed, p)
	if entry == nil {
		return
	}

	rec.LogIndex = &entry.Index

	if err := s.store.Update(ctx, rec); err != nil {
		logger.Warnc(ctx, "Failed to store log index of anchor confirmation",
			logfields.WithJobID(rec.JobID), logfields.WithLogIndex(entry.Index), log.WithError(err))
	}
}

func (s *Service) handleFailure(ctx context.Context, rec *Record, cause error) {
	kind := Classify(cause)

	rec.Attempts++
	rec.LastError = cause.Error()

	if err := s.transition(ctx, rec, StateFailed); err != nil {
		logger.Errorc(ctx, "Failed to mark anchor job failed", logfields.WithJobID(rec.JobID), log.WithError(err))

		return
	}

	logger.Warnc(ctx, "Anchor attempt failed", logfields.WithJobID(rec.JobID), logfields.WithAttempt(rec.Attempts),
		logfields.WithAdditionalMessage(string(kind)), log.WithError(cause))

	p := newTransitionPayload(rec)
	p.Error = rec.LastError
	p.ErrorKind = kind

	s.record(ctx, translog.EntryAnchorFailed, spi.AnchorFailed, p)

	s.decide(ctx, rec, kind)
}

// decide moves a failed job back to the queue or to the dead-letter set.
func (s *Service) decide(ctx context.Context, rec *Record, kind ErrorKind) {
	action := NextAction(s.policy, rec.Attempts, kind)

	if action.DeadLetter {
		rec.DeadLettered = true
		rec.UpdatedAt = s.now().UTC()

		if err := s.store.Update(ctx, rec); err != nil {
			logger.Errorc(ctx, "Failed to dead-letter anchor job", logfields.WithJobID(rec.JobID), log.WithError(err))

			return
		}

		logger.Errorc(ctx, "Anchor job dead-lettered", logfields.WithJobID(rec.JobID), logfields.WithRootHash(rec.Hash),
			logfields.WithAttempt(rec.Attempts), logfields.WithAdditionalMessage(rec.LastError))

		p := newTransitionPayload(rec)
		p.Error = rec.LastError
		p.ErrorKind = kind

		s.record(ctx, translog.EntryAnchorDeadLettered, spi.AnchorDeadLettered, p)
		s.metrics.AnchorDeadLettered()

		return
	}

	delay := action.RetryAfter
	if s.policy.Jitter {
		delay = applyJitter(delay)
	}

	rec.NextAttemptAt = s.now().UTC().Add(delay)

	if err := s.transition(ctx, rec, StateQueued); err != nil {
		logger.Errorc(ctx, "Failed to requeue anchor job", logfields.WithJobID(rec.JobID), log.WithError(err))

		return
	}

	p := newTransitionPayload(rec)
	p.RetryAfter = delay.String()

	s.record(ctx, translog.EntryAnchorQueued, spi.AnchorQueued, p)
	s.scheduleAfter(rec.Hash, delay)
}

func (s *Service) transition(ctx context.Context, rec *Record, to State) error {
	rec.State = to
	rec.UpdatedAt = s.now().UTC()

	return s.store.Update(ctx, rec)
}

type transitionPayload struct {
	JobID       string     `json:"jobId"`
	RootHash    string     `json:"rootHash"`
	SubmitterID string     `json:"submitterId,omitempty"`
	State       State      `json:"state"`
	Attempt     int        `json:"attempt"`
	Error       string     `json:"error,omitempty"`
	ErrorKind   ErrorKind  `json:"errorKind,omitempty"`
	RetryAfter  string     `json:"retryAfter,omitempty"`
	TxID        string     `json:"txId,omitempty"`
	BlockNumber uint64     `json:"blockNumber,omitempty"`
	AnchoredAt  *time.Time `json:"anchoredAt,omitempty"`
}

func newTransitionPayload(rec *Record) *transitionPayload {
	return &transitionPayload{
		JobID:       rec.JobID,
		RootHash:    rec.Hash,
		SubmitterID: rec.SubmitterID,
		State:       rec.State,
		Attempt:     rec.Attempts,
	}
}

// record appends the transition to the transparency log and announces it.
func (s *Service) record(ctx context.Context, entryType translog.EntryType, eventType spi.EventType,
	p *transitionPayload) *translog.Entry {
	s.metrics.AnchorTransition(strings.TrimPrefix(string(entryType), "anchor_"))

	entry, err := s.tlog.Append(ctx, entryType, p)
	if err != nil {
		logger.Errorc(ctx, "Failed to append anchor transition to transparency log",
			logfields.WithJobID(p.JobID), logfields.WithEntryType(string(entryType)), log.WithError(err))
	}

	if s.publisher != nil {
		if err := s.publisher.PublishPayload(ctx, spi.AnchorEventTopic, eventType, p.RootHash, p); err != nil {
			logger.Warnc(ctx, "Failed to publish anchor event", log.WithTopic(spi.AnchorEventTopic), log.WithError(err))
		}
	}

	return entry
}
