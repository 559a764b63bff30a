package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rl1809/epc-inventory/internal/core/domain"
	"github.com/rl1809/epc-inventory/internal/port"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionConfirmed = errors.New("session already confirmed")
	ErrTaskNotFound     = errors.New("task not found")
	ErrTaskClosed       = errors.New("task is closed")
	ErrEmptyEPC         = errors.New("empty epc in batch")
	ErrRecordNotFound   = errors.New("record not found in session")
	ErrRemoveValid      = errors.New("valid records cannot be removed individually")
)

// Confirmation is what a confirmed session leaves behind: the count to
// persist and the valid EPCs to claim so other sessions see them as
// surplus.
type Confirmation struct {
	Count domain.TaskCount
	EPCs  []string
}

// SessionService owns every live scan session and is the only way to
// mutate one. Confirmed counts are handed off through a buffered
// channel; a worker pool drains it into durable storage.
type SessionService struct {
	registry port.RegistryLookup
	db       port.DatabaseRepository
	logger   *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*ScanSession

	confirmQueue chan Confirmation
}

func NewSessionService(registry port.RegistryLookup, db port.DatabaseRepository, queueSize int, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		registry:     registry,
		db:           db,
		logger:       logger,
		sessions:     make(map[string]*ScanSession),
		confirmQueue: make(chan Confirmation, queueSize),
	}
}

// Open creates an empty session for counting one asset within a task.
// The expected count is the number of EPCs registered to the asset at
// open time; it is frozen for the session's lifetime.
func (s *SessionService) Open(ctx context.Context, taskID, assetID string) (*ScanSession, error) {
	task, err := s.db.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("load task: %w", err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.Status == domain.TaskStatusClosed {
		return nil, ErrTaskClosed
	}

	epcs, err := s.db.ListAssetEPCs(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("load expected epcs: %w", err)
	}

	sess := newScanSession(uuid.NewString(), taskID, assetID, len(epcs))

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Info("session opened",
		zap.String("session_id", sess.ID),
		zap.String("task_id", taskID),
		zap.String("asset_id", assetID),
		zap.Int("expected", sess.ExpectedCount))

	return sess, nil
}

func (s *SessionService) get(sessionID string) (*ScanSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Append classifies each EPC of a batch in order and records the ones
// not already present. EPCs already in the session are skipped before
// any lookup, so re-scans are free. The returned slice holds only the
// records actually added.
//
// If ctx is cancelled mid-batch, records added so far stay in the
// session and the remainder of the batch is discarded.
func (s *SessionService) Append(ctx context.Context, sessionID string, epcs []string) ([]domain.ScanRecord, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	for _, epc := range epcs {
		if epc == "" {
			return nil, ErrEmptyEPC
		}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state == stateConfirmed {
		return nil, ErrSessionConfirmed
	}
	defer sess.touch()

	var added []domain.ScanRecord
	for _, epc := range epcs {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		if _, ok := sess.index[epc]; ok {
			continue
		}

		result, err := s.registry.Lookup(ctx, epc, sess.TaskID)
		if err != nil {
			if ctx.Err() != nil {
				return added, ctx.Err()
			}
			// A failed lookup lands in the visible error bucket rather
			// than being retried; the operator can delete and re-scan.
			s.logger.Warn("registry lookup failed",
				zap.String("session_id", sess.ID),
				zap.String("epc", epc),
				zap.Error(err))
			result = domain.LookupResult{Status: domain.LookupStatusNotFound}
		}

		rec := domain.ScanRecord{
			EPC:       epc,
			Status:    domain.Classify(epc, sess.AssetID, sess.seen(), result),
			Asset:     result.Asset,
			ScannedAt: time.Now(),
		}
		sess.add(rec)
		added = append(added, rec)
	}

	return added, nil
}

// Partition returns the session's records bucketed for display.
func (s *SessionService) Partition(sessionID string) (domain.Partition, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return domain.Partition{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.partition(), nil
}

// SessionState is a point-in-time snapshot of one session for display:
// the frozen expected count plus the current buckets.
type SessionState struct {
	SessionID     string
	TaskID        string
	AssetID       string
	ExpectedCount int
	Buckets       domain.Partition
}

// State returns the session snapshot the counting screen renders.
func (s *SessionService) State(sessionID string) (SessionState, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return SessionState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return SessionState{
		SessionID:     sess.ID,
		TaskID:        sess.TaskID,
		AssetID:       sess.AssetID,
		ExpectedCount: sess.ExpectedCount,
		Buckets:       sess.partition(),
	}, nil
}

// Remove deletes an invalid record. Valid records are off limits: the
// confirmed count must equal what the operator saw, so valid entries
// only disappear with the whole session. A removed EPC counts as new
// on the next scan.
func (s *SessionService) Remove(sessionID, epc string) error {
	sess, err := s.get(sessionID)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state == stateConfirmed {
		return ErrSessionConfirmed
	}

	i, ok := sess.index[epc]
	if !ok {
		return ErrRecordNotFound
	}
	if sess.records[i].Status == domain.ScanStatusValid {
		return ErrRemoveValid
	}

	sess.removeEPC(epc)
	sess.touch()
	return nil
}

// Confirm transitions the session to its terminal state and enqueues
// the confirmed count exactly once. The session stops accepting
// appends and removals immediately; persistence happens async in the
// worker pool.
//
// The queue send happens after the session lock is released: the state
// is already terminal, and a full queue must not block readers of the
// session.
func (s *SessionService) Confirm(sessionID string) (domain.TaskCount, error) {
	sess, err := s.get(sessionID)
	if err != nil {
		return domain.TaskCount{}, err
	}

	sess.mu.Lock()
	if sess.state == stateConfirmed {
		sess.mu.Unlock()
		return domain.TaskCount{}, ErrSessionConfirmed
	}
	sess.state = stateConfirmed
	sess.touch()

	epcs := sess.validEPCs()
	count := domain.TaskCount{
		TaskID:         sess.TaskID,
		AssetID:        sess.AssetID,
		ConfirmedCount: len(epcs),
		ExpectedCount:  sess.ExpectedCount,
		CountedAt:      time.Now(),
	}
	sess.mu.Unlock()

	s.confirmQueue <- Confirmation{Count: count, EPCs: epcs}

	s.logger.Info("session confirmed",
		zap.String("session_id", sess.ID),
		zap.Int("confirmed", count.ConfirmedCount),
		zap.Int("expected", count.ExpectedCount))

	return count, nil
}

// Discard drops a session without confirming. Safe to call twice.
func (s *SessionService) Discard(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// SweepIdle discards unconfirmed sessions with no activity for ttl and
// confirmed sessions immediately, returning how many were dropped.
// Abandoned mobile screens never tell the server goodbye.
func (s *SessionService) SweepIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		stale := sess.state == stateConfirmed || sess.lastActivity.Before(cutoff)
		sess.mu.Unlock()
		if stale {
			delete(s.sessions, id)
			swept++
		}
	}
	return swept
}

func (s *SessionService) GetConfirmQueue() <-chan Confirmation {
	return s.confirmQueue
}

func (s *SessionService) Close() {
	close(s.confirmQueue)
}
