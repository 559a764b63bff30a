package service

import (
	"sync"
	"time"

	"github.com/rl1809/epc-inventory/internal/core/domain"
)

type sessionState int

const (
	stateAccumulating sessionState = iota
	stateConfirmed
)

// ScanSession accumulates classified scans for one (task, asset) pair.
// Records keep arrival order for display; at most one record exists
// per EPC. Sessions live in memory only and die with the process or
// the sweeper, whichever comes first.
//
// All mutation goes through SessionService, which holds mu across a
// whole batch so the in-session duplicate invariant cannot race.
type ScanSession struct {
	ID            string
	TaskID        string
	AssetID       string
	ExpectedCount int
	OpenedAt      time.Time

	mu           sync.Mutex
	state        sessionState
	records      []domain.ScanRecord
	index        map[string]int
	lastActivity time.Time
}

func newScanSession(id, taskID, assetID string, expected int) *ScanSession {
	now := time.Now()
	return &ScanSession{
		ID:            id,
		TaskID:        taskID,
		AssetID:       assetID,
		ExpectedCount: expected,
		OpenedAt:      now,
		index:         make(map[string]int),
		lastActivity:  now,
	}
}

// seen returns the set of EPCs currently recorded. Caller holds mu.
func (s *ScanSession) seen() map[string]bool {
	m := make(map[string]bool, len(s.records))
	for epc := range s.index {
		m[epc] = true
	}
	return m
}

// add appends a record. Caller holds mu and has checked the EPC is new.
func (s *ScanSession) add(rec domain.ScanRecord) {
	s.index[rec.EPC] = len(s.records)
	s.records = append(s.records, rec)
}

// removeEPC drops the record for an EPC and reindexes. Caller holds mu.
func (s *ScanSession) removeEPC(epc string) {
	i, ok := s.index[epc]
	if !ok {
		return
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	delete(s.index, epc)
	for j := i; j < len(s.records); j++ {
		s.index[s.records[j].EPC] = j
	}
}

// partition buckets records in arrival order. Caller holds mu.
func (s *ScanSession) partition() domain.Partition {
	var p domain.Partition
	for _, rec := range s.records {
		switch rec.Status {
		case domain.ScanStatusValid:
			p.Valid = append(p.Valid, rec)
		case domain.ScanStatusSurplus, domain.ScanStatusWrongAsset:
			p.Surplus = append(p.Surplus, rec)
		case domain.ScanStatusNotFound:
			p.Error = append(p.Error, rec)
		}
	}
	return p
}

// validEPCs lists the EPCs in the valid bucket. Caller holds mu.
func (s *ScanSession) validEPCs() []string {
	var epcs []string
	for _, rec := range s.records {
		if rec.Status == domain.ScanStatusValid {
			epcs = append(epcs, rec.EPC)
		}
	}
	return epcs
}

func (s *ScanSession) touch() {
	s.lastActivity = time.Now()
}
