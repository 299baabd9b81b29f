// Package otpstore holds the in-memory OTP records and their expiry sweep.
package otpstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/learnnect/otp-backend/internal/domain"
)

// SweepInterval is how often expired records are purged.
const SweepInterval = 5 * time.Minute

// Store maps recipient email addresses to OTP records. All access is
// serialized by a single mutex; records never leave the store by
// reference, so callers cannot observe one mid-mutation.
type Store struct {
	mu      sync.Mutex
	records map[string]domain.OTPRecord
}

func New() *Store {
	return &Store{records: make(map[string]domain.OTPRecord)}
}

// Put inserts or unconditionally replaces the record for email.
// Re-issuing a code invalidates the old one; last writer wins.
func (s *Store) Put(email string, rec domain.OTPRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[email] = rec
}

// Get returns a copy of the current record for email. Absence is a
// normal outcome, not a fault.
func (s *Store) Get(email string) (domain.OTPRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[email]
	return rec, ok
}

// Delete removes the record for email if present; idempotent.
func (s *Store) Delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, email)
}

// Update atomically applies fn to the record for email while holding
// the store lock. fn receives nil when no record exists and returns
// the record to keep; returning nil removes the entry. The whole
// read-modify-write runs as one transaction, so two concurrent
// verifications cannot both observe the same attempt count.
func (s *Store) Update(email string, fn func(rec *domain.OTPRecord) *domain.OTPRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cur *domain.OTPRecord
	if rec, ok := s.records[email]; ok {
		cur = &rec
	}
	if next := fn(cur); next != nil {
		s.records[email] = *next
	} else {
		delete(s.records, email)
	}
}

// Len returns the number of live records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Sweep removes every record whose expiry has passed at now and
// returns the number removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for email, rec := range s.records {
		if rec.Expired(now) {
			delete(s.records, email)
			removed++
		}
	}
	return removed
}

// StartSweep runs the periodic sweep until ctx is cancelled. It is the
// only autonomous background activity in the process; call it once at
// startup.
func (s *Store) StartSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if n := s.Sweep(now); n > 0 {
					slog.Info("swept expired OTP records", "removed", n)
				}
			}
		}
	}()
}
