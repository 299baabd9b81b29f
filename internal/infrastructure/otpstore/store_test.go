package otpstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/learnnect/otp-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(code string, ttl time.Duration) domain.OTPRecord {
	return domain.OTPRecord{
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
		Purpose:   domain.PurposeVerification,
	}
}

func TestPut_OverwritesExistingRecord(t *testing.T) {
	s := New()
	s.Put("a@x.com", record("111111", time.Minute))
	s.Put("a@x.com", record("222222", time.Minute))

	rec, ok := s.Get("a@x.com")
	require.True(t, ok)
	assert.Equal(t, "222222", rec.Code)
	assert.Equal(t, 1, s.Len())
}

func TestGet_Absent(t *testing.T) {
	s := New()
	_, ok := s.Get("nobody@x.com")
	assert.False(t, ok)
}

func TestDelete_Idempotent(t *testing.T) {
	s := New()
	s.Put("a@x.com", record("111111", time.Minute))
	s.Delete("a@x.com")
	s.Delete("a@x.com") // no record, no panic
	_, ok := s.Get("a@x.com")
	assert.False(t, ok)
}

func TestSweep_RemovesOnlyExpired(t *testing.T) {
	s := New()
	s.Put("live@x.com", record("111111", time.Minute))
	s.Put("dead@x.com", record("222222", -time.Minute))
	s.Put("gone@x.com", record("333333", -time.Hour))

	removed := s.Sweep(time.Now())

	assert.Equal(t, 2, removed)
	_, ok := s.Get("live@x.com")
	assert.True(t, ok)
	_, ok = s.Get("dead@x.com")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestSweep_EmptyStore(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Sweep(time.Now()))
}

func TestUpdate_DeleteOnNil(t *testing.T) {
	s := New()
	s.Put("a@x.com", record("111111", time.Minute))
	s.Update("a@x.com", func(rec *domain.OTPRecord) *domain.OTPRecord {
		require.NotNil(t, rec)
		return nil
	})
	_, ok := s.Get("a@x.com")
	assert.False(t, ok)
}

func TestUpdate_AbsentRecordSeesNil(t *testing.T) {
	s := New()
	called := false
	s.Update("a@x.com", func(rec *domain.OTPRecord) *domain.OTPRecord {
		called = true
		assert.Nil(t, rec)
		return nil
	})
	assert.True(t, called)
	assert.Equal(t, 0, s.Len())
}

// Concurrent increments through Update must not lose writes: the
// read-modify-write is one transaction under the store lock.
func TestUpdate_ConcurrentIncrementsAreAtomic(t *testing.T) {
	s := New()
	s.Put("a@x.com", record("111111", time.Minute))

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.Update("a@x.com", func(rec *domain.OTPRecord) *domain.OTPRecord {
				rec.Attempts++
				return rec
			})
		}()
	}
	wg.Wait()

	rec, ok := s.Get("a@x.com")
	require.True(t, ok)
	assert.Equal(t, n, rec.Attempts)
}

func TestStartSweep_RemovesExpiredInBackground(t *testing.T) {
	s := New()
	s.Put("dead@x.com", record("111111", -time.Minute))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.StartSweep(ctx, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		_, ok := s.Get("dead@x.com")
		return !ok
	}, time.Second, 5*time.Millisecond)
}
