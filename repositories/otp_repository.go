// repositories/otp_repository.go
package repositories

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/skillang/skillang_backend/models"
)

// OTPStore is ephemeral keyed storage mapping an email address to its
// currently valid one-time code, plus the per-email failed-attempt counter
// used for verification lockout. Get returns (nil, nil) when no live record
// exists; an expired record counts as absent.
type OTPStore interface {
	Get(ctx context.Context, email string) (*models.OTPRecord, error)
	Set(ctx context.Context, rec models.OTPRecord) error
	Delete(ctx context.Context, email string) error
	IncrAttempts(ctx context.Context, email string, window time.Duration) (int64, error)
	ResetAttempts(ctx context.Context, email string) error
}

// ---------------------------------------------------------------------------
// In-memory store
// ---------------------------------------------------------------------------

type attemptWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryOTPStore keeps OTP records in a mutex-guarded map. Expiry is enforced
// on read; there is no background sweeper. Used when Redis is unreachable.
type MemoryOTPStore struct {
	mu       sync.Mutex
	records  map[string]models.OTPRecord
	attempts map[string]attemptWindow
	now      func() time.Time
}

// NewMemoryOTPStore creates an empty in-memory OTP store.
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		records:  make(map[string]models.OTPRecord),
		attempts: make(map[string]attemptWindow),
		now:      time.Now,
	}
}

func (s *MemoryOTPStore) Get(ctx context.Context, email string) (*models.OTPRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[email]
	if !ok {
		return nil, nil
	}
	if rec.Expired(s.now()) {
		delete(s.records, email)
		return nil, nil
	}
	return &rec, nil
}

func (s *MemoryOTPStore) Set(ctx context.Context, rec models.OTPRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[rec.Email] = rec
	return nil
}

func (s *MemoryOTPStore) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, email)
	return nil
}

func (s *MemoryOTPStore) IncrAttempts(ctx context.Context, email string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	w, ok := s.attempts[email]
	if !ok || now.After(w.resetAt) {
		w = attemptWindow{count: 0, resetAt: now.Add(window)}
	}
	w.count++
	s.attempts[email] = w
	return w.count, nil
}

func (s *MemoryOTPStore) ResetAttempts(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.attempts, email)
	return nil
}

// ---------------------------------------------------------------------------
// Redis store
// ---------------------------------------------------------------------------

// RedisOTPStore keeps OTP records as JSON under otp:<email> with a key TTL
// matching the record validity window, and attempt counters under
// otp_attempts:<email>.
type RedisOTPStore struct {
	client *redis.Client
}

// NewRedisOTPStore wraps an established Redis client.
func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

func otpKey(email string) string      { return "otp:" + email }
func attemptsKey(email string) string { return "otp_attempts:" + email }

func (s *RedisOTPStore) Get(ctx context.Context, email string) (*models.OTPRecord, error) {
	data, err := s.client.Get(ctx, otpKey(email)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec models.OTPRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	// The key TTL already bounds the lifetime, but the record is re-checked
	// here so both stores behave identically around the expiry instant.
	if rec.Expired(time.Now()) {
		s.client.Del(ctx, otpKey(email))
		return nil, nil
	}
	return &rec, nil
}

func (s *RedisOTPStore) Set(ctx context.Context, rec models.OTPRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	ttl := time.Until(rec.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}
	return s.client.Set(ctx, otpKey(rec.Email), data, ttl).Err()
}

func (s *RedisOTPStore) Delete(ctx context.Context, email string) error {
	return s.client.Del(ctx, otpKey(email)).Err()
}

func (s *RedisOTPStore) IncrAttempts(ctx context.Context, email string, window time.Duration) (int64, error) {
	key := attemptsKey(email)
	attempts, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	// Set expiry if first attempt
	if attempts == 1 {
		s.client.Expire(ctx, key, window)
	}
	return attempts, nil
}

func (s *RedisOTPStore) ResetAttempts(ctx context.Context, email string) error {
	return s.client.Del(ctx, attemptsKey(email)).Err()
}
