package token_bucket

import (
	"sync"
	"time"
)

// Limiter либо принимает запрос, либо отклоняет и подсказывает, когда повторить.
type Limiter interface {
	Allow() bool
	RetryAfter() time.Duration
}

type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens > 0 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	tokensToAdd := int(elapsed * t.refillRate)

	if tokensToAdd > 0 {
		t.tokens += tokensToAdd
		if t.tokens > t.capacity {
			t.tokens = t.capacity
		}
		t.lastRefill = now
	}
}

// RetryAfter возвращает время до следующего токена.
// 0, если токен уже доступен или пополнение выключено.
func (t *TokenBucket) RetryAfter() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens > 0 || t.refillRate <= 0 {
		return 0
	}

	wait := 1/t.refillRate - time.Since(t.lastRefill).Seconds()
	if wait <= 0 {
		return 0
	}
	return time.Duration(wait * float64(time.Second))
}
