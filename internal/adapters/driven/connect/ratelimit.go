package connect

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// HourlyLimit is Apple's documented per-key request budget.
	HourlyLimit = 3500

	// ProactiveRate throttles below the hourly budget (~0.9 req/sec).
	ProactiveRate = 0.9

	// MinBuffer is the remaining-request floor below which the limiter
	// waits out the rest of the hour.
	MinBuffer = 50

	// HeaderRateLimit is Apple's combined rate limit header, e.g.
	// "user-hour-lim:3500;user-hour-rem:3488;".
	HeaderRateLimit = "X-Rate-Limit"
)

// RateLimiter combines proactive throttling with reactive tracking of
// the X-Rate-Limit header.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	limit     int
	windowEnd time.Time
	bucket    *rate.Limiter
}

// NewRateLimiter creates a rate limiter assuming a full hourly quota.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		remaining: HourlyLimit,
		limit:     HourlyLimit,
		bucket:    rate.NewLimiter(rate.Limit(ProactiveRate), 1),
	}
}

// Wait blocks until it is safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	remaining := r.remaining
	windowEnd := r.windowEnd
	r.mu.Unlock()

	if remaining < MinBuffer && time.Now().Before(windowEnd) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(windowEnd)):
		}
	}
	return nil
}

// UpdateFromResponse parses the X-Rate-Limit header. Apple packs the
// limit and remainder into one semicolon-separated value instead of
// separate headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}
	header := resp.Header.Get(HeaderRateLimit)
	if header == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, part := range strings.Split(header, ";") {
		key, value, found := strings.Cut(strings.TrimSpace(part), ":")
		if !found {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		switch key {
		case "user-hour-lim":
			r.limit = n
		case "user-hour-rem":
			r.remaining = n
			// The header carries no reset timestamp; assume the
			// remainder of the current hour.
			r.windowEnd = time.Now().Truncate(time.Hour).Add(time.Hour)
		}
	}
}

// Remaining returns the tracked remaining request count.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// Limit returns the tracked hourly limit.
func (r *RateLimiter) Limit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}
