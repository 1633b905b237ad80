package redis

import (
	"context"
	"fmt"
	"time"
)

const (
	OnboardingStateTTL = 30 * time.Minute
	RateLimitWindowTTL = 1 * time.Minute
)

func OnboardingStateKey(userID int64) string {
	return fmt.Sprintf("onboarding:user:%d", userID)
}

func RateLimitKey(userID int64) string {
	return fmt.Sprintf("ratelimit:user:%d", userID)
}

// SetOnboardingState mirrors the profile's onboarding state so text
// handlers can route without a postgres round trip. Postgres stays the
// source of truth; an expired key just means one extra lookup.
func (c *Cache) SetOnboardingState(ctx context.Context, userID int64, state string) error {
	return c.SetString(ctx, OnboardingStateKey(userID), state, OnboardingStateTTL)
}

func (c *Cache) GetOnboardingState(ctx context.Context, userID int64) (string, error) {
	return c.GetString(ctx, OnboardingStateKey(userID))
}

func (c *Cache) DeleteOnboardingState(ctx context.Context, userID int64) error {
	return c.Delete(ctx, OnboardingStateKey(userID))
}

// IncrementUserRateLimit counts a user's messages in the current
// one-minute window.
func (c *Cache) IncrementUserRateLimit(ctx context.Context, userID int64) (int64, error) {
	return c.IncrementWithExpiry(ctx, RateLimitKey(userID), RateLimitWindowTTL)
}
