// Package notify delivers one discovery run's ranked matches to the
// user. The engine calls Deliver at most once per run, and only when
// the run produced at least one match.
package notify

import (
	"context"

	"jobscout-bot/internal/models"
)

type Notifier interface {
	Deliver(ctx context.Context, userID int64, matches models.TieredMatches) error
}
