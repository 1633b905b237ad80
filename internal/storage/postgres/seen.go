package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"jobscout-bot/internal/models"
)

// LoadSeen returns the set of posting hashes already delivered to one
// user. The set is append-only; entries are never pruned here.
func (s *Store) LoadSeen(ctx context.Context, userID int64) (map[string]struct{}, error) {
	var hashes []string

	_, err := s.sess.
		Select("posting_hash").
		From("seen_postings").
		Where("user_id = ?", userID).
		LoadContext(ctx, &hashes)

	if err != nil {
		s.logger.Error("failed to load seen set",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("load seen set: %w", err)
	}

	set := make(map[string]struct{}, len(hashes))
	for _, h := range hashes {
		set[h] = struct{}{}
	}

	return set, nil
}

// CommitSeen appends one run's delta inside a single transaction, so a
// run either marks all its postings seen or none of them. Re-inserting
// an existing hash is a no-op.
func (s *Store) CommitSeen(ctx context.Context, userID int64, delta []models.SeenRecord) error {
	if len(delta) == 0 {
		return nil
	}

	tx, err := s.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("commit seen set: begin: %w", err)
	}
	defer tx.RollbackUnlessCommitted()

	query := `
		INSERT INTO seen_postings (user_id, posting_hash, score, discovered_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, posting_hash) DO NOTHING
	`

	for _, rec := range delta {
		_, err := tx.
			InsertBySql(query, rec.UserID, rec.PostingHash, rec.Score, rec.DiscoveredAt).
			ExecContext(ctx)
		if err != nil {
			s.logger.Error("failed to insert seen record",
				zap.Int64("user_id", userID),
				zap.String("posting_hash", rec.PostingHash),
				zap.Error(err),
			)
			return fmt.Errorf("commit seen set: insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seen set: %w", err)
	}

	s.logger.Debug("seen set committed",
		zap.Int64("user_id", userID),
		zap.Int("delta", len(delta)),
	)

	return nil
}

// SeenCount reports how many postings have been delivered to a user.
func (s *Store) SeenCount(ctx context.Context, userID int64) (int, error) {
	var count int

	err := s.sess.
		Select("COUNT(*)").
		From("seen_postings").
		Where("user_id = ?", userID).
		LoadOneContext(ctx, &count)

	if err != nil {
		s.logger.Error("failed to get seen count",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return 0, fmt.Errorf("get seen count: %w", err)
	}

	return count, nil
}
