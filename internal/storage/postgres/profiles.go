package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"jobscout-bot/internal/profile"
)

// SaveProfile upserts the whole profile row. A profile is created once
// on CV upload and then updated in place as onboarding advances.
func (s *Store) SaveProfile(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, role_keywords, skills, years_experience,
			comp_band, work_mode, location, onboarding_state,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			role_keywords = EXCLUDED.role_keywords,
			skills = EXCLUDED.skills,
			years_experience = EXCLUDED.years_experience,
			comp_band = EXCLUDED.comp_band,
			work_mode = EXCLUDED.work_mode,
			location = EXCLUDED.location,
			onboarding_state = EXCLUDED.onboarding_state,
			updated_at = NOW()
	`

	_, err := s.sess.
		InsertBySql(query,
			p.UserID,
			pq.Array(p.RoleKeywords),
			pq.Array(p.Skills),
			p.YearsExperience,
			string(p.CompBand),
			string(p.WorkMode),
			p.Location,
			string(p.State),
		).
		ExecContext(ctx)

	if err != nil {
		s.logger.Error("failed to save profile",
			zap.Int64("user_id", p.UserID),
			zap.Error(err),
		)
		return fmt.Errorf("save profile: %w", err)
	}

	s.logger.Info("profile saved",
		zap.Int64("user_id", p.UserID),
		zap.String("state", string(p.State)),
	)

	return nil
}

// GetProfile returns (nil, nil) when the user has no profile yet.
func (s *Store) GetProfile(ctx context.Context, userID int64) (*profile.Profile, error) {
	query := `
		SELECT user_id, role_keywords, skills, years_experience,
		       comp_band, work_mode, location, onboarding_state,
		       created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	rows, err := s.sess.
		SelectBySql(query, userID).
		Rows()

	if err != nil {
		s.logger.Error("failed to get profile",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get profile: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("get profile: %w", err)
		}
		return nil, nil
	}

	var p profile.Profile
	var compBand, workMode, state string

	if err := rows.Scan(
		&p.UserID,
		pq.Array(&p.RoleKeywords),
		pq.Array(&p.Skills),
		&p.YearsExperience,
		&compBand,
		&workMode,
		&p.Location,
		&state,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		s.logger.Error("failed to scan profile",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("scan profile: %w", err)
	}

	p.CompBand = profile.CompBand(compBand)
	p.WorkMode = profile.WorkMode(workMode)

	parsed, err := profile.ParseState(state)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p.State = parsed

	return &p, nil
}

// ActiveUsers lists users whose onboarding reached the active state;
// only these are swept by the scheduler.
func (s *Store) ActiveUsers(ctx context.Context) ([]int64, error) {
	var ids []int64

	_, err := s.sess.
		Select("user_id").
		From("profiles").
		Where("onboarding_state = ?", string(profile.StateActive)).
		OrderBy("user_id").
		LoadContext(ctx, &ids)

	if err != nil {
		s.logger.Error("failed to get active users", zap.Error(err))
		return nil, fmt.Errorf("get active users: %w", err)
	}

	s.logger.Debug("active users", zap.Int("count", len(ids)))

	return ids, nil
}
