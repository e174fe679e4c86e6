package postgres

import (
	"database/sql"

	"gemitalk/internal/domain"
)

// ProgressRepo implements repository.ProgressRepository
type ProgressRepo struct {
	db *sql.DB
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// Get returns the user's progress record, nil when none exists
func (r *ProgressRepo) Get(userID string) (*domain.UserProgress, error) {
	var p domain.UserProgress
	var lastPractice sql.NullTime
	query := `
		SELECT total_xp, current_streak, longest_streak, level, last_practice_date
		FROM user_progress
		WHERE user_id = $1
	`
	err := r.db.QueryRow(query, userID).Scan(
		&p.TotalXP, &p.CurrentStreak, &p.LongestStreak, &p.Level, &lastPractice,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if lastPractice.Valid {
		p.LastPracticeDate = &lastPractice.Time
	}

	return &p, nil
}

// Save upserts the progress record
func (r *ProgressRepo) Save(userID string, progress *domain.UserProgress) error {
	var lastPractice sql.NullTime
	if progress.LastPracticeDate != nil {
		lastPractice = sql.NullTime{Time: *progress.LastPracticeDate, Valid: true}
	}

	query := `
		INSERT INTO user_progress (user_id, total_xp, current_streak, longest_streak, level, last_practice_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id)
		DO UPDATE SET
			total_xp = EXCLUDED.total_xp,
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			level = EXCLUDED.level,
			last_practice_date = EXCLUDED.last_practice_date,
			updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID,
		progress.TotalXP, progress.CurrentStreak, progress.LongestStreak,
		progress.Level, lastPractice,
	)
	return err
}

// EnsureExists creates a zero-default record if none exists
func (r *ProgressRepo) EnsureExists(userID string, level domain.Level) error {
	query := `
		INSERT INTO user_progress (user_id, total_xp, current_streak, longest_streak, level)
		VALUES ($1, 0, 0, 0, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, level)
	return err
}
