package postgres

import (
	"database/sql"
	"time"

	"gemitalk/internal/domain"
)

// ReviewRepo implements repository.ReviewRepository
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo creates a new review bank repository
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

const reviewColumns = `sentence_id, text, translation, explanation, phonetic, last_reviewed, next_review, interval_days, box`

// GetByUser returns all of the user's review items
func (r *ReviewRepo) GetByUser(userID string) ([]domain.ReviewItem, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM review_items
		WHERE user_id = $1
		ORDER BY next_review ASC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ReviewItem
	for rows.Next() {
		item, err := scanReviewItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// GetBySentence returns the user's item for a sentence, nil when absent
func (r *ReviewRepo) GetBySentence(userID, sentenceID string) (*domain.ReviewItem, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM review_items
		WHERE user_id = $1 AND sentence_id = $2
	`
	row := r.db.QueryRow(query, userID, sentenceID)

	item, err := scanReviewItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new review item; an existing item for the same sentence
// is left untouched
func (r *ReviewRepo) Create(userID string, item domain.ReviewItem) error {
	query := `
		INSERT INTO review_items (user_id, sentence_id, text, translation, explanation, phonetic, last_reviewed, next_review, interval_days, box)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, sentence_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, item.ID,
		item.Sentence.Text, item.Sentence.Translation, item.Sentence.Explanation, item.Sentence.Phonetic,
		item.LastReviewed, item.NextReview, item.IntervalDays, item.Box,
	)
	return err
}

// Update rewrites the scheduling state of an existing item
func (r *ReviewRepo) Update(userID string, item domain.ReviewItem) error {
	query := `
		UPDATE review_items
		SET last_reviewed = $1, next_review = $2, interval_days = $3, box = $4
		WHERE user_id = $5 AND sentence_id = $6
	`
	_, err := r.db.Exec(query,
		item.LastReviewed, item.NextReview, item.IntervalDays, item.Box,
		userID, item.ID,
	)
	return err
}

// PruneStale deletes items last reviewed before cutoff
func (r *ReviewRepo) PruneStale(cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM review_items
		WHERE last_reviewed < $1
	`
	res, err := r.db.Exec(query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReviewItem(row rowScanner) (domain.ReviewItem, error) {
	var item domain.ReviewItem
	err := row.Scan(
		&item.ID,
		&item.Sentence.Text, &item.Sentence.Translation,
		&item.Sentence.Explanation, &item.Sentence.Phonetic,
		&item.LastReviewed, &item.NextReview, &item.IntervalDays, &item.Box,
	)
	item.Sentence.ID = item.ID
	return item, err
}
