package postgres

import (
	"database/sql"

	"gemitalk/internal/domain"
)

// TelegramRepo implements repository.TelegramRepository
type TelegramRepo struct {
	db *sql.DB
}

// NewTelegramRepo creates a new telegram link repository
func NewTelegramRepo(db *sql.DB) *TelegramRepo {
	return &TelegramRepo{db: db}
}

// Link ties a chat to a user, replacing any previous link for that chat
func (r *TelegramRepo) Link(chatID int64, userID string) error {
	query := `
		INSERT INTO telegram_links (chat_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (chat_id)
		DO UPDATE SET user_id = EXCLUDED.user_id
	`
	_, err := r.db.Exec(query, chatID, userID)
	return err
}

// UserIDByChat returns the linked user id, "" when the chat is unlinked
func (r *TelegramRepo) UserIDByChat(chatID int64) (string, error) {
	var userID string
	query := `SELECT user_id FROM telegram_links WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&userID)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return userID, nil
}

// AllLinks returns every chat-to-user link
func (r *TelegramRepo) AllLinks() ([]domain.TelegramLink, error) {
	rows, err := r.db.Query(`SELECT chat_id, user_id FROM telegram_links`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.TelegramLink
	for rows.Next() {
		var l domain.TelegramLink
		if err := rows.Scan(&l.ChatID, &l.UserID); err != nil {
			return nil, err
		}
		links = append(links, l)
	}

	return links, rows.Err()
}
