package domain

// TelegramLink ties a Telegram chat to an application user so the reminder
// bot can address them.
type TelegramLink struct {
	ChatID int64
	UserID string
}
