package middleware

import (
	"strings"

	"gemitalk/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UserIDKey is the telebot context key the linked user id is stored under.
const UserIDKey = "user_id"

// LinkMiddleware resolves the chat's linked application account and stores
// the user id in the context. Unlinked chats are prompted to run /start;
// /start itself passes through because it carries the link payload.
func LinkMiddleware(telegramRepo repository.TelegramRepository, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if strings.HasPrefix(c.Text(), "/start") {
				return next(c)
			}

			userID, err := telegramRepo.UserIDByChat(c.Chat().ID)
			if err != nil {
				logger.Error("Failed to resolve chat link in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			if userID == "" {
				return c.Send("This chat is not linked to a GemiTalk account yet. Send /start <user-id> with the id from your profile page.")
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}
