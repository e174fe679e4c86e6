package bot

import (
	"fmt"
	"strings"
	"time"

	"gemitalk/internal/domain"
	"gemitalk/internal/middleware"
	"gemitalk/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func (b *Bot) handleStart(c tele.Context) error {
	userID := strings.TrimSpace(c.Message().Payload)
	if userID == "" {
		return c.Send("Welcome to GemiTalk! Link this chat with /start <user-id> using the id from your profile page.")
	}

	if err := b.links.Link(c.Chat().ID, userID); err != nil {
		b.logger.Error("Failed to link chat", zap.Error(err), zap.Int64("chat_id", c.Chat().ID))
		return c.Send("Could not link this chat. Please try again later.")
	}

	b.logger.Info("Chat linked",
		zap.Int64("chat_id", c.Chat().ID),
		zap.String("user_id", userID),
	)
	return c.Send("Linked! I'll remind you here when sentences are due for review. Try /due or /stats.")
}

func (b *Bot) handleDue(c tele.Context) error {
	userID, _ := c.Get(middleware.UserIDKey).(string)

	items, err := b.reviews.DueItems(userID, time.Now())
	if err != nil {
		b.logger.Error("Failed to load due reviews", zap.Error(err), zap.String("user_id", userID))
		return c.Send("Could not load your reviews. Please try again later.")
	}

	return c.Send(formatDue(items))
}

func (b *Bot) handleStats(c tele.Context) error {
	userID, _ := c.Get(middleware.UserIDKey).(string)

	overview, err := b.progress.Overview(userID)
	if err != nil {
		if err == service.ErrProgressNotFound {
			return c.Send("No progress yet. Practice a sentence in the app first!")
		}
		b.logger.Error("Failed to load progress", zap.Error(err), zap.String("user_id", userID))
		return c.Send("Could not load your stats. Please try again later.")
	}

	return c.Send(formatStats(overview))
}

// SendReminders messages every linked chat that has reviews due at now.
// Failures for individual chats are logged and skipped.
func (b *Bot) SendReminders(now time.Time) {
	links, err := b.links.AllLinks()
	if err != nil {
		b.logger.Error("Failed to load chat links for reminders", zap.Error(err))
		return
	}

	sent := 0
	for _, link := range links {
		items, err := b.reviews.DueItems(link.UserID, now)
		if err != nil {
			b.logger.Error("Failed to load due reviews for reminder",
				zap.Error(err),
				zap.String("user_id", link.UserID),
			)
			continue
		}
		if len(items) == 0 {
			continue
		}

		chat := &tele.Chat{ID: link.ChatID}
		if _, err := b.bot.Send(chat, formatReminder(len(items))); err != nil {
			b.logger.Error("Failed to send reminder",
				zap.Error(err),
				zap.Int64("chat_id", link.ChatID),
			)
			continue
		}
		sent++
	}

	b.logger.Info("Review reminders sent", zap.Int("count", sent))
}

func formatDue(items []domain.ReviewItem) string {
	if len(items) == 0 {
		return "Nothing due right now. Nice work!"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You have %d sentence(s) due for review:\n", len(items))
	for i, item := range items {
		if i == 5 {
			fmt.Fprintf(&sb, "...and %d more", len(items)-5)
			break
		}
		fmt.Fprintf(&sb, "• %s\n", item.Sentence.Text)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatStats(overview *service.ProgressOverview) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Level %d (%s)\n", overview.Milestone.Level, overview.Milestone.Title)
	fmt.Fprintf(&sb, "XP: %d\n", overview.Progress.TotalXP)
	fmt.Fprintf(&sb, "Streak: %d day(s), best %d", overview.Progress.CurrentStreak, overview.Progress.LongestStreak)
	if overview.Next != nil {
		fmt.Fprintf(&sb, "\nNext: %s at %d XP (%d to go)",
			overview.Next.Title,
			overview.Next.XPRequired,
			overview.Next.XPRequired-overview.Progress.TotalXP,
		)
	}
	return sb.String()
}

func formatReminder(count int) string {
	return fmt.Sprintf("⏰ %d sentence(s) are due for review. Open GemiTalk to keep your streak going!", count)
}
