// Package bot runs the Telegram companion bot: linking chats to accounts,
// answering quick queries and nudging learners with due-review reminders.
package bot

import (
	"fmt"
	"time"

	"gemitalk/internal/middleware"
	"gemitalk/internal/repository"
	"gemitalk/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Bot wraps the telebot instance together with the services it exposes.
type Bot struct {
	bot      *tele.Bot
	links    repository.TelegramRepository
	reviews  *service.ReviewService
	progress *service.ProgressService
	logger   *zap.Logger
}

// New creates the bot and registers its handlers.
func New(
	token string,
	links repository.TelegramRepository,
	reviews *service.ReviewService,
	progress *service.ProgressService,
	logger *zap.Logger,
) (*Bot, error) {
	settings := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(settings)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		links:    links,
		reviews:  reviews,
		progress: progress,
		logger:   logger,
	}

	b.Use(middleware.LinkMiddleware(links, logger))
	b.Handle("/start", bot.handleStart)
	b.Handle("/due", bot.handleDue)
	b.Handle("/stats", bot.handleStats)

	return bot, nil
}

// Start begins polling for updates. It blocks until Stop is called.
func (b *Bot) Start() {
	b.logger.Info("Telegram bot started")
	b.bot.Start()
}

// Stop shuts down the poller.
func (b *Bot) Stop() {
	b.bot.Stop()
	b.logger.Info("Telegram bot stopped")
}
