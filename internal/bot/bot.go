package bot

import (
	"blackjackround/internal/config"
	"blackjackround/internal/history"
	"blackjackround/internal/rng"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
}

func New(cfg *config.Config, repo history.Repository) (*Bot, error) {
	if err := cfg.RequireBotToken(); err != nil {
		return nil, err
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	// handlers run concurrently, so the crypto source is used even when a seed is configured
	return &Bot{
		api:     api,
		handler: NewHandler(api, cfg, repo, rng.Crypto{}),
	}, nil
}

// Run handles updates until Stop is called
func (b *Bot) Run() error {
	logrus.WithField("username", b.api.Self.UserName).Info("bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			go b.handler.HandleCallback(update.CallbackQuery)
			continue
		}

		if update.Message != nil {
			go b.handler.HandleMessage(update.Message)
		}
	}

	return nil
}

// Stop closes the update channel, which makes Run return
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}
