package bot

import (
	"fmt"
	"strings"

	"blackjackround/internal/config"
	"blackjackround/internal/game"
	"blackjackround/internal/history"
	"blackjackround/internal/report"
	"blackjackround/internal/rng"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Sender is the part of the Telegram API the handler talks to
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot    Sender
	cfg    *config.Config
	rounds history.Repository
	games  *game.Manager
	rng    rng.Generator
}

func NewHandler(bot Sender, cfg *config.Config, repo history.Repository, g rng.Generator) *Handler {
	return &Handler{
		bot:    bot,
		cfg:    cfg,
		rounds: repo,
		games:  game.NewManager(),
		rng:    g,
	}
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		logrus.WithError(err).WithField("chat", chatID).Error("failed to send message")
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		logrus.WithError(err).WithField("chat", chatID).Error("failed to send message")
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		logrus.WithError(err).Warn("failed to answer callback")
	}
}

func formatRound(r *game.Round) string {
	return fmt.Sprintf("🃏 %s\n🎴 %s\n\n%s",
		report.HandLine(game.Dealer, r.Dealer),
		report.HandLine(game.Player, r.Player),
		report.Outcome(r))
}

func formatStats(s history.Stats) string {
	return fmt.Sprintf(
		"📊 Rounds: %d\n"+
			"✅ Player: %d (%.1f%%)\n"+
			"❌ Dealer: %d\n"+
			"🤝 Push: %d",
		s.Rounds, s.PlayerWins, s.WinRate, s.DealerWins, s.Pushes)
}

func (h *Handler) HandleStart(chatID int64) {
	h.send(chatID,
		"🎰 Blackjack, one deal at a time.\n\n"+
			"/deal — deal a round\n"+
			"/stats — results so far\n"+
			"/history — last rounds\n"+
			"/help — rules")
}

func (h *Handler) HandleHelp(chatID int64) {
	var tie string
	switch h.cfg.Tie() {
	case game.TieToDealer:
		tie = "a tie goes to the dealer"
	case game.TiePush:
		tie = "a tie is a push"
	default:
		tie = "the dealer must beat you to win"
	}

	h.send(chatID,
		"📖 Rules:\n\n"+
			"You and the dealer get two cards each, the higher hand wins.\n\n"+
			"📊 Points:\n"+
			"• 2-9 — face value\n"+
			"• 10, J, Q, K — 10\n"+
			"• A — 11 or 1\n\n"+
			"🤝 On equal hands "+tie+".")
}

func (h *Handler) HandleDeal(chatID int64) {
	r := game.NewRound(h.rng, h.cfg.Tie())
	h.games.Set(chatID, r)

	if err := h.rounds.Save(history.NewRecord(chatID, r)); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"chat":  chatID,
			"round": r.ID,
		}).Error("failed to record round")
	}

	logrus.WithFields(logrus.Fields{
		"chat":   chatID,
		"round":  r.ID,
		"result": r.Result,
	}).Info("round dealt")

	h.sendWithKeyboard(chatID, formatRound(r), RoundKeyboard())
}

func (h *Handler) HandleStats(chatID int64) {
	s, err := h.rounds.StatsFor(chatID)
	if err != nil {
		logrus.WithError(err).WithField("chat", chatID).Error("failed to get stats")
		h.send(chatID, "❌ Error")
		return
	}

	if s.Rounds == 0 {
		h.send(chatID, "No rounds yet, try /deal")
		return
	}

	h.send(chatID, formatStats(s))
}

func (h *Handler) HandleHistory(chatID int64) {
	records, err := h.rounds.Recent(chatID, h.cfg.HistoryLimit)
	if err != nil {
		logrus.WithError(err).WithField("chat", chatID).Error("failed to get history")
		h.send(chatID, "❌ Error")
		return
	}

	if len(records) == 0 {
		h.send(chatID, "No rounds yet, try /deal")
		return
	}

	var sb strings.Builder
	sb.WriteString("🕑 Last rounds:\n\n")
	for _, rec := range records {
		sb.WriteString(fmt.Sprintf("%s (%d) vs %s (%d) — %s\n",
			rec.PlayerCards, rec.PlayerScore, rec.DealerCards, rec.DealerScore, rec.Result))
	}

	h.send(chatID, sb.String())
}

func (h *Handler) HandleShowDeck(chatID int64) bool {
	r := h.games.Get(chatID)
	if r == nil {
		return false
	}

	h.send(chatID, report.DeckSummary(r.Deck))
	return true
}

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}

	chatID := callback.Message.Chat.ID

	switch callback.Data {
	case CallbackDealAgain:
		h.answerCallback(callback.ID, "")
		h.HandleDeal(chatID)
	case CallbackShowDeck:
		if !h.HandleShowDeck(chatID) {
			h.answerCallback(callback.ID, "No round dealt")
			return
		}
		h.answerCallback(callback.ID, "")
	case CallbackStats:
		h.answerCallback(callback.ID, "")
		h.HandleStats(chatID)
	default:
		h.answerCallback(callback.ID, "")
	}
}

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}

	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	// "/deal@SomeBot" in groups
	cmd := strings.ToLower(strings.SplitN(parts[0], "@", 2)[0])

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/deal":
		h.HandleDeal(chatID)
	case "/stats":
		h.HandleStats(chatID)
	case "/history":
		h.HandleHistory(chatID)
	case "/deck":
		if !h.HandleShowDeck(chatID) {
			h.send(chatID, "No round dealt yet, try /deal")
		}
	}
}
