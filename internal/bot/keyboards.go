package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CallbackDealAgain = "deal_again"
	CallbackShowDeck  = "show_deck"
	CallbackStats     = "stats"
)

func RoundKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Deal again", CallbackDealAgain),
			tgbotapi.NewInlineKeyboardButtonData("🂠 Deck", CallbackShowDeck),
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", CallbackStats),
		),
	)
}
