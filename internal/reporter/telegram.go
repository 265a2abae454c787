package reporter

import (
	"fmt"
	"html"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"leadscout/internal/config"
	"leadscout/internal/digest"
	"leadscout/internal/filter"
)

// TelegramReporter pushes a compact digest summary to a chat, as an
// optional side channel next to the email delivery.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendDigest sends a summary line followed by one message per lead.
// Page-derived text gets escaped first: Telegram rejects the whole message
// on malformed markup.
func (t *TelegramReporter) SendDigest(d digest.Digest) error {
	if d.FailureReason != "" {
		return t.SendMessage(fmt.Sprintf("⚠️ <b>Lead search failed</b>:\n%s", html.EscapeString(d.FailureReason)))
	}

	summary := fmt.Sprintf("🎯 <b>%d LinkedIn opportunities</b> - %s\n🔍 %s",
		len(d.Leads), d.DateLine(), html.EscapeString(d.Query.Label()))
	if err := t.SendMessage(summary); err != nil {
		return err
	}

	for i, lead := range d.Leads {
		//1 second delay to avoid 429
		time.Sleep(1 * time.Second)
		if err := t.sendLead(i+1, lead); err != nil {
			return err
		}
	}
	return nil
}

func (t *TelegramReporter) sendLead(rank int, lead filter.Lead) error {
	personas := ""
	if len(lead.PersonaMatches) > 0 {
		personas = "\n👥 " + html.EscapeString(strings.Join(lead.PersonaMatches, ", "))
	}

	text := fmt.Sprintf(
		"🚀 <b>Lead #%d</b> - %d/10\n"+
			"👤 %s\n"+
			"🕒 %s%s\n"+
			"🔗 <a href=\"%s\">View Post</a>",
		rank,
		lead.QualityScore,
		html.EscapeString(lead.Author),
		html.EscapeString(lead.PostedText),
		personas,
		html.EscapeString(lead.URL),
	)
	return t.SendMessage(text)
}
