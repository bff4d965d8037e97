package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// TelegramService handles sending notifications to Telegram.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// ClaimNotification contains claim data for Telegram notification.
type ClaimNotification struct {
	RecipientName string
	CampaignName  string
	GiftName      string
	Price         float64
	Currency      string
	City          string
	Country       string
}

// FormatPrice formats price with currency and thousand separators.
func FormatPrice(amount float64, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	intAmount := int64(amount)
	str := fmt.Sprintf("%d", intAmount)

	var result strings.Builder
	length := len(str)
	for i, digit := range str {
		if i > 0 && (length-i)%3 == 0 {
			result.WriteString(",")
		}
		result.WriteRune(digit)
	}

	return result.String() + " " + currency
}

// NotifyGiftClaimed sends notification about a placed gift order to admin chat.
func (s *TelegramService) NotifyGiftClaimed(claim ClaimNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	destination := claim.City
	if claim.Country != "" {
		if destination != "" {
			destination += ", "
		}
		destination += claim.Country
	}

	message := fmt.Sprintf(`<b>🎁 GIFT CLAIMED!</b>
<b>📋 Campaign:</b> %s
<b>👤 Recipient:</b> %s
<b>📦 Gift:</b> %s
<b>💰 Value:</b> %s
<b>📍 Shipping to:</b> %s
━━━━━━━━━━━━━━━━━━`,
		claim.CampaignName,
		claim.RecipientName,
		claim.GiftName,
		FormatPrice(claim.Price, claim.Currency),
		destination,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}

// NotifyGiftDonated sends notification about a donated gift budget.
func (s *TelegramService) NotifyGiftDonated(claim ClaimNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	message := fmt.Sprintf(`<b>❤️ GIFT DONATED!</b>
<b>📋 Campaign:</b> %s
<b>👤 Recipient:</b> %s
<b>❤️ Outcome:</b> Gave it forward to charity
━━━━━━━━━━━━━━━━━━`,
		claim.CampaignName,
		claim.RecipientName,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
