package telegram

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"quotebot/internal/quote"
)

const (
	greetingReply = "مرحباً! أرسل لي رسالة صوتية أو نصية بطلبك وسأقوم بإنشاء عرض سعر لك.\n" +
		"Hello! Send me a voice or text message with your order and I will generate a quote."
	processingReply   = "جاري معالجة طلبك... / Processing your request..."
	transcribingReply = "تحويل الصوت إلى نص... / Transcribing audio..."
	extractedPrefix   = "النص المستخرج / Extracted Text:\n"
	errorReply        = "حدث خطأ أثناء معالجة طلبك. الرجاء المحاولة مرة أخرى."
)

func (h *BotHandler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	switch {
	case msg.IsCommand() && msg.Command() == "start":
		h.reply(msg.Chat.ID, greetingReply)
	case msg.Voice != nil:
		h.handleVoice(ctx, msg)
	case msg.Document != nil:
		h.handleDocument(ctx, msg)
	case msg.Text != "":
		h.handleText(ctx, msg)
	}
}

func (h *BotHandler) handleText(ctx context.Context, msg *tgbotapi.Message) {
	h.reply(msg.Chat.ID, processingReply)
	h.generateAndSend(ctx, msg, msg.Text)
}

func (h *BotHandler) handleVoice(ctx context.Context, msg *tgbotapi.Message) {
	h.reply(msg.Chat.ID, transcribingReply)

	audio, err := h.downloadFile(ctx, msg.Voice.FileID)
	if err != nil {
		h.logger.Error("downloading voice message", zap.Error(err))
		h.reply(msg.Chat.ID, errorReply)
		return
	}

	// The raw audio is parked on disk for the duration of the request and
	// removed once transcription finishes, successful or not.
	tempPath := filepath.Join(h.tempDir, uuid.NewString()+".ogg")
	if err := os.WriteFile(tempPath, audio, 0o600); err != nil {
		h.logger.Error("writing temp audio file", zap.String("path", tempPath), zap.Error(err))
		h.reply(msg.Chat.ID, errorReply)
		return
	}
	defer os.Remove(tempPath)

	mimeType := msg.Voice.MimeType
	if mimeType == "" {
		mimeType = "audio/ogg"
	}

	result := h.transcriber.Transcribe(ctx, audio, mimeType)
	if result.Fallback {
		h.metrics.TranscribeFallbacks.Inc()
		h.logger.Warn("transcription fell back to placeholder",
			zap.Int64("chatId", msg.Chat.ID), zap.String("reason", result.Reason))
	}

	h.reply(msg.Chat.ID, extractedPrefix+result.Text)
	h.generateAndSend(ctx, msg, result.Text)
}

func (h *BotHandler) generateAndSend(ctx context.Context, msg *tgbotapi.Message, text string) {
	res, err := h.quotes.Generate(ctx, quote.QuoteRequest{
		CustomerID: displayName(msg.From),
		RawText:    text,
	})
	if err != nil {
		h.logger.Error("generating quote", zap.Int64("chatId", msg.Chat.ID), zap.Error(err))
		h.reply(msg.Chat.ID, errorReply)
		return
	}

	doc := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  res.Filename,
		Bytes: res.Document,
	})
	if _, err := h.bot.Send(doc); err != nil {
		h.logger.Error("sending quote document", zap.Int64("chatId", msg.Chat.ID), zap.Error(err))
		h.reply(msg.Chat.ID, errorReply)
	}
}

// handleDocument accepts catalog spreadsheets, admin chat only.
func (h *BotHandler) handleDocument(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat.ID != h.adminChatID {
		return
	}
	if !isSpreadsheet(msg.Document.FileName) {
		h.reply(msg.Chat.ID, "الرجاء إرسال ملف بصيغة xlsx / Please send an .xlsx file")
		return
	}

	data, err := h.downloadFile(ctx, msg.Document.FileID)
	if err != nil {
		h.logger.Error("downloading catalog file", zap.Error(err))
		h.reply(msg.Chat.ID, errorReply)
		return
	}

	products, err := h.importer.Parse(bytes.NewReader(data))
	if err != nil {
		h.logger.Error("parsing catalog file", zap.Error(err))
		h.reply(msg.Chat.ID, fmt.Sprintf("تعذر قراءة الملف / Could not read file: %v", err))
		return
	}

	inserted := 0
	for _, p := range products {
		if _, err := h.products.Insert(ctx, p); err != nil {
			h.logger.Error("inserting imported product", zap.String("name", p.Name), zap.Error(err))
			continue
		}
		inserted++
	}

	h.logger.Info("catalog import finished",
		zap.Int("parsed", len(products)), zap.Int("inserted", inserted))
	h.reply(msg.Chat.ID, fmt.Sprintf("تم استيراد %d منتجات / Imported %d products", inserted, inserted))
}

func (h *BotHandler) reply(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.logger.Warn("sending reply", zap.Int64("chatId", chatID), zap.Error(err))
	}
}

func displayName(user *tgbotapi.User) string {
	if user == nil {
		return "Unknown"
	}
	if name := strings.TrimSpace(user.FirstName + " " + user.LastName); name != "" {
		return name
	}
	if user.UserName != "" {
		return user.UserName
	}
	return fmt.Sprintf("User_%d", user.ID)
}

func isSpreadsheet(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".xlsx")
}
