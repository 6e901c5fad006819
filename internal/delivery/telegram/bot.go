package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"quotebot/internal/domain"
	"quotebot/internal/metrics"
	"quotebot/internal/quote"
	"quotebot/internal/transcribe"
)

// QuoteGenerator is the pipeline entry point the bot drives.
type QuoteGenerator interface {
	Generate(ctx context.Context, req quote.QuoteRequest) (*quote.QuoteResult, error)
}

// CatalogImporter parses uploaded spreadsheets into products.
type CatalogImporter interface {
	Parse(r io.Reader) ([]domain.Product, error)
}

// ProductWriter is the slice of the catalog contract the import flow
// needs.
type ProductWriter interface {
	Insert(ctx context.Context, product domain.Product) (int, error)
}

// BotHandler receives customer utterances over Telegram and answers with
// rendered quote documents.
type BotHandler struct {
	bot         *tgbotapi.BotAPI
	quotes      QuoteGenerator
	transcriber transcribe.Transcriber
	importer    CatalogImporter
	products    ProductWriter
	adminChatID int64
	tempDir     string
	metrics     *metrics.Registry
	logger      *zap.Logger
}

func NewBotHandler(
	token string,
	quotes QuoteGenerator,
	transcriber transcribe.Transcriber,
	importer CatalogImporter,
	products ProductWriter,
	adminChatID int64,
	tempDir string,
	reg *metrics.Registry,
	logger *zap.Logger,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating bot api: %w", err)
	}

	return &BotHandler{
		bot:         bot,
		quotes:      quotes,
		transcriber: transcriber,
		importer:    importer,
		products:    products,
		adminChatID: adminChatID,
		tempDir:     tempDir,
		metrics:     reg,
		logger:      logger,
	}, nil
}

func (h *BotHandler) Username() string {
	return h.bot.Self.UserName
}

// Start runs the long-polling update loop until the context is canceled.
// Each message is handled on its own goroutine; requests share nothing
// but the read-only catalog.
func (h *BotHandler) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			return ctx.Err()
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}

func (h *BotHandler) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := h.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("getting file info: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(h.bot.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("building download request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading file: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading file body: %w", err)
	}

	return data, nil
}
