package telegram

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// CommandResult holds the output of a command execution.
type CommandResult struct {
	Messages []string
}

// Executor runs one chat line. A nil result means the line is ignored.
type Executor interface {
	Execute(input string) (*CommandResult, error)
}

// Bot long-polls Telegram and feeds commands to an Executor.
type Bot struct {
	client   *Client
	executor Executor
	chatID   int64
	logger   *zap.Logger

	lastUpdateID int
	// Checkpoint, when set, is called with every new update id so that the
	// poll can resume after a restart.
	Checkpoint func(updateID int)
	// RetryDelay is the pause after a failed poll.
	RetryDelay time.Duration
}

// NewBot serves chatID, or every chat when chatID is 0.
func NewBot(client *Client, chatID int64, lastUpdateID int, exec Executor, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		client:       client,
		executor:     exec,
		chatID:       chatID,
		logger:       logger,
		lastUpdateID: lastUpdateID,
		RetryDelay:   5 * time.Second,
	}
}

// Run polls until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("telegram bot started", zap.Int64("chat_id", b.chatID))
	for {
		updates, err := b.client.GetUpdates(ctx, b.lastUpdateID+1, 25)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			b.logger.Warn("fetching updates failed", zap.Error(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(b.RetryDelay):
			}
			continue
		}

		for _, update := range updates {
			if update.UpdateID > b.lastUpdateID {
				b.lastUpdateID = update.UpdateID
				if b.Checkpoint != nil {
					b.Checkpoint(b.lastUpdateID)
				}
			}
			if update.Message != nil {
				b.handleMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *Message) {
	if b.chatID != 0 && msg.Chat.ID != b.chatID {
		return
	}
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, "/") && !strings.HasPrefix(text, "?") {
		return
	}

	log := b.logger.With(zap.Int64("chat_id", msg.Chat.ID), zap.String("from", msg.From.Username))
	result, err := b.executor.Execute(text)
	if err != nil {
		log.Error("command failed", zap.String("text", text), zap.Error(err))
		b.send(ctx, msg.Chat.ID, "Error: "+err.Error())
		return
	}
	if result == nil {
		return
	}
	for _, reply := range result.Messages {
		if reply != "" {
			b.send(ctx, msg.Chat.ID, reply)
		}
	}
}

func (b *Bot) send(ctx context.Context, chatID int64, text string) {
	if err := b.client.SendMessage(ctx, chatID, text); err != nil && !errors.Is(err, context.Canceled) {
		b.logger.Warn("sending reply failed", zap.Error(err))
	}
}
