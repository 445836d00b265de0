package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Update represents a Telegram update
type Update struct {
	UpdateID int      `json:"update_id"`
	Message  *Message `json:"message"`
}

// Message represents a Telegram message
type Message struct {
	MessageID int    `json:"message_id"`
	From      User   `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

// User represents a Telegram user
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// Chat represents a Telegram chat
type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// Client is a thin wrapper over the Bot API methods the bot needs.
type Client struct {
	Token      string
	APIBase    string
	HTTPClient *http.Client
}

// NewClient creates a new Telegram client. Long polls hold the connection
// open for up to the poll timeout, so the HTTP timeout leaves room for it.
func NewClient(token string) *Client {
	return &Client{
		Token:      token,
		APIBase:    "https://api.telegram.org",
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type apiResponse[T any] struct {
	OK          bool   `json:"ok"`
	Result      T      `json:"result"`
	Description string `json:"description"`
}

func (c *Client) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.APIBase, c.Token, method)
}

// GetUpdates fetches updates starting at offset, waiting up to timeout seconds.
func (c *Client) GetUpdates(ctx context.Context, offset int, timeout int) ([]Update, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("timeout", strconv.Itoa(timeout))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("getUpdates")+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var result apiResponse[[]Update]
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return result.Result, nil
}

// SendMessage sends a Markdown message to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	body, err := json.Marshal(map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "Markdown",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("sendMessage"), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	var result apiResponse[json.RawMessage]
	return c.do(req, &result)
}

func (c *Client) do(req *http.Request, out interface{ ok() (bool, string) }) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API returned status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode telegram response: %w", err)
	}
	if ok, desc := out.ok(); !ok {
		return fmt.Errorf("telegram API reported error: %s", desc)
	}
	return nil
}

func (r *apiResponse[T]) ok() (bool, string) { return r.OK, r.Description }
