package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"studybot-be/pkg/conversation"
)

// WhatsApp caps interactive button messages at three reply buttons; choice
// prompts with more options are rendered as an interactive list instead.
const maxReplyButtons = 3

const defaultBaseURL = "https://graph.facebook.com/v18.0"

// Client sends messages through the WhatsApp Cloud API. It does not retry:
// a delivery failure is returned to the caller, which decides what to log.
type Client struct {
	accessToken   string
	phoneNumberId string
	baseURL       string
	httpClient    *http.Client
}

func NewClient(accessToken, phoneNumberId, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		accessToken:   accessToken,
		phoneNumberId: phoneNumberId,
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Send delivers an engine reply to the given phone number.
func (c *Client) Send(ctx context.Context, to string, msg conversation.OutgoingMessage) error {
	switch msg.Kind {
	case conversation.KindChoice:
		return c.SendChoice(ctx, to, msg.Body, msg.Options)
	default:
		return c.SendText(ctx, to, msg.Body)
	}
}

// SendText delivers a plain text message.
func (c *Client) SendText(ctx context.Context, to, body string) error {
	payload := textPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: body},
	}
	return c.post(ctx, payload)
}

// SendChoice delivers a choice prompt as reply buttons when the options fit,
// falling back to a single-section list when they don't.
func (c *Client) SendChoice(ctx context.Context, to, body string, options []conversation.ChoiceOption) error {
	var i interactive
	if len(options) <= maxReplyButtons {
		buttons := make([]button, len(options))
		for idx, opt := range options {
			buttons[idx] = button{Type: "reply", Reply: buttonReply{Id: opt.Id, Title: opt.Label}}
		}
		i = interactive{
			Type:   "button",
			Body:   interactiveBody{Text: body},
			Action: interactiveAction{Buttons: buttons},
		}
	} else {
		rows := make([]listRow, len(options))
		for idx, opt := range options {
			rows[idx] = listRow{Id: opt.Id, Title: opt.Label}
		}
		i = interactive{
			Type: "list",
			Body: interactiveBody{Text: body},
			Action: interactiveAction{
				Button:   "Choose a topic",
				Sections: []listSection{{Rows: rows}},
			},
		}
	}

	payload := interactivePayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "interactive",
		Interactive:      i,
	}
	return c.post(ctx, payload)
}

// MarkAsRead flags an inbound message as read so the user sees blue ticks.
func (c *Client) MarkAsRead(ctx context.Context, messageId string) error {
	payload := statusPayload{
		MessagingProduct: "whatsapp",
		Status:           "read",
		MessageId:        messageId,
	}
	return c.post(ctx, payload)
}

func (c *Client) post(ctx context.Context, payload interface{}) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberId)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("whatsapp api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var sendResp SendResponse
	if err := json.Unmarshal(bodyBytes, &sendResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if sendResp.Error != nil {
		return fmt.Errorf("whatsapp api returned error: %s", sendResp.Error.Message)
	}
	return nil
}
