package dto

// WhatsApp Business Account webhook payload, trimmed to the fields the
// dispatcher consumes.

type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	Id      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Messages         []InboundMessage `json:"messages"`
}

type InboundMessage struct {
	Id   string       `json:"id"`
	From string       `json:"from"`
	Type string       `json:"type"`
	Text *InboundText `json:"text"`
}

type InboundText struct {
	Body string `json:"body"`
}

// BodyText returns the message text, or "" for non-text messages.
func (m *InboundMessage) BodyText() string {
	if m.Text == nil {
		return ""
	}
	return m.Text.Body
}
