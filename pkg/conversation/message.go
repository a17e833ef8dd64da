package conversation

// Message kinds produced by the engine. The transport decides how a choice
// prompt is rendered (buttons vs list); the engine only states intent.
const (
	KindText   = "text"
	KindChoice = "choice"
)

// ChoiceOption is one selectable reply in a choice prompt.
type ChoiceOption struct {
	Id    string `json:"id"`
	Label string `json:"label"`
}

// OutgoingMessage is the engine's reply, handed to a Sender for delivery.
type OutgoingMessage struct {
	Kind    string         `json:"kind"`
	Body    string         `json:"body"`
	Options []ChoiceOption `json:"options,omitempty"`
}

// TextMessage builds a plain text reply.
func TextMessage(body string) OutgoingMessage {
	return OutgoingMessage{Kind: KindText, Body: body}
}

// ChoiceMessage builds a choice prompt with the given options.
func ChoiceMessage(body string, options []ChoiceOption) OutgoingMessage {
	return OutgoingMessage{Kind: KindChoice, Body: body, Options: options}
}
