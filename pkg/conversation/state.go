package conversation

// Conversation states. Any value outside this set is treated as StateInitial
// so a corrupted session falls back to the welcome flow instead of failing.
const (
	StateInitial        = "initial"
	StateTopicSelection = "topic_selection"
	StateQuestionMode   = "question_mode"
	StateMenu           = "menu"
)

// Topics offered by the welcome prompt, in display order.
var Topics = []Topic{
	{Tag: "math", Label: "Mathematics"},
	{Tag: "science", Label: "Science"},
	{Tag: "english", Label: "English"},
	{Tag: "history", Label: "History"},
}

type Topic struct {
	Tag   string
	Label string
}

// IsKnownTopic reports whether tag is one of the quiz topics.
func IsKnownTopic(tag string) bool {
	for _, t := range Topics {
		if t.Tag == tag {
			return true
		}
	}
	return false
}
