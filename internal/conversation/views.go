package conversation

// Pair is one row of the paired view: a user message and the assistant
// reply, if any.
type Pair struct {
	User      Message `json:"user" yaml:"user"`
	Assistant Message `json:"assistant" yaml:"assistant"`
}

// ChatMessage is one record of the chat-completion style view.
type ChatMessage struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// conversationTurns returns the turns after the few-shot prefix.
func (t *Template) conversationTurns() []Turn {
	if t.Offset <= 0 {
		return t.Messages
	}
	if t.Offset >= len(t.Messages) {
		return nil
	}
	return t.Messages[t.Offset:]
}

// PairedView regroups the turns after Offset into rows. Even positions open
// a row, odd positions fill the reply of the latest row.
func (t *Template) PairedView() []Pair {
	turns := t.conversationTurns()
	rows := make([]Pair, 0, (len(turns)+1)/2)
	for i, turn := range turns {
		if i%2 == 0 {
			rows = append(rows, Pair{User: turn.Message})
			continue
		}
		rows[len(rows)-1].Assistant = turn.Message
	}
	return rows
}

// StructuredMessages returns the system preamble followed by the turns after
// Offset as user/assistant records. Absent assistant turns are left out; an
// absent user turn becomes empty content.
func (t *Template) StructuredMessages() []ChatMessage {
	turns := t.conversationTurns()
	out := make([]ChatMessage, 0, len(turns)+1)
	out = append(out, ChatMessage{Role: RoleSystem, Content: t.System})
	for i, turn := range turns {
		if i%2 == 0 {
			out = append(out, ChatMessage{Role: RoleUser, Content: turn.Message.Text})
			continue
		}
		if turn.Message.Valid {
			out = append(out, ChatMessage{Role: RoleAssistant, Content: turn.Message.Text})
		}
	}
	return out
}
