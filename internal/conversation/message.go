package conversation

import (
	"bytes"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Message is an optional turn text. The zero value is absent, which tells
// the renderer that generation continues from this turn. A present empty
// string is a different value and renders as an empty message.
type Message struct {
	Text  string
	Valid bool
}

// Text returns a present message.
func Text(s string) Message {
	return Message{Text: s, Valid: true}
}

// Absent returns the "awaiting generation" message.
func Absent() Message {
	return Message{}
}

func (m Message) String() string {
	if !m.Valid {
		return "<absent>"
	}
	return m.Text
}

func (m Message) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Text)
}

func (m *Message) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*m = Message{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*m = Text(s)
	return nil
}

func (m Message) MarshalYAML() (any, error) {
	if !m.Valid {
		return nil, nil
	}
	return m.Text, nil
}

func (m *Message) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		*m = Message{}
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*m = Text(s)
	return nil
}

// Turn is one (role, message) entry of a conversation.
type Turn struct {
	Role    string  `yaml:"role" json:"role"`
	Message Message `yaml:"message" json:"message"`
}
