package conversation

import (
	"context"
	"errors"
	"fmt"
)

// Generator turns a rendered prompt into text. Implementations wrap a model
// runtime or a completion API; stop hints are passed through as-is.
type Generator interface {
	Generate(ctx context.Context, prompt string, hints StopHints) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string, hints StopHints) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string, hints StopHints) (string, error) {
	return f(ctx, prompt, hints)
}

// SingleTurnPrompt appends text as a user turn plus an absent assistant turn
// and renders the result. If rendering fails both turns are removed again.
func SingleTurnPrompt(t *Template, text string) (string, error) {
	n := len(t.Messages)
	t.AppendTurn(t.UserRole(), Text(text))
	t.AppendTurn(t.AssistantRole(), Absent())
	prompt, err := t.Render()
	if err != nil {
		t.Messages = t.Messages[:n]
		return "", err
	}
	return prompt, nil
}

// Session drives a multi-turn exchange over one private template copy.
type Session struct {
	tpl *Template
	gen Generator
}

func NewSession(tpl *Template, gen Generator) (*Session, error) {
	if tpl == nil {
		return nil, errors.New("session: nil template")
	}
	if gen == nil {
		return nil, errors.New("session: nil generator")
	}
	return &Session{tpl: tpl, gen: gen}, nil
}

// Template exposes the underlying conversation.
func (s *Session) Template() *Template {
	return s.tpl
}

// Send renders the conversation with text as the newest user turn, asks the
// generator for a reply and stores the cleaned reply as the assistant turn.
// On failure the conversation is left as it was before the call, so Send can
// simply be called again.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	n := len(s.tpl.Messages)
	prompt, err := SingleTurnPrompt(s.tpl, text)
	if err != nil {
		return "", err
	}
	raw, err := s.gen.Generate(ctx, prompt, s.tpl.StopHints())
	if err != nil {
		s.tpl.Messages = s.tpl.Messages[:n]
		return "", fmt.Errorf("generate: %w", err)
	}
	reply := CleanReply(raw)
	s.tpl.Messages[len(s.tpl.Messages)-1].Message = Text(reply)
	return reply, nil
}
