package main

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/IgorSondors/Vicuna/internal/conversation"
	"github.com/IgorSondors/Vicuna/internal/logger"
	"github.com/IgorSondors/Vicuna/internal/transcript"
)

// buildConversation resolves the template and applies the transcript,
// system override and prompt flags to it, in that order.
func (st *state) buildConversation(ctx context.Context, cmd *cli.Command) (*conversation.Template, error) {
	log := logger.FromContext(ctx)

	tpl, err := st.template(cmd)
	if err != nil {
		return nil, err
	}
	if path := cmd.String("transcript"); path != "" {
		tr, err := transcript.ReadFile(path)
		if err != nil {
			return nil, err
		}
		tr.Apply(tpl)
		log.Debug("applied transcript", "path", path, "turns", len(tr.Turns))
	}
	if cmd.IsSet("system") {
		tpl.System = cmd.String("system")
	}
	if cmd.IsSet("prompt") {
		tpl.AppendTurn(tpl.UserRole(), conversation.Text(cmd.String("prompt")))
		tpl.AppendTurn(tpl.AssistantRole(), conversation.Absent())
	}
	log.Debug("conversation ready", "template", tpl.Name, "style", tpl.Style.String(), "turns", len(tpl.Messages))
	return tpl, nil
}

// renderedPrompt is the --hints output of render.
type renderedPrompt struct {
	Template string                 `json:"template"`
	Prompt   string                 `json:"prompt"`
	Stop     conversation.StopHints `json:"stop"`
}

func renderCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render a conversation into a prompt string",
		Flags: append(conversationFlags(),
			&cli.BoolFlag{
				Name:  "hints",
				Usage: "print JSON with the prompt and the template's stop hints",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tpl, err := st.buildConversation(ctx, cmd)
			if err != nil {
				return err
			}
			prompt, err := tpl.Render()
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			if cmd.Bool("hints") {
				return writeJSON(w, renderedPrompt{
					Template: tpl.Name,
					Prompt:   prompt,
					Stop:     tpl.StopHints(),
				})
			}
			_, err = io.WriteString(w, prompt)
			return err
		},
	}
}

func messagesCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "messages",
		Usage: "Print the conversation as chat-completion style messages (JSON)",
		Flags: conversationFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tpl, err := st.buildConversation(ctx, cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.Root().Writer, tpl.StructuredMessages())
		},
	}
}

func pairsCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "pairs",
		Usage: "Print the conversation as [user, assistant] rows (JSON)",
		Flags: conversationFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tpl, err := st.buildConversation(ctx, cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd.Root().Writer, tpl.PairedView())
		},
	}
}

// writeJSON keeps separators such as "</s>" unescaped.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
