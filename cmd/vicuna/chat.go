package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/IgorSondors/Vicuna/internal/conversation"
	"github.com/IgorSondors/Vicuna/internal/logger"
)

// execGenerator runs an external program once per reply. The rendered prompt
// is written to its stdin and its stdout is taken as the reply. Stop hints
// are exported as VICUNA_STOP_STR and VICUNA_STOP_TOKEN_IDS.
type execGenerator struct {
	argv    []string
	timeout time.Duration
	log     logger.Logger
}

func (g *execGenerator) Generate(ctx context.Context, prompt string, hints conversation.StopHints) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, g.argv[0], g.argv[1:]...)
	cmd.Stdin = strings.NewReader(prompt)
	cmd.Env = append(os.Environ(),
		"VICUNA_STOP_STR="+hints.StopStr,
		"VICUNA_STOP_TOKEN_IDS="+joinInts(hints.StopTokenIDs),
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	g.log.Debug("generator finished", "program", g.argv[0], "elapsed", time.Since(start), "bytes", stdout.Len())
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", g.argv[0], err, msg)
		}
		return "", fmt.Errorf("%s: %w", g.argv[0], err)
	}
	return stdout.String(), nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func chatCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:      "chat",
		Usage:     "Hold a conversation through an external generator program",
		ArgsUsage: "-- PROGRAM [ARGS...]",
		Flags: []cli.Flag{
			templateFlag(),
			&cli.StringFlag{
				Name:    "system",
				Aliases: []string{"sys"},
				Usage:   "replace the template's system preamble",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "limit for a single generator run (0 = none)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			argv := cmd.Args().Slice()
			if len(argv) == 0 {
				return errors.New("chat: generator program is required")
			}

			tpl, err := st.template(cmd)
			if err != nil {
				return err
			}
			if cmd.IsSet("system") {
				tpl.System = cmd.String("system")
			}
			gen := &execGenerator{argv: argv, timeout: cmd.Duration("timeout"), log: log}
			session, err := conversation.NewSession(tpl, gen)
			if err != nil {
				return err
			}

			root := cmd.Root()
			interactive := isTerminal(root.Writer)
			in := bufio.NewScanner(root.Reader)
			in.Buffer(make([]byte, 0, 64*1024), 1<<20)
			for {
				if interactive {
					_, _ = fmt.Fprintf(root.Writer, "%s: ", tpl.UserRole())
				}
				if !in.Scan() {
					return in.Err()
				}
				line := strings.TrimSpace(in.Text())
				if line == "" {
					continue
				}
				if line == "/exit" || line == "/quit" {
					return nil
				}
				reply, err := session.Send(ctx, line)
				if err != nil {
					return err
				}
				if interactive {
					_, _ = fmt.Fprintf(root.Writer, "%s: %s\n", tpl.AssistantRole(), reply)
				} else {
					_, _ = fmt.Fprintln(root.Writer, reply)
				}
			}
		},
	}
}
