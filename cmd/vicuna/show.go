package main

import (
	"context"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/IgorSondors/Vicuna/internal/conversation"
)

// templateReport is the snapshot of a template plus its formatting details.
type templateReport struct {
	conversation.Snapshot `yaml:",inline"`

	Style        string `yaml:"sep_style"`
	Sep          string `yaml:"sep"`
	Sep2         string `yaml:"sep2,omitempty"`
	StopStr      string `yaml:"stop_str,omitempty"`
	StopTokenIDs []int  `yaml:"stop_token_ids,omitempty,flow"`
}

func newTemplateReport(tpl *conversation.Template) templateReport {
	hints := tpl.StopHints()
	return templateReport{
		Snapshot:     tpl.Snapshot(),
		Style:        tpl.Style.String(),
		Sep:          tpl.Sep,
		Sep2:         tpl.Sep2,
		StopStr:      hints.StopStr,
		StopTokenIDs: hints.StopTokenIDs,
	}
}

func showCmd(st *state) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print a template as YAML",
		Flags: []cli.Flag{templateFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tpl, err := st.template(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.Root().Writer)
			enc.SetIndent(2)
			if err := enc.Encode(newTemplateReport(tpl)); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
