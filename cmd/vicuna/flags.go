package main

import "github.com/urfave/cli/v3"

const (
	envConfig        = "VICUNA_CONFIG"
	envTemplate      = "VICUNA_TEMPLATE"
	envTemplateFiles = "VICUNA_TEMPLATE_FILES"
	envLogLevel      = "VICUNA_LOG_LEVEL"
	envLogFormat     = "VICUNA_LOG_FORMAT"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path to config.yaml (default: user config dir)",
			Sources: cli.EnvVars(envConfig),
		},
		&cli.StringSliceFlag{
			Name:    "template-file",
			Aliases: []string{"f"},
			Usage:   "extra YAML template file, registered over the built-ins (repeatable)",
			Sources: cli.EnvVars(envTemplateFiles),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level (debug, info, warn, error)",
			Value:   "info",
			Sources: cli.EnvVars(envLogLevel),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "log format (auto, pretty, text, json)",
			Value:   "auto",
			Sources: cli.EnvVars(envLogFormat),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging (shorthand for --log-level=debug)",
		},
	}
}

func templateFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "template",
		Aliases: []string{"t"},
		Usage:   "conversation template name",
		Sources: cli.EnvVars(envTemplate),
	}
}

// conversationFlags select a template and the turns to place in it.
func conversationFlags() []cli.Flag {
	return []cli.Flag{
		templateFlag(),
		&cli.StringFlag{
			Name:    "prompt",
			Aliases: []string{"p"},
			Usage:   "user message; an open assistant turn is appended after it",
		},
		&cli.StringFlag{
			Name:    "system",
			Aliases: []string{"sys"},
			Usage:   "replace the template's system preamble",
		},
		&cli.StringFlag{
			Name:  "transcript",
			Usage: "YAML or JSON file with turns to append",
		},
	}
}
