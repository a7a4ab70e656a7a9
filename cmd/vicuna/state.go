package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/IgorSondors/Vicuna/internal/catalog"
	"github.com/IgorSondors/Vicuna/internal/conversation"
	"github.com/IgorSondors/Vicuna/internal/logger"
)

// loadDotEnv exports the variables of a .env file that are not already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// state is shared by every command once the root Before hook has run.
type state struct {
	settings settings
	log      logger.Logger
	cat      *catalog.Catalog
}

func (st *state) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	st.settings = applyConfig(cmd, cfg)

	errw := cmd.Root().ErrWriter
	log, err := logger.Open(errw, st.settings.LogFormat, logger.ParseLevel(st.settings.LogLevel), isTerminal(errw))
	if err != nil {
		return ctx, err
	}
	st.log = log
	return logger.WithContext(ctx, log), nil
}

// catalog builds the built-in catalog and layers the configured template
// files over it. It is built once per process.
func (st *state) catalog() (*catalog.Catalog, error) {
	if st.cat != nil {
		return st.cat, nil
	}
	log := st.log
	if log == nil {
		log = logger.Discard()
	}
	cat, err := catalog.Builtin(log)
	if err != nil {
		return nil, err
	}
	for _, path := range st.settings.TemplateFiles {
		if _, err := cat.LoadFile(path, true); err != nil {
			return nil, err
		}
	}
	st.cat = cat
	return cat, nil
}

// template resolves the template named by --template, falling back to the
// config file default.
func (st *state) template(cmd *cli.Command) (*conversation.Template, error) {
	name := cmd.String("template")
	if !cmd.IsSet("template") && st.settings.Template != "" {
		name = st.settings.Template
	}
	if name == "" {
		return nil, errors.New("no template selected: pass --template or set one in the config file")
	}
	cat, err := st.catalog()
	if err != nil {
		return nil, err
	}
	return cat.Get(name)
}
