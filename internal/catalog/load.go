package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/IgorSondors/Vicuna/internal/conversation"
	"github.com/IgorSondors/Vicuna/internal/logger"
)

//go:embed builtin.yaml
var builtinYAML []byte

// document is the on-disk layout shared by the built-in seed and user files.
type document struct {
	Templates []conversation.Template `yaml:"templates"`
}

// Builtin returns a catalog populated with the bundled templates.
func Builtin(log logger.Logger) (*Catalog, error) {
	c := New(log)
	if _, err := c.Load(bytes.NewReader(builtinYAML), false); err != nil {
		return nil, fmt.Errorf("builtin templates: %w", err)
	}
	return c, nil
}

// Decode reads a templates document. Unknown keys are rejected so that a
// misspelled separator field does not silently render with defaults.
func Decode(r io.Reader) ([]conversation.Template, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode templates: %w", err)
	}
	return doc.Templates, nil
}

// Load registers every template of a document and returns how many were
// added. It stops at the first invalid or duplicate entry.
func (c *Catalog) Load(r io.Reader, override bool) (int, error) {
	templates, err := Decode(r)
	if err != nil {
		return 0, err
	}
	for i, tpl := range templates {
		if err := c.Register(tpl, override); err != nil {
			return i, err
		}
	}
	return len(templates), nil
}

// LoadFile registers the templates of a YAML (or JSON) file.
func (c *Catalog) LoadFile(path string, override bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := c.Load(f, override)
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}
	c.log.Info("loaded templates", "path", path, "count", n)
	return n, nil
}
