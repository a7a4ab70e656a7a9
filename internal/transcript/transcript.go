// Package transcript reads conversation turns from YAML or JSON files so a
// prompt can be rendered for an existing exchange.
//
//	system: "optional preamble override"
//	turns:
//	  - role: USER
//	    message: Hello!
//	  - role: ASSISTANT
//	    message: null   # absent: generation continues here
package transcript

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/IgorSondors/Vicuna/internal/conversation"
)

type Transcript struct {
	System *string             `yaml:"system,omitempty" json:"system,omitempty"`
	Turns  []conversation.Turn `yaml:"turns" json:"turns"`
}

type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatForPath picks the decoder from the file extension; anything that is
// not .json is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

func Parse(data []byte, format Format) (*Transcript, error) {
	var tr Transcript
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&tr); err != nil {
			return nil, fmt.Errorf("transcript: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&tr); err != nil {
			return nil, fmt.Errorf("transcript: %w", err)
		}
	}
	return &tr, nil
}

func ReadFile(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tr, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tr, nil
}

// Apply appends the turns to tpl. A turn without a role takes the template
// role that continues the alternation.
func (tr *Transcript) Apply(tpl *conversation.Template) {
	if tr.System != nil {
		tpl.System = *tr.System
	}
	for _, turn := range tr.Turns {
		role := turn.Role
		if role == "" {
			role = tpl.Roles[len(tpl.Messages)%2]
		}
		tpl.AppendTurn(role, turn.Message)
	}
}
