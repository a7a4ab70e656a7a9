package conversation

import (
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func TestCloneDoesNotAlias(t *testing.T) {
	t.Parallel()

	orig := fewShotTemplate()
	orig.StopTokenIDs = []int{1, 2}

	c := orig.Clone()
	c.AppendTurn("Human", Text("new"))
	c.Messages[0].Message = Text("changed")
	c.Messages[1].Role = "Other"
	c.Roles[0] = "X"
	c.StopTokenIDs[0] = 99
	c.System = "other"

	if len(orig.Messages) != 2 {
		t.Fatalf("original turn count changed: %d", len(orig.Messages))
	}
	if orig.Messages[0].Message.Text != "example question" || orig.Messages[1].Role != "Assistant" {
		t.Fatalf("original turns mutated: %+v", orig.Messages)
	}
	if orig.Roles[0] != "Human" || orig.System != "SYS" || orig.StopTokenIDs[0] != 1 {
		t.Fatalf("original fields mutated: %+v", orig)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Template)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Template) {}},
		{name: "no style is valid", mutate: func(tpl *Template) { tpl.Style = StyleNone }},
		{name: "missing name", mutate: func(tpl *Template) { tpl.Name = "" }, wantErr: true},
		{name: "two separators without sep2", mutate: func(tpl *Template) { tpl.Style = Dolly; tpl.Sep2 = "" }, wantErr: true},
		{name: "unknown style", mutate: func(tpl *Template) { tpl.Style = SeparatorStyle(42) }, wantErr: true},
		{name: "negative offset", mutate: func(tpl *Template) { tpl.Offset = -1 }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tpl := newTestTemplate(AddColonSingle)
			tc.mutate(tpl)
			err := tpl.Validate()
			if tc.wantErr {
				if !errors.Is(err, ErrConfiguration) {
					t.Fatalf("expected ErrConfiguration, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDecodeYAMLTurns(t *testing.T) {
	t.Parallel()

	doc := `
name: "t"
system: "S"
roles: ["USER", "ASSISTANT"]
messages:
  - role: "USER"
    message: ""
  - role: "ASSISTANT"
    message: null
  - role: "USER"
offset: 0
sep_style: add_colon_two
sep: " "
sep2: "</s>"
stop_token_ids: [2]
`
	var tpl Template
	if err := yaml.Unmarshal([]byte(doc), &tpl); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tpl.Style != AddColonTwo || tpl.Sep2 != "</s>" {
		t.Fatalf("unexpected style fields: %v %q", tpl.Style, tpl.Sep2)
	}
	if len(tpl.Messages) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(tpl.Messages))
	}
	if m := tpl.Messages[0].Message; !m.Valid || m.Text != "" {
		t.Fatalf("empty string should be present: %+v", m)
	}
	if tpl.Messages[1].Message.Valid || tpl.Messages[2].Message.Valid {
		t.Fatalf("null and missing messages should be absent: %+v", tpl.Messages)
	}
}

func TestMessageJSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal([]Turn{{Role: "a", Message: Text("x")}, {Role: "b"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != `[{"role":"a","message":"x"},{"role":"b","message":null}]` {
		t.Fatalf("unexpected json: %s", got)
	}

	var turns []Turn
	if err := json.Unmarshal([]byte(`[{"role":"a","message":""},{"role":"b","message":null}]`), &turns); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !turns[0].Message.Valid || turns[1].Message.Valid {
		t.Fatalf("unexpected validity: %+v", turns)
	}
}

func TestParseSeparatorStyle(t *testing.T) {
	t.Parallel()

	for style := AddColonSingle; style <= Phoenix; style++ {
		got, err := ParseSeparatorStyle(style.String())
		if err != nil {
			t.Fatalf("parse %q: %v", style, err)
		}
		if got != style {
			t.Fatalf("parse %q: got %v", style, got)
		}
	}
	if got, err := ParseSeparatorStyle("none"); err != nil || got != StyleNone {
		t.Fatalf("none: got %v, %v", got, err)
	}
	if _, err := ParseSeparatorStyle("jinja"); err == nil || !strings.Contains(err.Error(), "jinja") {
		t.Fatalf("expected unknown style error, got %v", err)
	}
}

func TestSnapshotAndStopHintsAreCopies(t *testing.T) {
	t.Parallel()

	tpl := fewShotTemplate()
	tpl.StopTokenIDs = []int{50278, 0}

	snap := tpl.Snapshot()
	snap.Messages[0].Role = "changed"
	hints := tpl.StopHints()
	hints.StopTokenIDs[0] = 1

	if tpl.Messages[0].Role != "Human" || tpl.StopTokenIDs[0] != 50278 {
		t.Fatalf("template mutated through views: %+v", tpl)
	}
	if snap.Offset != 2 || snap.Name != "few_shot" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}
