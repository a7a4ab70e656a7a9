package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/IgorSondors/Vicuna/internal/conversation"
)

func vicuna() *conversation.Template {
	return &conversation.Template{
		Name:  "vicuna_v1.1",
		Roles: [2]string{"USER", "ASSISTANT"},
		Style: conversation.AddColonTwo,
		Sep:   " ",
		Sep2:  "</s>",
	}
}

func TestParseYAMLAndApply(t *testing.T) {
	t.Parallel()

	doc := `
turns:
  - role: USER
    message: "Hello!"
  - message: "Hi!"
  - role: USER
    message: "How are you?"
  - role: ASSISTANT
`
	tr, err := Parse([]byte(doc), FormatYAML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tpl := vicuna()
	tr.Apply(tpl)

	got, err := tpl.Render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := " USER: Hello! ASSISTANT: Hi!</s>USER: How are you? ASSISTANT:"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseJSONSystemOverride(t *testing.T) {
	t.Parallel()

	doc := `{"system":"Be brief.","turns":[{"role":"USER","message":"hi"},{"role":"ASSISTANT","message":null}]}`
	tr, err := Parse([]byte(doc), FormatJSON)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tpl := vicuna()
	tr.Apply(tpl)

	want := []conversation.Turn{
		{Role: "USER", Message: conversation.Text("hi")},
		{Role: "ASSISTANT", Message: conversation.Absent()},
	}
	if diff := cmp.Diff(want, tpl.Messages); diff != "" {
		t.Fatalf("turns mismatch (-want +got):\n%s", diff)
	}
	if tpl.System != "Be brief." {
		t.Fatalf("system not overridden: %q", tpl.System)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	if _, err := Parse([]byte(`{"turnz":[]}`), FormatJSON); err == nil {
		t.Fatal("expected json error")
	}
	if _, err := Parse([]byte("turnz: []\n"), FormatYAML); err == nil {
		t.Fatal("expected yaml error")
	}
}

func TestReadFileByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "chat.json")
	if err := os.WriteFile(jsonPath, []byte(`{"turns":[{"role":"USER","message":"x"}]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tr, err := ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(tr.Turns) != 1 || tr.Turns[0].Message.Text != "x" {
		t.Fatalf("unexpected turns: %+v", tr.Turns)
	}

	if FormatForPath("chat.YML") != FormatYAML || FormatForPath("chat.JSON") != FormatJSON {
		t.Fatal("unexpected format detection")
	}
	if _, err := ReadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
