package conversation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func fewShotTemplate() *Template {
	tpl := &Template{
		Name:   "few_shot",
		System: "SYS",
		Roles:  [2]string{"Human", "Assistant"},
		Offset: 2,
		Style:  AddColonSingle,
		Sep:    "\n### ",
	}
	tpl.AppendTurn("Human", Text("example question"))
	tpl.AppendTurn("Assistant", Text("example answer"))
	return tpl
}

func TestPairedView(t *testing.T) {
	t.Parallel()

	tpl := fewShotTemplate()
	tpl.AppendTurn("Human", Text("q1"))
	tpl.AppendTurn("Assistant", Text("a1"))
	tpl.AppendTurn("Human", Text("q2"))
	tpl.AppendTurn("Assistant", Absent())

	want := []Pair{
		{User: Text("q1"), Assistant: Text("a1")},
		{User: Text("q2"), Assistant: Absent()},
	}
	if diff := cmp.Diff(want, tpl.PairedView()); diff != "" {
		t.Fatalf("paired view mismatch (-want +got):\n%s", diff)
	}
}

func TestPairedViewOpenRow(t *testing.T) {
	t.Parallel()

	tpl := fewShotTemplate()
	tpl.AppendTurn("Human", Text("q1"))

	want := []Pair{{User: Text("q1")}}
	if diff := cmp.Diff(want, tpl.PairedView()); diff != "" {
		t.Fatalf("paired view mismatch (-want +got):\n%s", diff)
	}
}

func TestStructuredMessagesOmitsAbsentReply(t *testing.T) {
	t.Parallel()

	tpl := fewShotTemplate()
	tpl.AppendTurn("Human", Text("q1"))
	tpl.AppendTurn("Assistant", Text("a1"))
	tpl.AppendTurn("Human", Text("q2"))
	tpl.AppendTurn("Assistant", Absent())

	want := []ChatMessage{
		{Role: RoleSystem, Content: "SYS"},
		{Role: RoleUser, Content: "q1"},
		{Role: RoleAssistant, Content: "a1"},
		{Role: RoleUser, Content: "q2"},
	}
	if diff := cmp.Diff(want, tpl.StructuredMessages()); diff != "" {
		t.Fatalf("structured messages mismatch (-want +got):\n%s", diff)
	}
}

func TestStructuredMessagesOffsetPastEnd(t *testing.T) {
	t.Parallel()

	tpl := fewShotTemplate()
	tpl.Offset = 10

	want := []ChatMessage{{Role: RoleSystem, Content: "SYS"}}
	if diff := cmp.Diff(want, tpl.StructuredMessages()); diff != "" {
		t.Fatalf("structured messages mismatch (-want +got):\n%s", diff)
	}
	if rows := tpl.PairedView(); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
}

func TestViewsWorkWithoutStyle(t *testing.T) {
	t.Parallel()

	tpl := &Template{Name: "chatgpt", System: "You are a helpful assistant.", Roles: [2]string{"user", "assistant"}}
	tpl.AppendTurn("user", Text("hello"))
	tpl.AppendTurn("assistant", Absent())

	got := tpl.StructuredMessages()
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(got), got)
	}
	if got[1].Role != RoleUser || got[1].Content != "hello" {
		t.Fatalf("unexpected user record: %+v", got[1])
	}
}
