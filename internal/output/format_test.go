package output

import (
	"bytes"
	"testing"

	"tarefas/internal/tasks"
	"tarefas/internal/testutil"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		num  int
		text string
		want string
	}{
		{1, "Buy milk", "   1  Buy milk\n"},
		{42, "Walk dog", "  42  Walk dog\n"},
		{1234, "x", "1234  x\n"},
		{3, "line one\nline two", "   3  line one line two\n"},
		{4, "   ", "   4  (untitled)\n"},
		{5, "  padded  ", "   5    padded  \n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		FormatTask(&buf, tt.num, tasks.Task{ID: "1", Text: tt.text})
		if buf.String() != tt.want {
			t.Errorf("FormatTask(%d, %q): expected %q, got %q", tt.num, tt.text, tt.want, buf.String())
		}
	}
}

func TestFormatList(t *testing.T) {
	var buf bytes.Buffer
	FormatList(&buf, []tasks.Task{
		{ID: "1700000000000", Text: "Buy oat milk"},
		{ID: "1700000000001", Text: "Walk dog"},
	})
	testutil.GoldenString(t, "list", buf.String())
}

func TestFormatList_Empty(t *testing.T) {
	var buf bytes.Buffer
	FormatList(&buf, nil)
	testutil.GoldenString(t, "list_empty", buf.String())
}

func TestFormatHeader_Singular(t *testing.T) {
	var buf bytes.Buffer
	FormatHeader(&buf, 1)
	want := Separator + "\nMy Tasks (1 task)\n" + Separator + "\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
