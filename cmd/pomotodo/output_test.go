package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kamyuentse/go-pomotodo/pkg/pomotodo"
)

func testPomo() *pomotodo.Pomo {
	started := time.Date(2023, 4, 1, 9, 0, 0, 0, time.UTC)
	return &pomotodo.Pomo{
		UUID:        uuid.MustParse("be1ab2d7-10a1-4dba-9db2-3b8e2a4d88c4"),
		Description: "Write documentation",
		StartedAt:   started,
		EndedAt:     started.Add(25 * time.Minute),
		Length:      1500,
		Manual:      true,
		CreatedAt:   started.Add(26 * time.Minute),
		UpdatedAt:   started.Add(26 * time.Minute),
	}
}

func testTodo() *pomotodo.Todo {
	return &pomotodo.Todo{
		UUID:        uuid.MustParse("0a49b9c2-6bb8-48a1-b0f6-9e9c1f9b7a11"),
		Description: "Plan the release",
		Pin:         true,
		CreatedAt:   time.Date(2023, 4, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2023, 4, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestPrintPomoTable(t *testing.T) {
	var buf bytes.Buffer
	printPomo(&buf, testPomo(), false)

	out := buf.String()
	for _, want := range []string{"Write documentation", "be1ab2d7", "25m0s", "Manual:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintPomoJSON(t *testing.T) {
	var buf bytes.Buffer
	printPomo(&buf, testPomo(), true)

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["description"] != "Write documentation" {
		t.Errorf("unexpected description: %v", decoded["description"])
	}
	if decoded["length"] != float64(1500) {
		t.Errorf("unexpected length: %v", decoded["length"])
	}
}

func TestPrintPomoListEmpty(t *testing.T) {
	var buf bytes.Buffer
	printPomoList(&buf, nil, false)

	if !strings.Contains(buf.String(), "No pomos found") {
		t.Errorf("expected empty message, got:\n%s", buf.String())
	}
}

func TestPrintPomoListTable(t *testing.T) {
	var buf bytes.Buffer
	printPomoList(&buf, []*pomotodo.Pomo{testPomo()}, false)

	out := buf.String()
	if !strings.Contains(out, "DESCRIPTION") {
		t.Errorf("expected header row, got:\n%s", out)
	}
	if !strings.Contains(out, "manual") {
		t.Errorf("expected manual flag, got:\n%s", out)
	}
}

func TestPrintTodoTable(t *testing.T) {
	todo := testTodo()
	todo.Notice = func() *string { s := "ship it"; return &s }()
	todo.RepeatType = pomotodo.RepeatEachWeek
	todo.EstimatedPomoCount = 4

	var buf bytes.Buffer
	printTodo(&buf, todo, false)

	out := buf.String()
	for _, want := range []string{"Plan the release", "ship it", "each_week", "Estimated Pomos:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTodoListStatus(t *testing.T) {
	pending := testTodo()
	pending.Pin = false
	pinned := testTodo()
	done := testTodo()
	done.Completed = true

	var buf bytes.Buffer
	printTodoList(&buf, []*pomotodo.Todo{pending, pinned, done}, false)

	out := buf.String()
	for _, want := range []string{"pending", "pinned", "done"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing status %q:\n%s", want, out)
		}
	}
}

func TestPrintTodoListEmpty(t *testing.T) {
	var buf bytes.Buffer
	printTodoList(&buf, nil, false)

	if !strings.Contains(buf.String(), "No todos found") {
		t.Errorf("expected empty message, got:\n%s", buf.String())
	}
}

func TestPrintSubTodoList(t *testing.T) {
	subs := []*pomotodo.SubTodo{
		{UUID: uuid.New(), Description: "First step"},
		{UUID: uuid.New(), Description: "Second step", Completed: true},
	}

	var buf bytes.Buffer
	printSubTodoList(&buf, subs, false)

	out := buf.String()
	if !strings.Contains(out, "First step") || !strings.Contains(out, "done") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestPrintAccountTable(t *testing.T) {
	account := &pomotodo.Account{
		Username:     "kam",
		Email:        "kam@example.com",
		Timezone:     "Asia/Shanghai",
		RegisterTime: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	printAccount(&buf, account, false)

	out := buf.String()
	if !strings.Contains(out, "kam@example.com") {
		t.Errorf("expected email in output:\n%s", out)
	}
	if strings.Contains(out, "Pro Expires") {
		t.Errorf("did not expect pro expiry for zero time:\n%s", out)
	}
}

func TestPrintErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"), true)

	var decoded map[string]map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["error"]["message"] != "boom" {
		t.Errorf("unexpected error payload: %v", decoded)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is too long", 10, "this is..."},
		{"完成季度报告并发送给团队审阅", 10, "完成季度报告并..."},
		{"多字节", 2, "多字"},
		{"ab", 1, "a"},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tt.input, tt.maxLen, result, tt.expected)
		}
	}
}

func TestLengthString(t *testing.T) {
	if got := lengthString(1500); got != "25m0s" {
		t.Errorf("lengthString(1500) = %s, expected 25m0s", got)
	}
	if got := lengthString(0); got != "0s" {
		t.Errorf("lengthString(0) = %s, expected 0s", got)
	}
}
