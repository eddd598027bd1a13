package pomotodo

import (
	"testing"
	"time"
)

func TestRepeatTypeValid(t *testing.T) {
	valid := []RepeatType{
		RepeatNone, RepeatEachDay, RepeatEachWeek,
		RepeatEachTwoWeek, RepeatEachMonth, RepeatEachYear,
	}
	for _, rt := range valid {
		if !rt.Valid() {
			t.Errorf("expected %q to be valid", rt)
		}
	}

	invalid := []RepeatType{"", "daily", "each_decade"}
	for _, rt := range invalid {
		if rt.Valid() {
			t.Errorf("expected %q to be invalid", rt)
		}
	}
}

func TestPomoFilterValues(t *testing.T) {
	after := time.Date(2017, 5, 1, 12, 30, 0, 0, time.FixedZone("CST", 8*3600))

	filter := &PomoFilter{
		Abandoned:    Bool(false),
		StartedAfter: Time(after),
	}

	params := filter.values()
	if got := params.Get("abandoned"); got != "false" {
		t.Errorf("expected abandoned=false, got %s", got)
	}
	if _, ok := params["manual"]; ok {
		t.Error("expected manual to be omitted")
	}
	// Timestamps are normalized to UTC.
	if got := params.Get("started_later_than"); got != "2017-05-01T04:30:00Z" {
		t.Errorf("expected started_later_than=2017-05-01T04:30:00Z, got %s", got)
	}
}

func TestFilterValuesNil(t *testing.T) {
	var pf *PomoFilter
	if got := len(pf.values()); got != 0 {
		t.Errorf("expected empty values for nil pomo filter, got %d", got)
	}

	var tf *TodoFilter
	if got := len(tf.values()); got != 0 {
		t.Errorf("expected empty values for nil todo filter, got %d", got)
	}
}

func TestTodoFilterValues(t *testing.T) {
	before := time.Date(2017, 6, 1, 0, 0, 0, 0, time.UTC)

	filter := &TodoFilter{
		Completed:       Bool(true),
		CompletedAfter:  Time(before.AddDate(0, -1, 0)),
		CompletedBefore: Time(before),
	}

	params := filter.values()
	if got := params.Get("completed"); got != "true" {
		t.Errorf("expected completed=true, got %s", got)
	}
	if got := params.Get("completed_later_than"); got != "2017-05-01T00:00:00Z" {
		t.Errorf("expected completed_later_than=2017-05-01T00:00:00Z, got %s", got)
	}
	if got := params.Get("completed_earlier_than"); got != "2017-06-01T00:00:00Z" {
		t.Errorf("expected completed_earlier_than=2017-06-01T00:00:00Z, got %s", got)
	}
}
