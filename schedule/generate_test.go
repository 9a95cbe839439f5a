package schedule

import (
	"reflect"
	"testing"
	"time"

	"rotacal/database/schemas"
)

func generate(t *testing.T, start, end string) []schemas.Event {
	t.Helper()
	events, err := Generate(DefaultCycle(), date(t, start), date(t, end))
	if err != nil {
		t.Fatalf("Generate(%s, %s): %v", start, end, err)
	}
	return events
}

func TestGenerateReferenceMonday(t *testing.T) {
	// 2025-01-06 is the reference Monday itself: week 1, Drawing / Art.
	events := generate(t, "2025-01-06", "2025-01-06")

	want := []schemas.Event{
		{Date: "2025-01-06", Title: "Exercise", Description: "Morning exercise", StartTime: "08:30:00", EndTime: "09:00:00", Priority: "medium"},
		{Date: "2025-01-06", Title: "Reading", Description: "Morning reading", StartTime: "09:00:00", EndTime: "10:00:00", Priority: "medium"},
		{Date: "2025-01-06", Title: "Drawing / Art", Description: "Drawing / Art", StartTime: "20:30:00", EndTime: "23:30:00", Priority: "medium"},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("got %+v\nwant %+v", events, want)
	}
}

func TestGenerateWeekOneSunday(t *testing.T) {
	// 2025-01-12 is still template week 1: all-day Go Outside / Movie plus
	// the extended Sunday habit windows. All-day sorts first.
	events := generate(t, "2025-01-12", "2025-01-12")

	want := []schemas.Event{
		{Date: "2025-01-12", Title: "Go Outside / Movie", Description: "Go Outside / Movie", Priority: "medium", AllDay: true},
		{Date: "2025-01-12", Title: "Exercise", Description: "Sunday exercise", StartTime: "08:30:00", EndTime: "09:30:00", Priority: "medium"},
		{Date: "2025-01-12", Title: "Reading", Description: "Sunday long reading", StartTime: "09:30:00", EndTime: "12:30:00", Priority: "medium"},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("got %+v\nwant %+v", events, want)
	}
}

func TestGenerateFullDaySunday(t *testing.T) {
	// 2025-01-19 falls in template week 2: the marker title maps to the
	// canonical full-day event at high priority.
	events := generate(t, "2025-01-19", "2025-01-19")

	var full *schemas.Event
	for i := range events {
		if events[i].AllDay {
			full = &events[i]
		}
	}
	if full == nil {
		t.Fatal("no all-day event generated")
	}
	if full.Title != "Magic Stack Project Work" {
		t.Errorf("title = %q, want Magic Stack Project Work", full.Title)
	}
	if full.Description != "Full day Magic Stack project work" {
		t.Errorf("description = %q", full.Description)
	}
	if full.Priority != schemas.PriorityHigh {
		t.Errorf("priority = %q, want high", full.Priority)
	}
	if full.StartTime != "" || full.EndTime != "" {
		t.Errorf("full-day event has times %q-%q", full.StartTime, full.EndTime)
	}
}

func TestGenerateSaturdayWindow(t *testing.T) {
	// Saturdays start the evening activity at 17:30 instead of 20:30.
	events := generate(t, "2025-01-11", "2025-01-11")

	var evening *schemas.Event
	for i := range events {
		if events[i].Title != TitleExercise && events[i].Title != TitleReading {
			evening = &events[i]
		}
	}
	if evening == nil {
		t.Fatal("no evening event generated")
	}
	if evening.StartTime != "17:30:00" || evening.EndTime != "23:30:00" {
		t.Errorf("Saturday window = %s-%s, want 17:30:00-23:30:00", evening.StartTime, evening.EndTime)
	}
	if evening.AllDay {
		t.Error("Saturday evening event must not be all-day")
	}
}

func TestGenerateWeekendInvariants(t *testing.T) {
	events := generate(t, "2025-01-06", "2025-06-30")

	for _, e := range events {
		d := date(t, e.Date)
		habit := e.Title == TitleExercise || e.Title == TitleReading

		switch d.Weekday() {
		case time.Sunday:
			if !habit && !e.AllDay {
				t.Errorf("%s %q: Sunday non-habit event is not all-day", e.Date, e.Title)
			}
			if !habit && (e.StartTime != "" || e.EndTime != "") {
				t.Errorf("%s %q: Sunday all-day event carries times", e.Date, e.Title)
			}
			if habit && e.AllDay {
				t.Errorf("%s %q: habit converted to all-day", e.Date, e.Title)
			}
		case time.Saturday:
			if e.AllDay {
				t.Errorf("%s %q: Saturday event is all-day", e.Date, e.Title)
			}
			if e.StartTime == "" || e.EndTime == "" {
				t.Errorf("%s %q: Saturday event missing times", e.Date, e.Title)
			}
		}

		if habit && (e.StartTime == "" || e.EndTime == "") {
			t.Errorf("%s %q: habit missing times", e.Date, e.Title)
		}
	}
}

func TestGenerateMorningHabits(t *testing.T) {
	events := generate(t, "2025-01-06", "2025-02-02")

	byDate := map[string][]schemas.Event{}
	for _, e := range events {
		if e.Title == TitleExercise || e.Title == TitleReading {
			byDate[e.Date] = append(byDate[e.Date], e)
		}
	}

	for d := date(t, "2025-01-06"); !d.After(date(t, "2025-02-02")); d = d.AddDate(0, 0, 1) {
		habits := byDate[FormatDate(d)]
		if len(habits) != 2 {
			t.Fatalf("%s: %d habit events, want 2", FormatDate(d), len(habits))
		}

		wantExercise, wantReadingEnd := "09:00:00", "10:00:00"
		if d.Weekday() == time.Sunday {
			wantExercise, wantReadingEnd = "09:30:00", "12:30:00"
		}
		for _, e := range habits {
			switch e.Title {
			case TitleExercise:
				if e.StartTime != "08:30:00" || e.EndTime != wantExercise {
					t.Errorf("%s Exercise window %s-%s", e.Date, e.StartTime, e.EndTime)
				}
			case TitleReading:
				if e.EndTime != wantReadingEnd {
					t.Errorf("%s Reading ends %s, want %s", e.Date, e.EndTime, wantReadingEnd)
				}
			}
		}
	}
}

func TestGenerateRoundTrip(t *testing.T) {
	// Filtering a range run down to one date must reproduce the single-day
	// run for that date under the same alignment.
	full := generate(t, "2025-01-06", "2025-03-31")

	for _, day := range []string{"2025-01-06", "2025-01-25", "2025-02-09", "2025-03-31"} {
		var filtered []schemas.Event
		for _, e := range full {
			if e.Date == day {
				filtered = append(filtered, e)
			}
		}
		single := generate(t, day, day)
		if !reflect.DeepEqual(filtered, single) {
			t.Errorf("%s: range-filtered %+v\nsingle-day %+v", day, filtered, single)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := generate(t, "2025-04-01", "2025-05-15")
	b := generate(t, "2025-04-01", "2025-05-15")
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different sequences")
	}
}

func TestGenerateInvertedRange(t *testing.T) {
	if _, err := Generate(DefaultCycle(), date(t, "2025-02-01"), date(t, "2025-01-01")); err == nil {
		t.Fatal("expected error for end before start")
	}
}

func TestGenerateActivityTimeOverride(t *testing.T) {
	c := DefaultCycle()
	c.Weeks[0]["Fri"] = Activity{Title: "Movie Night", Start: "19:00:00", End: "21:00:00"}

	events, err := Generate(c, date(t, "2025-01-10"), date(t, "2025-01-10"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	var found bool
	for _, e := range events {
		if e.Title == "Movie Night" {
			found = true
			if e.StartTime != "19:00:00" || e.EndTime != "21:00:00" {
				t.Errorf("override window = %s-%s, want 19:00:00-21:00:00", e.StartTime, e.EndTime)
			}
		}
	}
	if !found {
		t.Fatal("override activity not generated")
	}
}

func TestSortForDisplay(t *testing.T) {
	events := []schemas.Event{
		{Date: "2025-01-12", Title: "b", StartTime: "09:30:00"},
		{Date: "2025-01-12", Title: "a", AllDay: true},
		{Date: "2025-01-11", Title: "z", StartTime: "17:30:00"},
		{Date: "2025-01-12", Title: "c", StartTime: "08:30:00"},
	}
	schemas.SortForDisplay(events)

	got := []string{events[0].Title, events[1].Title, events[2].Title, events[3].Title}
	want := []string{"z", "a", "c", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}
