package schedule

import (
	"fmt"
	"time"

	"rotacal/database/schemas"
)

// The two fixed morning habits. They are always timed, never all-day, on any
// day of the week; the weekend normalization pass exempts them by title.
const (
	TitleExercise = "Exercise"
	TitleReading  = "Reading"
)

// Default evening windows.
const (
	weekdayEveningStart = "20:30:00"
	saturdayStart       = "17:30:00"
	eveningEnd          = "23:30:00"
)

// Generate walks every calendar day in [start, end] and synthesizes the full
// event sequence: the two morning habits daily, plus the template activity
// for the day's cycle week. Output is deterministic and already in canonical
// display order. Pure computation; it never consults previously stored rows.
func Generate(c *Cycle, start, end time.Time) ([]schemas.Event, error) {
	if c == nil {
		return nil, fmt.Errorf("cycle is nil")
	}
	start, end = Midnight(start), Midnight(end)
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s before start date %s", FormatDate(end), FormatDate(start))
	}

	events := make([]schemas.Event, 0, 3*(int(end.Sub(start).Hours()/24)+1))

	rot := c.startRotation(start)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		rot = rot.advance(d)
		events = append(events, dayEvents(c, d, rot.week)...)
	}

	normalizeWeekends(events)
	schemas.SortForDisplay(events)
	return events, nil
}

// dayEvents synthesizes one day's events given its cycle week number.
func dayEvents(c *Cycle, d time.Time, week int) []schemas.Event {
	events := morningEvents(d)

	act, ok := c.WeekFor(week)[dayAbbrev(d.Weekday())]
	if !ok {
		return events
	}

	if d.Weekday() == time.Sunday {
		e := schemas.Event{
			Date:        FormatDate(d),
			Title:       act.Title,
			Description: act.Title,
			Priority:    schemas.PriorityMedium,
			AllDay:      true,
		}
		if act.Title == c.FullDayMarker {
			e.Title = c.FullDayTitle
			e.Description = c.FullDayDescription
			e.Priority = schemas.PriorityHigh
		}
		return append(events, e)
	}

	return append(events, eveningEvent(d, act))
}

// morningEvents emits the two daily habits. Sunday gets a longer exercise
// slot and an extended reading block.
func morningEvents(d time.Time) []schemas.Event {
	date := FormatDate(d)

	if d.Weekday() == time.Sunday {
		return []schemas.Event{
			timedEvent(date, TitleExercise, "Sunday exercise", "08:30:00", "09:30:00"),
			timedEvent(date, TitleReading, "Sunday long reading", "09:30:00", "12:30:00"),
		}
	}
	return []schemas.Event{
		timedEvent(date, TitleExercise, "Morning exercise", "08:30:00", "09:00:00"),
		timedEvent(date, TitleReading, "Morning reading", "09:00:00", "10:00:00"),
	}
}

// eveningEvent emits a Mon-Sat template activity in its default window
// (Saturday starts earlier) unless the activity carries explicit times.
func eveningEvent(d time.Time, act Activity) schemas.Event {
	start, end := act.Start, act.End
	if start == "" || end == "" {
		if d.Weekday() == time.Saturday {
			start, end = saturdayStart, eveningEnd
		} else {
			start, end = weekdayEveningStart, eveningEnd
		}
	}
	return timedEvent(FormatDate(d), act.Title, act.Title, start, end)
}

func timedEvent(date, title, description, start, end string) schemas.Event {
	return schemas.Event{
		Date:        date,
		Title:       title,
		Description: description,
		StartTime:   start,
		EndTime:     end,
		Priority:    schemas.PriorityMedium,
		AllDay:      false,
	}
}

// normalizeWeekends is the safety pass over the full generated sequence.
// Sunday events become all-day with cleared times, Saturday events are forced
// timed with the default window backfilled, in both cases excepting the two
// morning habits. This holds the weekend invariants even if the per-day
// logic above drifts.
func normalizeWeekends(events []schemas.Event) {
	for i := range events {
		e := &events[i]
		if e.Title == TitleExercise || e.Title == TitleReading {
			continue
		}

		d, err := ParseDate(e.Date)
		if err != nil {
			continue
		}

		switch d.Weekday() {
		case time.Saturday:
			e.AllDay = false
			if e.StartTime == "" || e.EndTime == "" {
				e.StartTime = saturdayStart
				e.EndTime = eveningEnd
			}
		case time.Sunday:
			e.AllDay = true
			e.StartTime = ""
			e.EndTime = ""
		}
	}
}
