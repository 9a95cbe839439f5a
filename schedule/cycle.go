package schedule

import "time"

// WeekNumber maps a date to its week of the 4-week cycle, in [1,4].
//
// The mapping is anchored to the cycle's reference Monday, so regenerating
// from any later (or earlier) start date continues the same rotation instead
// of restarting at week 1. Both Mondays are UTC midnights, so the elapsed
// duration is an exact multiple of 7 days and the division never truncates.
func (c *Cycle) WeekNumber(d time.Time) int {
	days := int(MondayOf(d).Sub(c.refMonday).Hours() / 24)
	weeks := days / 7
	return ((weeks % 4) + 4) % 4 + 1
}

// rotation is the running (week number, week Monday) pair carried through a
// generation walk as an explicit accumulator.
type rotation struct {
	week   int
	monday time.Time
}

// startRotation derives the initial rotation for a walk beginning at d.
func (c *Cycle) startRotation(d time.Time) rotation {
	return rotation{week: c.WeekNumber(d), monday: MondayOf(d)}
}

// advance moves the rotation to the week containing d. Within the same week
// it is the identity; on crossing into a new week the number increments
// mechanically through 1..4, which matches WeekNumber because both tick once
// per elapsed week.
func (r rotation) advance(d time.Time) rotation {
	if m := MondayOf(d); !m.Equal(r.monday) {
		return rotation{week: r.week%4 + 1, monday: m}
	}
	return r
}
