package schemas

import "sort"

// SortForDisplay sorts events into the canonical display order shared by the
// generator, the query path, and the timeline renderer: date ascending, then
// all-day events before timed ones, then start time ascending. The start-time
// comparison is lexical, which is correct only because times are fixed-width
// zero-padded HH:MM:SS. The sort is stable, so equal events keep insertion
// order.
func SortForDisplay(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.AllDay != b.AllDay {
			return a.AllDay
		}
		return a.StartTime < b.StartTime
	})
}
