package schedule

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Activity is one template slot: a title plus optional explicit start/end
// times (HH:MM:SS) overriding the weekday's default evening window.
type Activity struct {
	Title string `yaml:"title"`
	Start string `yaml:"start,omitempty"`
	End   string `yaml:"end,omitempty"`
}

// UnmarshalYAML accepts either a plain string title or the full mapping form.
func (a *Activity) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		a.Title = value.Value
		return nil
	}
	type raw Activity
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}
	*a = Activity(r)
	return nil
}

// Week maps weekday abbreviations ("Mon".."Sun") to that day's activity.
// Days without an entry get no template event.
type Week map[string]Activity

// Cycle is the 4-week rotating template plus the anchor that pins absolute
// dates to template weeks.
type Cycle struct {
	// ReferenceMonday is the Monday defining week 1 of the rotation.
	ReferenceMonday string `yaml:"reference_monday"`

	// FullDayMarker is the template title that, on a Sunday, becomes the
	// cycle's designated full-day event under FullDayTitle at high priority.
	FullDayMarker      string `yaml:"full_day_marker"`
	FullDayTitle       string `yaml:"full_day_title"`
	FullDayDescription string `yaml:"full_day_description"`

	// Weeks holds the four template weeks; Weeks[0] is week 1.
	Weeks []Week `yaml:"weeks"`

	refMonday time.Time
}

// DefaultCycle returns the built-in rotation.
func DefaultCycle() *Cycle {
	c := defaults()
	// Normalize cannot fail on the built-in data.
	_ = c.Normalize()
	return c
}

// defaults builds the raw built-in cycle without normalizing, so Normalize
// can borrow from it without recursing.
func defaults() *Cycle {
	return &Cycle{
		ReferenceMonday:    "2025-01-06",
		FullDayMarker:      "Magic Stack Full Day",
		FullDayTitle:       "Magic Stack Project Work",
		FullDayDescription: "Full day Magic Stack project work",
		Weeks: []Week{
			{
				"Mon": {Title: "Drawing / Art"},
				"Tue": {Title: "Drawing / Art"},
				"Wed": {Title: "Open Source Contribution"},
				"Thu": {Title: "Open Source Contribution"},
				"Fri": {Title: "Magic Stack Project Work"},
				"Sat": {Title: "Magic Stack Project Work"},
				"Sun": {Title: "Go Outside / Movie"},
			},
			{
				"Mon": {Title: "Homelab Project"},
				"Tue": {Title: "Homelab Project"},
				"Wed": {Title: "Learning Course"},
				"Thu": {Title: "Learning Course"},
				"Fri": {Title: "Entertainment – Show/Movie"},
				"Sat": {Title: "Go Outside / Movie"},
				"Sun": {Title: "Magic Stack Full Day"},
			},
			{
				"Mon": {Title: "Drawing / Art"},
				"Tue": {Title: "Drawing / Art"},
				"Wed": {Title: "Open Source Contribution"},
				"Thu": {Title: "Open Source Contribution"},
				"Fri": {Title: "Magic Stack Project Work"},
				"Sat": {Title: "Magic Stack Project Work"},
				"Sun": {Title: "Go Outside / Movie"},
			},
			{
				"Mon": {Title: "Homelab Project"},
				"Tue": {Title: "Homelab Project"},
				"Wed": {Title: "Learning Course"},
				"Thu": {Title: "Learning Course"},
				"Fri": {Title: "Entertainment – Show/Movie"},
				"Sat": {Title: "Go Outside / Movie"},
				"Sun": {Title: "Magic Stack Full Day"},
			},
		},
	}
}

// Normalize backfills missing fields from the defaults and parses the
// reference Monday, so partially-filled override files still behave.
func (c *Cycle) Normalize() error {
	def := defaults()
	if c.ReferenceMonday == "" {
		c.ReferenceMonday = def.ReferenceMonday
	}
	if c.FullDayMarker == "" {
		c.FullDayMarker = def.FullDayMarker
	}
	if c.FullDayTitle == "" {
		c.FullDayTitle = def.FullDayTitle
	}
	if c.FullDayDescription == "" {
		c.FullDayDescription = def.FullDayDescription
	}
	if len(c.Weeks) == 0 {
		c.Weeks = def.Weeks
	}
	if len(c.Weeks) != 4 {
		return fmt.Errorf("cycle must have exactly 4 weeks, got %d", len(c.Weeks))
	}

	ref, err := ParseDate(c.ReferenceMonday)
	if err != nil {
		return fmt.Errorf("parse reference_monday: %w", err)
	}
	if ref.Weekday() != time.Monday {
		return fmt.Errorf("reference_monday %s is a %s, not a Monday", c.ReferenceMonday, ref.Weekday())
	}
	c.refMonday = ref

	return nil
}

// LoadCycle reads a cycle override from a YAML file. A missing file yields
// the built-in defaults.
func LoadCycle(path string) (*Cycle, error) {
	if path == "" {
		return DefaultCycle(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultCycle(), nil
		}
		return nil, err
	}

	var c Cycle
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse cycle config: %w", err)
	}
	if err := c.Normalize(); err != nil {
		return nil, err
	}

	return &c, nil
}

// WeekFor returns the template week for a 1-based week number.
func (c *Cycle) WeekFor(weekNumber int) Week {
	return c.Weeks[weekNumber-1]
}
