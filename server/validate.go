package server

import (
	"fmt"
	"regexp"
	"time"
)

var clockRe = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)

// validDate reports whether s is a well-formed YYYY-MM-DD calendar date.
// The format check alone would accept month 13, so it also has to parse.
func validDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// normalizeClock validates an HH:MM[:SS] time-of-day string and returns it in
// fixed-width HH:MM:SS form, the shape the lexical ordering contract depends
// on.
func normalizeClock(s string) (string, error) {
	if !clockRe.MatchString(s) {
		return "", fmt.Errorf("time %q must match HH:MM or HH:MM:SS", s)
	}
	if len(s) == 5 {
		s += ":00"
	}
	if _, err := time.Parse("15:04:05", s); err != nil {
		return "", fmt.Errorf("time %q is not a valid clock time", s)
	}
	return s, nil
}
