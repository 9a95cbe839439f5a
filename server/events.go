package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"rotacal/database/schemas"
)

func (s *Server) getEventsByDate(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	if !validDate(date) {
		writeError(w, http.StatusBadRequest, "Invalid date", "Invalid date format. Expected YYYY-MM-DD")
		return
	}

	events, err := schemas.EventsForDate(r.Context(), s.DB, s.Dialect, date)
	if err != nil {
		writeDatabaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (s *Server) createEvent(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var in schemas.Event
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

	if err := validateEvent(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event", err.Error())
		return
	}

	created, err := schemas.CreateEvent(r.Context(), s.DB, s.Dialect, in)
	if err != nil {
		if schemas.IsUniqueViolation(err) {
			writeError(w, http.StatusConflict, "Duplicate event",
				"an event with the same date, title and start time already exists")
			return
		}
		writeDatabaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid id", "id must be a positive integer")
		return
	}

	found, err := schemas.DeleteEvent(r.Context(), s.DB, s.Dialect, id)
	if err != nil {
		writeDatabaseError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Not found", fmt.Sprintf("no event with id %d", id))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Event deleted",
		"id":      id,
	})
}

// validateEvent rejects malformed input before any store access and
// normalizes times and priority in place. An all-day event carries no times;
// a timed event carries both, ordered.
func validateEvent(in *schemas.Event) error {
	if in.Date == "" {
		return fmt.Errorf("date is required")
	}
	if !validDate(in.Date) {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", in.Date)
	}
	if in.Title == "" {
		return fmt.Errorf("title is required")
	}

	if in.Priority == "" {
		in.Priority = schemas.PriorityMedium
	}
	if !schemas.ValidPriority(in.Priority) {
		return fmt.Errorf("invalid priority %q, expected low, medium or high", in.Priority)
	}

	if in.AllDay {
		if in.StartTime != "" || in.EndTime != "" {
			return fmt.Errorf("all-day events cannot carry start_time or end_time")
		}
		return nil
	}

	if in.StartTime == "" || in.EndTime == "" {
		return fmt.Errorf("timed events require both start_time and end_time")
	}

	var err error
	if in.StartTime, err = normalizeClock(in.StartTime); err != nil {
		return err
	}
	if in.EndTime, err = normalizeClock(in.EndTime); err != nil {
		return err
	}
	if in.EndTime < in.StartTime {
		return fmt.Errorf("end_time %s is before start_time %s", in.EndTime, in.StartTime)
	}

	return nil
}
