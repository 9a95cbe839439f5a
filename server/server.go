package server

import (
	"context"
	"database/sql"
	"net/http"

	"rotacal/database/schemas"
)

type Server struct {
	DB      *sql.DB
	Dialect schemas.Dialect
	Mux     *http.ServeMux
}

func New(ctx context.Context, db *sql.DB, dialect schemas.Dialect) (*Server, error) {
	s := &Server{
		DB:      db,
		Dialect: dialect,
		Mux:     http.NewServeMux(),
	}

	if err := s.initDatabase(ctx); err != nil {
		return nil, err
	}

	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.Mux.HandleFunc("GET /api/events/{date}", s.getEventsByDate)
	s.Mux.HandleFunc("POST /api/events", s.createEvent)
	s.Mux.HandleFunc("DELETE /api/events/{id}", s.deleteEvent)

	s.Mux.HandleFunc("/health", s.health)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.DB.PingContext(r.Context()); err != nil {
		http.Error(w, "db not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
