package server

import (
	"context"
	"time"

	"rotacal/database/schemas"
)

func (s *Server) initDatabase(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	targetSchema := schemas.CreateEventSchema()
	if err := schemas.CreateSchema(ctx, s.DB, s.Dialect, targetSchema); err != nil {
		return err
	}

	return nil
}
