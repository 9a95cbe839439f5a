// Command seed generates the rotating schedule for a date range and bulk
// inserts it. Safe to re-run over an overlapping range: rows that already
// exist are skipped.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"rotacal/database"
	"rotacal/database/schemas"
	"rotacal/schedule"

	"github.com/joho/godotenv"
)

func main() {
	var (
		startFlag = flag.String("start", "", "first date to seed (YYYY-MM-DD, default today)")
		endFlag   = flag.String("end", "2026-12-31", "last date to seed (YYYY-MM-DD, inclusive)")
		cycleFlag = flag.String("cycle", "", "cycle template YAML (default built-in rotation)")
	)
	flag.Parse()

	_ = godotenv.Load()

	start := schedule.Midnight(time.Now().UTC())
	if *startFlag != "" {
		var err error
		if start, err = schedule.ParseDate(*startFlag); err != nil {
			log.Fatalf("-start: %v", err)
		}
	}
	end, err := schedule.ParseDate(*endFlag)
	if err != nil {
		log.Fatalf("-end: %v", err)
	}

	cycle, err := schedule.LoadCycle(*cycleFlag)
	if err != nil {
		log.Fatalf("cycle config: %v", err)
	}

	port, _ := strconv.Atoi(getenv("DB_PORT", "5432"))
	conn, dialect, err := database.OpenDriver(getenv("DB_DRIVER", "postgres"), database.Config{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     port,
		User:     getenv("DB_USER", "postgres"),
		Password: getenv("DB_PASSWORD", ""),
		Name:     getenv("DB_NAME", "postgres"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}, getenv("DB_PATH", "rotacal.sqlite"))
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Make sure the table exists even against a blank database.
	if err := schemas.CreateSchema(ctx, conn, dialect, schemas.CreateEventSchema()); err != nil {
		log.Fatalf("schema init: %v", err)
	}

	log.Printf("generating events from %s to %s, starting in cycle week %d",
		schedule.FormatDate(start), schedule.FormatDate(end), cycle.WeekNumber(start))

	events, err := schedule.Generate(cycle, start, end)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	log.Printf("generated %d events, inserting...", len(events))

	inserted, err := schemas.BulkInsertEvents(ctx, conn, dialect, events)
	if err != nil {
		log.Fatalf("bulk insert: %v", err)
	}

	log.Printf("inserted %d events (%d already present)", inserted, int64(len(events))-inserted)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
