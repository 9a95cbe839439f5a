package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"rotacal/database"
	"rotacal/database/schemas"
	"rotacal/schedule"
	"rotacal/server"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

func main() {

	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
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

	s, err := server.New(context.Background(), conn, dialect)
	if err != nil {
		log.Fatalf("server init: %v", err)
	}

	cycle, err := schedule.LoadCycle(getenv("CYCLE_CONFIG", ""))
	if err != nil {
		log.Fatalf("cycle config: %v", err)
	}

	if spec := getenv("SEED_CRON", ""); spec != "" {
		if err := startHorizonJob(spec, conn, dialect, cycle); err != nil {
			log.Fatalf("seed cron: %v", err)
		}
	}

	listen := getenv("LISTEN", ":8080")
	log.Printf("listening on %s", listen)
	log.Fatal(http.ListenAndServe(listen, s.Mux))
}

// startHorizonJob keeps the rotating schedule seeded SEED_HORIZON_DAYS ahead.
// Bulk seeding skips rows that already exist, so the job is idempotent and
// only fills in the newly uncovered tail of the horizon.
func startHorizonJob(spec string, conn *sql.DB, dialect schemas.Dialect, cycle *schedule.Cycle) error {
	horizon, _ := strconv.Atoi(getenv("SEED_HORIZON_DAYS", "90"))
	if horizon <= 0 {
		horizon = 90
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		start := time.Now().UTC()
		end := start.AddDate(0, 0, horizon)

		events, err := schedule.Generate(cycle, start, end)
		if err != nil {
			log.Printf("horizon generate: %v", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		inserted, err := schemas.BulkInsertEvents(ctx, conn, dialect, events)
		if err != nil {
			log.Printf("horizon seed: %v", err)
			return
		}
		log.Printf("horizon seed: %d/%d events inserted through %s",
			inserted, len(events), schedule.FormatDate(end))
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Printf("horizon seeding on cron %q, %d days ahead", spec, horizon)
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
