// Command cleanup-codes deletes used and expired password reset codes.
//
// Usage:
//
//	cleanup-codes
//
// Requires DATABASE_DSN environment variable to be set. Intended to be
// invoked by an external cron job.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukedan/consensus-backend/internal/adapter/postgres/resetcode"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	deleted, err := resetcode.New(pool).DeleteStale(ctx, time.Now())
	if err != nil {
		log.Fatalf("cleanup reset codes: %v", err)
	}

	fmt.Printf("Deleted %d used/expired reset codes.\n", deleted)
}
