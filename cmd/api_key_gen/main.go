package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"rodacerta/frotagest/internal/config"
)

// Mints an API key for service-to-service callers (label passed as the
// first argument). The key itself is the row id.
func main() {
	label := "integration"
	if len(os.Args) > 1 {
		label = os.Args[1]
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	key := uuid.NewString()
	if _, err := db.Exec(
		`INSERT INTO api_keys (id, label, status) VALUES ($1, $2, true)`,
		key, label,
	); err != nil {
		log.Fatalf("insert api key: %v", err)
	}

	fmt.Println("New API Key:", key)
}
