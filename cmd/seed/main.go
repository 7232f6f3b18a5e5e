package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-employee-directory/config"
)

// seed inserts the companies named on the command line (default "acme").
// Companies are not managed over HTTP, so this is how a fresh database gets some.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	names := companyNames(os.Args[1:])
	for _, name := range names {
		res, err := db.Exec(`
			INSERT INTO companies (name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING
		`, name)
		if err != nil {
			log.Fatalf("failed to seed company %q: %v", name, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			fmt.Printf("company exists: %s\n", name)
			continue
		}
		fmt.Printf("seeded company: %s\n", name)
	}
}

// companyNames lowercases and de-duplicates names to match how employees reference them.
func companyNames(args []string) []string {
	if len(args) == 0 {
		args = []string{"acme"}
	}
	seen := make(map[string]struct{}, len(args))
	out := make([]string, 0, len(args))
	for _, a := range args {
		n := strings.ToLower(strings.TrimSpace(a))
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
