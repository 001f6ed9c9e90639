package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	// Read environment to determine table prefix
	prefix := os.Getenv("TABLE_PREFIX")
	if prefix == "" {
		env := os.Getenv("ENVIRONMENT")
		if env == "" {
			env = "dev"
		}
		prefix = env + "_"
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }() // Error ignored: script exiting

	// Drop all tables with environment-specific prefix
	dropSQL := fmt.Sprintf(`
		DROP TABLE IF EXISTS %sproject_products CASCADE;
		DROP TABLE IF EXISTS %sproduct_group_members CASCADE;
		DROP TABLE IF EXISTS %sproduct_groups CASCADE;
		DROP TABLE IF EXISTS %sflyer_projects CASCADE;
		DROP TABLE IF EXISTS %sflyer_configs CASCADE;
		DROP TABLE IF EXISTS %sproducts CASCADE;
	`, prefix, prefix, prefix, prefix, prefix, prefix)

	if _, err := db.Exec(dropSQL); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}

	fmt.Printf("All tables dropped successfully (prefix: %s)\n", prefix)
}
