// sloth-migrate copies the settings record and workout log from SQLite to PostgreSQL.
//
// Connection settings default to the database section of the sloth config
// file; flags override them.
//
// Usage:
//
//	go run ./cmd/sloth-migrate \
//	    -sqlite ~/.sloth/sloth.db \
//	    -pg-host localhost \
//	    -pg-user sloth \
//	    -pg-database sloth
package main

import (
	"flag"
	"log"

	"github.com/lawnchairsociety/sloth/internal/config"
	"github.com/lawnchairsociety/sloth/internal/database"
)

func main() {
	dataDir, err := config.DefaultDataDir()
	if err != nil {
		log.Fatalf("Failed to locate data directory: %v", err)
	}
	cfg, err := config.LoadConfig(config.ResolvePath(dataDir), dataDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	dbCfg := cfg.DatabaseConfig()
	pg := &dbCfg.Postgres

	// Parse command-line flags
	sqlitePath := flag.String("sqlite", dbCfg.SQLitePath, "Path to SQLite database")
	flag.StringVar(&pg.Host, "pg-host", pg.Host, "PostgreSQL host")
	flag.IntVar(&pg.Port, "pg-port", pg.Port, "PostgreSQL port")
	flag.StringVar(&pg.User, "pg-user", pg.User, "PostgreSQL user")
	flag.StringVar(&pg.Password, "pg-password", pg.Password, "PostgreSQL password")
	flag.StringVar(&pg.Database, "pg-database", pg.Database, "PostgreSQL database name")
	flag.StringVar(&pg.SSLMode, "pg-sslmode", pg.SSLMode, "PostgreSQL SSL mode")
	dryRun := flag.Bool("dry-run", false, "Show what would be migrated without making changes")
	flag.Parse()

	log.Println("SQLite to PostgreSQL Migration Tool")
	log.Println("====================================")

	log.Printf("Opening SQLite database: %s", *sqlitePath)
	src, err := database.Open(*sqlitePath)
	if err != nil {
		log.Fatalf("Failed to open SQLite database: %v", err)
	}
	defer src.Close()

	// Opening runs the schema migrations on PostgreSQL
	log.Printf("Opening PostgreSQL database: %s@%s:%d/%s", pg.User, pg.Host, pg.Port, pg.Database)
	dbCfg.Driver = string(database.DialectPostgres)
	dst, err := database.OpenWithConfig(dbCfg)
	if err != nil {
		log.Fatalf("Failed to open PostgreSQL database: %v", err)
	}
	defer dst.Close()

	if *dryRun {
		log.Println("DRY RUN MODE - No changes will be made")
	}

	result, err := database.Copy(src, dst, *dryRun)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("====================================")
	log.Printf("Migration complete! Settings: %t, log entries: %d", result.Settings, result.Entries)
	if *dryRun {
		log.Println("(DRY RUN - No actual changes were made)")
	}
}
