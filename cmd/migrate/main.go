package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"bizlist/config"
	"bizlist/pkg/database"
)

const usage = `
Business Listings - Database CLI Tool

Usage:
  migrate [command]

Commands:
  up          Create or update the schema
  status      Show database connection and table status
  seed-dev    Seed with development/test data

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed-dev
`

func main() {
	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.LoadConfig()
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}

	switch command := flag.Arg(0); command {
	case "up":
		log.Println("🚀 Running migrations...")
		if err := database.Migrate(db); err != nil {
			log.Fatalf("❌ Migration failed: %v", err)
		}
		log.Println("✅ Migrations completed successfully!")
	case "status":
		log.Println("🔍 Checking database status...")
		if err := database.HealthCheck(db); err != nil {
			log.Fatalf("❌ Database connection failed: %v", err)
		}
		log.Println("✅ Database connection: OK")
		for _, table := range []string{"business_listings", "conversations"} {
			if db.Migrator().HasTable(table) {
				var count int64
				db.Table(table).Count(&count)
				log.Printf("✅ Table %-20s exists (%d rows)", table, count)
			} else {
				log.Printf("❌ Table %-20s does not exist", table)
			}
		}
	case "seed-dev":
		log.Println("🌱 Seeding database (development mode)...")
		if err := database.Migrate(db); err != nil {
			log.Fatalf("❌ Migration failed: %v", err)
		}
		result, err := database.SeedDevelopment(db)
		if err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
		log.Println("📊 Seed Summary:")
		log.Printf("   - Listings: %d", len(result.Listings))
		log.Printf("   - Conversations: %d", len(result.Conversations))
		log.Println("✅ Development seeding completed!")
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}
