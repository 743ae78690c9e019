package main

import (
	"fluently/config"
	"fluently/database"
	"fluently/services"
	"fluently/vimeo"
	"log"
)

// One-shot import of the Vimeo account's videos into the local catalog.
//
// Usage: go run scripts/importVimeoVideos.go
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	if config.AppConfig.VimeoAccessToken == "" {
		log.Fatal("VIMEO_ACCESS_TOKEN is required")
	}

	client := vimeo.NewClient(config.AppConfig.VimeoAPIURL, config.AppConfig.VimeoAccessToken, config.AppConfig.VimeoPageSize)
	importer := services.NewVimeoImporter(database.Database.Db, client)

	log.Println("Fetching videos from Vimeo...")

	summary, err := importer.Run()
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("=== Import Complete (run %s) ===", summary.RunID)
	log.Printf("Imported: %d", summary.Imported)
	log.Printf("Updated: %d", summary.Updated)
	log.Printf("Skipped: %d", summary.Skipped)
	log.Printf("Total processed: %d", summary.Imported+summary.Updated+summary.Skipped)
}
