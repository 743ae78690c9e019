package utils

import (
	"fluently/config"
	"fluently/services"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[IMPORT-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartImportScheduler schedules periodic Vimeo catalog syncs. Returns nil
// when no cron spec is configured.
func StartImportScheduler(importer *services.VimeoImporter) *cron.Cron {
	spec := config.AppConfig.ImportCronSpec
	if spec == "" {
		log.Println("IMPORT_CRON_SPEC not set, scheduled catalog sync disabled.")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() { runScheduledImport(importer) }); err != nil {
		logScheduler("Invalid cron spec " + spec + ": " + err.Error())
		return nil
	}

	c.Start()
	logScheduler("Catalog sync scheduled with spec " + spec)
	return c
}

func runScheduledImport(importer *services.VimeoImporter) {
	logScheduler("Starting Vimeo catalog sync...")

	summary, err := importer.Run()
	if err != nil {
		logScheduler("Catalog sync failed: " + err.Error())
		return
	}

	logScheduler(fmt.Sprintf("Catalog sync %s finished: %d imported, %d updated, %d skipped",
		summary.RunID, summary.Imported, summary.Updated, summary.Skipped))

	if config.AppConfig.AdminEmail != "" {
		if err := SendImportSummaryEmail(config.AppConfig.AdminEmail, summary); err != nil {
			logScheduler("Failed to send summary email: " + err.Error())
		}
	}
}
