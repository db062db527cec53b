// Package migrate contains migration scripts that are not covered by the
// automatic GORM migrations.
package migrate

import (
	"context"
	"log"
	"strconv"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/movies"
)

// RecomputeDownloadCounters is a migrate script used to reset the movies'
// 'Downloads' count field, based on the result of counting how many records
// exist in the download_logs table.
// NOTE: This script is expected to be run just once on each server.
func RecomputeDownloadCounters(ctx context.Context, db *gorm.DB) {
	migrate, _ := gz.ReadEnvVar("CATALOG_MIGRATE_RESET_DOWNLOADS")
	if value, err := strconv.ParseBool(migrate); err != nil || !value {
		return
	}
	log.Println("[MIGRATION] Running 'Recompute Download Counters' migration script")
	tx := db.Begin()

	if em := (&movies.Service{}).ComputeAllCounters(tx); em != nil {
		tx.Rollback()
		log.Fatal("[MIGRATION] Error while recomputing download counters", em.BaseError)
	}

	if err := tx.Commit().Error; err != nil {
		log.Fatal("[MIGRATION] Error while recomputing download counters", err)
	}
	log.Println("[MIGRATION] Successfully finished 'Recompute Download Counters' migration script")
}
