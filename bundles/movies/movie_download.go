package movies

import (
	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
)

// DownloadLog records a single download of a movie.
//
// Rows are append only. The movie title is denormalized so the audit trail
// survives movie removal.
type DownloadLog struct {
	gorm.Model

	// The ID of the movie that was downloaded
	MovieID *uint
	// Title of the movie at download time
	MovieTitle string
	// Client IP address (first X-Forwarded-For entry, or the peer address)
	IPAddress string
	// User-Agent sent in the http request (optional)
	UserAgent string
	// Email of the authenticated user that made the download (optional)
	UserEmail *string
	// Username of the authenticated user that made the download (optional)
	Username *string
}

// DownloadLogs is a slice of DownloadLog
type DownloadLogs []DownloadLog

// CountDownloads returns the total number of recorded downloads.
func CountDownloads(tx *gorm.DB) (int, *gz.ErrMsg) {
	var count int
	if err := tx.Model(&DownloadLog{}).Count(&count).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return count, nil
}

// RecentDownloads returns the latest download log entries.
func RecentDownloads(tx *gorm.DB, limit int) (DownloadLogs, *gz.ErrMsg) {
	var logs DownloadLogs
	if err := tx.Model(&DownloadLog{}).Order("created_at desc").Limit(limit).Find(&logs).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return logs, nil
}
