package movies

import (
	"time"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
)

// Movie represents a single downloadable title in the catalog.
//
// A movie can optionally belong to a playlist (eg. a season pack) and to a
// category. The Downloads field is a denormalized counter kept in sync with
// the download_logs table.
//
// swagger:model dbMovie
type Movie struct {
	// Override default GORM Model fields
	ID        uint       `gorm:"primary_key" json:"id"`
	CreatedAt time.Time  `gorm:"type:timestamp(3) NULL" json:"created_at"`
	UpdatedAt time.Time  `json:"-"`
	DeletedAt *time.Time `gorm:"type:timestamp(2) NULL" sql:"index" json:"-"`

	// Unique identifier
	UUID *string `json:"-"`

	// The title of the movie
	Title *string `gorm:"not null" json:"title,omitempty"`

	// External URL the download endpoint redirects to
	DownloadLink *string `gorm:"type:text" json:"download_link,omitempty"`

	// The playlist this movie belongs to, if any
	PlaylistID *uint `json:"playlist_id,omitempty"`

	// The category this movie belongs to, if any
	CategoryID *uint `json:"category_id,omitempty"`

	// Number of downloads
	Downloads int `json:"downloads"`
}

// GetID returns the ID
func (m *Movie) GetID() uint {
	return m.ID
}

// GetUUID returns the movie's UUID
func (m *Movie) GetUUID() *string {
	return m.UUID
}

// Movies is a slice of Movie
type Movies []Movie

// ByID queries a movie by its numeric ID.
func ByID(tx *gorm.DB, id uint) (*Movie, *gz.ErrMsg) {
	var movie Movie
	if err := tx.Where("id = ?", id).First(&movie).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorIDNotFound, err)
	}
	return &movie, nil
}

// ByPlaylist returns the movies of a playlist, in default DB order.
func ByPlaylist(tx *gorm.DB, playlistID uint) (Movies, *gz.ErrMsg) {
	var list Movies
	if err := tx.Where("playlist_id = ?", playlistID).Find(&list).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return list, nil
}

// ByCategory returns the movies directly assigned to a category.
func ByCategory(tx *gorm.DB, categoryID uint) (Movies, *gz.ErrMsg) {
	var list Movies
	if err := tx.Where("category_id = ?", categoryID).Find(&list).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return list, nil
}

// Standalone returns the movies that do not belong to any playlist.
func Standalone(tx *gorm.DB) (Movies, *gz.ErrMsg) {
	var list Movies
	if err := tx.Where("playlist_id IS NULL").Find(&list).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return list, nil
}

// Count returns the number of movies in the catalog.
func Count(tx *gorm.DB) (int, *gz.ErrMsg) {
	var count int
	if err := tx.Model(&Movie{}).Count(&count).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return count, nil
}

// TopByDownloads returns the movies with the highest download counters.
func TopByDownloads(tx *gorm.DB, limit int) (Movies, *gz.ErrMsg) {
	var list Movies
	if err := tx.Model(&Movie{}).Order("downloads desc").Limit(limit).Find(&list).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return list, nil
}
