package playlists

import (
	"time"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
)

// Playlist groups related movies, eg. the episodes of a season.
//
// swagger:model dbPlaylist
type Playlist struct {
	// Override default GORM Model fields
	ID        uint       `gorm:"primary_key" json:"id"`
	CreatedAt time.Time  `gorm:"type:timestamp(3) NULL" json:"created_at"`
	UpdatedAt time.Time  `json:"-"`
	DeletedAt *time.Time `gorm:"type:timestamp(2) NULL" sql:"index" json:"-"`

	// The name of the playlist
	Name *string `gorm:"not null" json:"name,omitempty"`

	// The category this playlist belongs to, if any
	CategoryID *uint `json:"category_id,omitempty"`
}

// GetID returns the ID
func (p *Playlist) GetID() uint {
	return p.ID
}

// Playlists is a slice of Playlist
type Playlists []Playlist

// ByID queries a playlist by its numeric ID.
func ByID(tx *gorm.DB, id uint) (*Playlist, *gz.ErrMsg) {
	var playlist Playlist
	if err := tx.Where("id = ?", id).First(&playlist).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorIDNotFound, err)
	}
	return &playlist, nil
}

// ByCategory returns the playlists assigned to a category.
func ByCategory(tx *gorm.DB, categoryID uint) (Playlists, *gz.ErrMsg) {
	var list Playlists
	if err := tx.Where("category_id = ?", categoryID).Find(&list).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return list, nil
}

// All returns every playlist in the catalog.
func All(tx *gorm.DB) (Playlists, *gz.ErrMsg) {
	var list Playlists
	if err := tx.Find(&list).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return list, nil
}
