package category

import (
	"github.com/jinzhu/gorm"
)

// Category is a label used to group movies and playlists together, such as
// a genre or a collection. A category consists of a name and a slug.
//
// swagger:model
type Category struct {
	gorm.Model

	// Name is the name of the category
	Name *string `gorm:"not null;unique" json:"name"`

	// Slug is the human-friendly URL path to the category
	Slug *string `gorm:"not null;unique" json:"slug"`
}

// ByName returns a category by the given name.
func ByName(tx *gorm.DB, name string) (*Category, error) {
	var cat Category
	q := tx.Model(&Category{}).Where("name = ?", name)

	if err := q.First(&cat).Error; err != nil {
		return nil, err
	}

	return &cat, nil
}

// BySlug returns a category by the given slug.
func BySlug(tx *gorm.DB, slug string) (*Category, error) {
	var cat Category

	q := tx.Model(&Category{}).Where("slug = ?", slug)

	if err := q.First(&cat).Error; err != nil {
		return nil, err
	}

	return &cat, nil
}

// Categories is an array of Category
//
// swagger:model
type Categories []Category
