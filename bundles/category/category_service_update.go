package category

import (
	"context"
	"fmt"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/gosimple/slug"
	"github.com/jinzhu/gorm"
	dtos "github.com/movielane/catalog-server/bundles/category/dtos"
)

// Update updates a category in DB using the data from
// the given UpdateCategory dto.
func (cs *Service) Update(ctx context.Context, tx *gorm.DB,
	categorySlug string, cat dtos.UpdateCategory) (*Category, *gz.ErrMsg) {

	// Sanity check: Make sure that the category exists.
	savedCategory, err := BySlug(tx, categorySlug)
	if err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNonExistentResource, err)
	}

	updatedCategory := updateCategoryFields(*savedCategory, cat)

	if err := tx.Save(&updatedCategory).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Category [%s] %s has been updated.", *updatedCategory.Slug, *updatedCategory.Name))

	return &updatedCategory, nil
}

// updateCategoryFields instantiates a Category entity from the given
// UpdateCategory dto.
func updateCategoryFields(categoryToUpdate Category, cat dtos.UpdateCategory) Category {
	nameChanged := false
	if cat.Name != nil && cat.Name != categoryToUpdate.Name {
		categoryToUpdate.Name = cat.Name
		nameChanged = true
	}

	if cat.Slug == nil && nameChanged {
		newSlug := slug.Make(*categoryToUpdate.Name)
		categoryToUpdate.Slug = &newSlug
	}

	if cat.Slug != nil && cat.Slug != categoryToUpdate.Slug && slug.IsSlug(*cat.Slug) {
		categoryToUpdate.Slug = cat.Slug
	}

	return categoryToUpdate
}
