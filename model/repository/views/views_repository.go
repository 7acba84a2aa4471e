package views

import (
	"gorm.io/gorm"

	entity "storeadmin.GO/model/entity"
)

type ViewRepository struct {
	db *gorm.DB
}

func NewViewRepository(db *gorm.DB) *ViewRepository {
	return &ViewRepository{db: db}
}

// Save upserts a preset by (resource, name).
func (r *ViewRepository) Save(resourceName, name, query string) (*entity.SavedView, error) {
	var existing entity.SavedView
	err := r.db.Where("resource = ? AND name = ?", resourceName, name).First(&existing).Error
	if err == nil {
		existing.Query = query
		if err := r.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	v := entity.SavedView{Resource: resourceName, Name: name, Query: query}
	if err := r.db.Create(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// ListByResource returns all presets for a resource, newest first.
func (r *ViewRepository) ListByResource(resourceName string) ([]entity.SavedView, error) {
	var out []entity.SavedView
	err := r.db.Where("resource = ?", resourceName).Order("updated_at DESC").Find(&out).Error
	return out, err
}

// Delete removes a preset by id.
func (r *ViewRepository) Delete(id uint) error {
	return r.db.Delete(&entity.SavedView{}, id).Error
}
