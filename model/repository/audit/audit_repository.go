package audit

import (
	"gorm.io/gorm"

	entity "storeadmin.GO/model/entity"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record appends an audit entry. Audit failures are reported to the caller
// but must never block the operator action itself; callers log and move on.
func (r *AuditRepository) Record(e *entity.AuditEntry) error {
	return r.db.Create(e).Error
}

// Recent returns the newest entries, most recent first.
func (r *AuditRepository) Recent(limit int) ([]entity.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.AuditEntry
	err := r.db.Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}

// RecentByResource returns the newest entries for one resource.
func (r *AuditRepository) RecentByResource(resourceName string, limit int) ([]entity.AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entity.AuditEntry
	err := r.db.Where("resource = ?", resourceName).Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}
