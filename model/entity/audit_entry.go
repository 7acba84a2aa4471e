package entity

import "time"

// Audit outcomes. Partial marks composite creates where the entity exists
// but a secondary step failed.
const (
	AuditOutcomeSuccess = "success"
	AuditOutcomePartial = "partial"
	AuditOutcomeFailed  = "failed"
)

// AuditEntry records one mutating console action (create or delete) against
// the upstream commerce API.
type AuditEntry struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Resource  string `gorm:"size:64;not null;index:idx_audit_resource"`
	Action    string `gorm:"size:16;not null"`
	EntityID  string `gorm:"size:64"`
	Outcome   string `gorm:"size:16;not null"`
	Message   string `gorm:"size:1024"`
	CreatedAt time.Time
}

func (AuditEntry) TableName() string {
	return "console_audit_log"
}
