package api

import (
	"log"

	entity "storeadmin.GO/model/entity"
	auditRepo "storeadmin.GO/model/repository/audit"
)

// RecordAudit appends an entry to the local audit log. A missing store or
// a write failure never blocks the operator action; it is logged and
// swallowed.
func RecordAudit(deps Deps, resourceName, action, entityID, outcome, message string) {
	if deps.DB == nil {
		return
	}
	repo := auditRepo.NewAuditRepository(deps.DB)
	err := repo.Record(&entity.AuditEntry{
		Resource: resourceName,
		Action:   action,
		EntityID: entityID,
		Outcome:  outcome,
		Message:  message,
	})
	if err != nil {
		log.Printf("audit: record failed: %v", err)
	}
}
