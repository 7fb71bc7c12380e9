package services

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/attendancehelpbscs-hi/fp-attendance-sub001/app/models"
)

// RecordAudit writes an audit entry in the background. Auditing never blocks
// or fails the request that triggered it; a write error is only logged.
func RecordAudit(store Store, staffID, action, details string) {
	entry := &models.AuditLog{
		ID:        uuid.New().String(),
		StaffID:   staffID,
		Action:    action,
		Details:   details,
		CreatedAt: time.Now(),
	}
	go func() {
		if err := store.InsertAuditLog(entry); err != nil {
			log.Printf("audit: %s %s: %v", action, staffID, err)
		}
	}()
}
