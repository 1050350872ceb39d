package audit

import (
	auditRepo "pulsecrm/database/repository/audit"
	"pulsecrm/models"

	"github.com/google/uuid"
)

// Recorder writes audit records. Implementations must be safe to call on
// the request path; callers treat failures as best-effort.
type Recorder interface {
	Record(record models.AuditRecord) error
}

// MongoRecorder implements Recorder on the audit repository.
type MongoRecorder struct {
	Repo auditRepo.AuditRepository
}

func (r *MongoRecorder) Record(record models.AuditRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	return r.Repo.Create(&record)
}
