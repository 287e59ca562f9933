package application

import (
	"encoding/json"
	"log"

	"github.com/sunspire/solar-crm/internal/domain/audit"
	"github.com/sunspire/solar-crm/internal/repository"
	"gorm.io/datatypes"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryAuditLogs(params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(params)
}

func (s *AuditService) CleanupOldLogs(days int) error {
	return s.Repos.Audit.DeleteOldAuditLogs(days)
}

// recordAudit writes an audit row, best-effort: an audit failure never fails
// the audited operation.
func recordAudit(repos *repository.Repos, userID uint, action, resourceType, resourceID string, oldData, newData interface{}, message string) {
	entry := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Message:      message,
	}
	if oldData != nil {
		if raw, err := json.Marshal(oldData); err == nil {
			entry.OldData = datatypes.JSON(raw)
		}
	}
	if newData != nil {
		if raw, err := json.Marshal(newData); err == nil {
			entry.NewData = datatypes.JSON(raw)
		}
	}
	if err := repos.Audit.CreateAuditLog(entry); err != nil {
		log.Printf("audit write failed (%s %s/%s): %v", action, resourceType, resourceID, err)
	}
}
