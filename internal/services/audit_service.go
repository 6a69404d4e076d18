package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"armory/internal/logger"
	"armory/internal/models"
)

// Audit actions.
const (
	AuditActionAssetPurchase = "asset.purchase"
	AuditActionAssetUpdate   = "asset.update"
	AuditActionAssetTransfer = "asset.transfer"
	AuditActionAssetAssign   = "asset.assign"
	AuditActionAssetReturn   = "asset.return"
	AuditActionAssetExpend   = "asset.expend"
	AuditActionBaseCreate    = "base.create"
	AuditActionBaseUpdate    = "base.update"
	AuditActionUserCreate    = "user.create"
	AuditActionLogin         = "auth.login"
	AuditActionLogout        = "auth.logout"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an audit event. Errors are logged and never returned so a
// failed audit write cannot undo the operation it describes.
func (s *auditService) Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]any) {
	log := logger.Named("audit")

	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			log.Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		log.Errorw("failed to create audit log entry",
			"error", err,
			"user_id", userID,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}
