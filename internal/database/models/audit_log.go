package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditOperation identifies the kind of mutation an audit entry records
type AuditOperation string

const (
	AuditOperationCreate AuditOperation = "CREATE"
	AuditOperationUpdate AuditOperation = "UPDATE"
	AuditOperationDelete AuditOperation = "DELETE"
)

// IsValid reports whether the operation is one of the known kinds
func (op AuditOperation) IsValid() bool {
	switch op {
	case AuditOperationCreate, AuditOperationUpdate, AuditOperationDelete:
		return true
	}
	return false
}

// AuditLog is an immutable record of a flag mutation. Entries are append-only:
// nothing in the codebase updates or deletes them. FeatureFlagID is a plain
// uuid column without a foreign key so entries survive flag deletion.
type AuditLog struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt     time.Time         `json:"created_at" gorm:"index"`
	FeatureFlagID *uuid.UUID        `json:"feature_flag_id,omitempty" gorm:"type:uuid;index"`
	FlagName      string            `json:"flag_name" gorm:"size:100;not null"`
	Team          string            `json:"team" gorm:"size:100;index"`
	Operation     AuditOperation    `json:"operation" gorm:"size:16;not null;index"`
	OldValues     datatypes.JSONMap `json:"old_values,omitempty" gorm:"type:jsonb"`
	NewValues     datatypes.JSONMap `json:"new_values,omitempty" gorm:"type:jsonb"`
	ChangedBy     *string           `json:"changed_by,omitempty" gorm:"size:100"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// BeforeCreate sets the UUID if not already set
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
