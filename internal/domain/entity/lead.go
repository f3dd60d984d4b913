package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un Lead. "converted" y "closed" son terminales.
const (
	LeadStatusNew        = "new"
	LeadStatusQualified  = "qualified"
	LeadStatusInProgress = "in_progress"
	LeadStatusConverted  = "converted"
	LeadStatusClosed     = "closed"
)

// Prioridades válidas de un Lead.
const (
	LeadPriorityLow    = "low"
	LeadPriorityMedium = "medium"
	LeadPriorityHigh   = "high"
	LeadPriorityUrgent = "urgent"
)

// ValidLeadPriority indica si el string corresponde a una prioridad conocida.
func ValidLeadPriority(p string) bool {
	switch p {
	case LeadPriorityLow, LeadPriorityMedium, LeadPriorityHigh, LeadPriorityUrgent:
		return true
	}
	return false
}

// Lead representa una oportunidad de venta. Puede referenciar la auditoría que
// la originó (SourceAuditID).
type Lead struct {
	ID             string
	TenantID       string
	LeadNumber     string
	CompanyName    string
	ContactPerson  string
	Email          string
	Phone          string
	IndustryID     *string
	Status         string // new, qualified, in_progress, converted, closed
	Priority       string // low, medium, high, urgent
	EstimatedValue decimal.NullDecimal
	AssignedTo     *string
	SourceAuditID  *string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
