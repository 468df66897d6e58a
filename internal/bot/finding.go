package bot

import (
	"github.com/gabapcia/chainsentry/internal/pkg/validator"

	"github.com/google/uuid"
)

// Severity ranks how urgent a finding is.
type Severity string

const (
	SeverityInfo     Severity = "Info"
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// FindingType classifies what a finding describes.
type FindingType string

const (
	FindingTypeInfo       FindingType = "Info"
	FindingTypeSuspicious FindingType = "Suspicious"
	FindingTypeExploit    FindingType = "Exploit"
	FindingTypeDegraded   FindingType = "Degraded"
)

// Label attaches an opinion about an entity (address, transaction, ...) to a finding.
type Label struct {
	Entity     string  `json:"entity" validate:"required"`
	EntityType string  `json:"entityType" validate:"required"`
	Label      string  `json:"label" validate:"required"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
	Remove     bool    `json:"remove"`
}

// Finding is the structured alert a bot emits.
type Finding struct {
	ID          string            `json:"id" validate:"required"`
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description" validate:"required"`
	AlertID     string            `json:"alertId" validate:"required"`
	Severity    Severity          `json:"severity" validate:"oneof=Info Low Medium High Critical"`
	Type        FindingType       `json:"type" validate:"oneof=Info Suspicious Exploit Degraded"`
	Protocol    string            `json:"protocol"`
	Metadata    map[string]string `json:"metadata"`
	Labels      []Label           `json:"labels,omitempty" validate:"dive"`
}

// NewFinding returns a Finding with a fresh UUIDv7 identifier and an empty metadata map.
func NewFinding(name, description, alertID string, severity Severity, findingType FindingType) Finding {
	return Finding{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Name:        name,
		Description: description,
		AlertID:     alertID,
		Severity:    severity,
		Type:        findingType,
		Metadata:    make(map[string]string),
	}
}

// Validate checks that the finding is complete enough to be delivered.
func (f Finding) Validate() error {
	return validator.Validate(f)
}
