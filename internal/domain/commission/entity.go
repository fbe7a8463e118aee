package commission

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type StructureType string

const (
	StructureFlat       StructureType = "flat"
	StructurePercentage StructureType = "percentage"
	StructureTiered     StructureType = "tiered"
)

// Tier is one band of a tiered structure. Min and Max are inclusive bounds
// over service value in paisa.
type Tier struct {
	MinPaisa    int64           `json:"min_paisa"`
	MaxPaisa    int64           `json:"max_paisa"`
	RatePercent decimal.Decimal `json:"rate_percent"`
}

// Contains reports whether the service value falls inside the tier band.
func (t Tier) Contains(serviceValuePaisa int64) bool {
	return serviceValuePaisa >= t.MinPaisa && serviceValuePaisa <= t.MaxPaisa
}

// Tiers is stored as a JSONB column.
type Tiers []Tier

// Value implements driver.Valuer for database storage
func (t Tiers) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for database retrieval
func (t *Tiers) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Tiers: invalid type")
	}
	return json.Unmarshal(bytes, t)
}

// CommissionStructure - named commission rule, business-scoped.
// ServiceCategory nil means the structure applies to every category.
type CommissionStructure struct {
	ID              string
	BusinessID      string
	Name            string
	Type            StructureType
	ServiceCategory *string

	FlatAmountPaisa int64
	BasePercentage  decimal.Decimal
	Tiers           Tiers

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	AssignedStaffCount int64
}

// Assignment links a staff member to a structure.
type Assignment struct {
	ID          string
	StructureID string
	StaffID     string
	BusinessID  string
	CreatedAt   time.Time
}

// Earning is one evaluated commission for one completed service sale.
// PayrollEntryID is stamped when a payroll cycle settles the earning.
type Earning struct {
	ID              string
	BusinessID      string
	StaffID         string
	StructureID     string
	ServiceCategory *string

	ServiceValuePaisa int64
	CommissionPaisa   int64
	EarnedAt          time.Time

	PayrollEntryID *string
	CreatedAt      time.Time
}
