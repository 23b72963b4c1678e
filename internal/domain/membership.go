package domain

import (
	"strings"
	"time"
)

// DefaultMembershipType is used when a membership is created without a type.
const DefaultMembershipType = "standard"

// Membership grants a person access to the gym for a period.
type Membership struct {
	ID        int64      `json:"id"`
	PersonID  int64      `json:"person_id"`
	Type      string     `json:"type"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewMembership creates a validated Membership for personID. A zero start
// date defaults to today (UTC).
func NewMembership(personID int64, membershipType string, start time.Time, end *time.Time) (*Membership, error) {
	now := time.Now().UTC()
	if start.IsZero() {
		start = now.Truncate(24 * time.Hour)
	}
	membershipType = strings.TrimSpace(membershipType)
	if membershipType == "" {
		membershipType = DefaultMembershipType
	}

	m := &Membership{
		PersonID:  personID,
		Type:      membershipType,
		StartDate: start,
		EndDate:   end,
		CreatedAt: now,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks if the Membership has valid data.
func (m *Membership) Validate() error {
	if m.PersonID <= 0 {
		return NewValidationError("person_id", "must be positive", ErrInvalidID)
	}
	if m.EndDate != nil && m.EndDate.Before(m.StartDate) {
		return NewValidationError("end_date", "cannot be before start_date", nil)
	}
	return nil
}
