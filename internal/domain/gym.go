package domain

import (
	"strings"
	"time"
)

// Gym is a physical location of a given type (e.g. "fitness", "crossfit").
type Gym struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Address   string    `json:"address,omitempty"`
	Number    int       `json:"number"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGym creates a validated Gym.
func NewGym(gymType, address string, number int) (*Gym, error) {
	now := time.Now().UTC()
	g := &Gym{
		Type:      strings.TrimSpace(gymType),
		Address:   strings.TrimSpace(address),
		Number:    number,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks if the Gym has valid data.
func (g *Gym) Validate() error {
	if strings.TrimSpace(g.Type) == "" {
		return NewValidationError("type", "cannot be empty", nil)
	}
	if g.Number < 0 {
		return NewValidationError("number", "cannot be negative", nil)
	}
	return nil
}
