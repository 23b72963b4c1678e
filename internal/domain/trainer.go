package domain

import (
	"strings"
	"time"
)

// Trainer coaches persons.
type Trainer struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	TrainingType string    `json:"training_type,omitempty"`
	Gender       string    `json:"gender,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewTrainer creates a validated Trainer.
func NewTrainer(name, trainingType, gender string) (*Trainer, error) {
	now := time.Now().UTC()
	t := &Trainer{
		Name:         strings.TrimSpace(name),
		TrainingType: strings.TrimSpace(trainingType),
		Gender:       strings.TrimSpace(gender),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks if the Trainer has valid data.
func (t *Trainer) Validate() error {
	return validateName("name", t.Name)
}
