package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Field length limits shared by entities and request validation.
const (
	MaxNameLength  = 100
	MaxPhoneLength = 32
)

// Person is a gym client. A person may be assigned to one trainer and
// one gym.
type Person struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	TrainerID   *int64    `json:"trainer_id,omitempty"`
	GymID       *int64    `json:"gym_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPerson creates a validated Person with trimmed fields and fresh timestamps.
func NewPerson(name, phoneNumber string) (*Person, error) {
	now := time.Now().UTC()
	p := &Person{
		Name:        strings.TrimSpace(name),
		PhoneNumber: strings.TrimSpace(phoneNumber),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks if the Person has valid data.
func (p *Person) Validate() error {
	if err := validateName("name", p.Name); err != nil {
		return err
	}
	if utf8.RuneCountInString(p.PhoneNumber) > MaxPhoneLength {
		return NewValidationError("phone_number", "is too long", nil)
	}
	return nil
}

// AssignTrainer links the person to trainerID.
func (p *Person) AssignTrainer(trainerID int64) {
	p.TrainerID = &trainerID
	p.UpdatedAt = time.Now().UTC()
}

// AssignGym links the person to gymID.
func (p *Person) AssignGym(gymID int64) {
	p.GymID = &gymID
	p.UpdatedAt = time.Now().UTC()
}

// InGym reports whether the person is assigned to gymID.
func (p Person) InGym(gymID int64) bool {
	return p.GymID != nil && *p.GymID == gymID
}

// TrainedBy reports whether the person is assigned to trainerID.
func (p Person) TrainedBy(trainerID int64) bool {
	return p.TrainerID != nil && *p.TrainerID == trainerID
}

// Clone returns a deep copy, so the result shares no pointers with p.
func (p Person) Clone() Person {
	c := p
	if p.TrainerID != nil {
		id := *p.TrainerID
		c.TrainerID = &id
	}
	if p.GymID != nil {
		id := *p.GymID
		c.GymID = &id
	}
	return c
}

func validateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError(field, "cannot be empty", ErrEmptyName)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return NewValidationError(field, "is too long", nil)
	}
	return nil
}
