package api

import (
	"time"

	"github.com/phrazzld/gym-api/internal/redact"
	"github.com/phrazzld/gym-api/internal/service"
	"github.com/phrazzld/gym-api/internal/task"
)

// PersonRequest is the payload for creating or updating a person.
type PersonRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=32"`
	TrainerID   *int64 `json:"trainer_id"   validate:"omitempty,gt=0"`
	GymID       *int64 `json:"gym_id"       validate:"omitempty,gt=0"`
}

func (r PersonRequest) toInput() service.PersonInput {
	return service.PersonInput{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		TrainerID:   r.TrainerID,
		GymID:       r.GymID,
	}
}

// TrainerRequest is the payload for creating or updating a trainer.
type TrainerRequest struct {
	Name         string `json:"name"          validate:"required,max=100"`
	TrainingType string `json:"training_type" validate:"max=100"`
	Gender       string `json:"gender"        validate:"max=32"`
}

func (r TrainerRequest) toInput() service.TrainerInput {
	return service.TrainerInput{Name: r.Name, TrainingType: r.TrainingType, Gender: r.Gender}
}

// GymRequest is the payload for creating or updating a gym.
type GymRequest struct {
	Type    string `json:"type"    validate:"required,max=100"`
	Address string `json:"address" validate:"max=255"`
	Number  int    `json:"number"  validate:"gte=0"`
}

func (r GymRequest) toInput() service.GymInput {
	return service.GymInput{Type: r.Type, Address: r.Address, Number: r.Number}
}

// MembershipRequest is the payload for creating a membership.
// Dates use the YYYY-MM-DD format; an empty start date means today.
type MembershipRequest struct {
	Type      string `json:"type"       validate:"max=50"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"omitempty,datetime=2006-01-02"`
}

func (r MembershipRequest) toInput() service.MembershipInput {
	input := service.MembershipInput{Type: r.Type}
	if r.StartDate != "" {
		// Format already checked by the datetime tag.
		input.StartDate, _ = time.Parse(time.DateOnly, r.StartDate)
	}
	if r.EndDate != "" {
		end, _ := time.Parse(time.DateOnly, r.EndDate)
		input.EndDate = &end
	}
	return input
}

// TaskSubmittedResponse is returned when a log export is accepted.
type TaskSubmittedResponse struct {
	TaskID string `json:"task_id"`
}

// TaskStatusResponse reports the state of a log export.
type TaskStatusResponse struct {
	TaskID      string      `json:"task_id"`
	Status      task.Status `json:"status"`
	Error       string      `json:"error,omitempty"`
	SubmittedAt time.Time   `json:"submitted_at"`
	FinishedAt  *time.Time  `json:"finished_at,omitempty"`
}

func taskInfoToResponse(info task.Info) TaskStatusResponse {
	return TaskStatusResponse{
		TaskID:      info.ID,
		Status:      info.Status,
		Error:       redact.String(info.Error),
		SubmittedAt: info.SubmittedAt,
		FinishedAt:  info.FinishedAt,
	}
}

// VisitCountResponse carries the current visit count.
type VisitCountResponse struct {
	Count int64 `json:"count"`
}
