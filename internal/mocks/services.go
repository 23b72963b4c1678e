package mocks

import (
	"context"

	"github.com/phrazzld/gym-api/internal/cache"
	"github.com/phrazzld/gym-api/internal/domain"
	"github.com/phrazzld/gym-api/internal/service"
	"github.com/phrazzld/gym-api/internal/task"
)

// MockPersonService implements service.PersonService with function fields.
// A method whose function field is nil returns zero values.
type MockPersonService struct {
	CreateFn        func(ctx context.Context, input service.PersonInput) (*domain.Person, error)
	CreateBatchFn   func(ctx context.Context, inputs []service.PersonInput) ([]*domain.Person, error)
	GetFn           func(ctx context.Context, id int64) (*domain.Person, error)
	ListFn          func(ctx context.Context) ([]*domain.Person, error)
	ListByGymTypeFn func(ctx context.Context, gymType string) ([]*domain.Person, error)
	UpdateFn        func(ctx context.Context, id int64, input service.PersonInput) (*domain.Person, error)
	DeleteFn        func(ctx context.Context, id int64) error
	AssignTrainerFn func(ctx context.Context, personID, trainerID int64) (*domain.Person, error)
	AssignGymFn     func(ctx context.Context, personID, gymID int64) (*domain.Person, error)

	Cached      []domain.Person
	Stats       cache.Stats
	ClearCalled int
}

var _ service.PersonService = (*MockPersonService)(nil)

func (m *MockPersonService) Create(ctx context.Context, input service.PersonInput) (*domain.Person, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input)
	}
	return nil, nil
}

func (m *MockPersonService) CreateBatch(ctx context.Context, inputs []service.PersonInput) ([]*domain.Person, error) {
	if m.CreateBatchFn != nil {
		return m.CreateBatchFn(ctx, inputs)
	}
	return nil, nil
}

func (m *MockPersonService) Get(ctx context.Context, id int64) (*domain.Person, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

func (m *MockPersonService) List(ctx context.Context) ([]*domain.Person, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockPersonService) ListByGymType(ctx context.Context, gymType string) ([]*domain.Person, error) {
	if m.ListByGymTypeFn != nil {
		return m.ListByGymTypeFn(ctx, gymType)
	}
	return nil, nil
}

func (m *MockPersonService) Update(ctx context.Context, id int64, input service.PersonInput) (*domain.Person, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, input)
	}
	return nil, nil
}

func (m *MockPersonService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *MockPersonService) AssignTrainer(ctx context.Context, personID, trainerID int64) (*domain.Person, error) {
	if m.AssignTrainerFn != nil {
		return m.AssignTrainerFn(ctx, personID, trainerID)
	}
	return nil, nil
}

func (m *MockPersonService) AssignGym(ctx context.Context, personID, gymID int64) (*domain.Person, error) {
	if m.AssignGymFn != nil {
		return m.AssignGymFn(ctx, personID, gymID)
	}
	return nil, nil
}

func (m *MockPersonService) CachedPeople() []domain.Person { return m.Cached }

func (m *MockPersonService) CacheStats() cache.Stats { return m.Stats }

func (m *MockPersonService) ClearCache() { m.ClearCalled++ }

// MockTrainerService implements service.TrainerService with function fields.
type MockTrainerService struct {
	CreateFn func(ctx context.Context, input service.TrainerInput) (*domain.Trainer, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Trainer, error)
	ListFn   func(ctx context.Context) ([]*domain.Trainer, error)
	UpdateFn func(ctx context.Context, id int64, input service.TrainerInput) (*domain.Trainer, error)
	DeleteFn func(ctx context.Context, id int64) error
}

var _ service.TrainerService = (*MockTrainerService)(nil)

func (m *MockTrainerService) Create(ctx context.Context, input service.TrainerInput) (*domain.Trainer, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input)
	}
	return nil, nil
}

func (m *MockTrainerService) Get(ctx context.Context, id int64) (*domain.Trainer, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

func (m *MockTrainerService) List(ctx context.Context) ([]*domain.Trainer, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockTrainerService) Update(ctx context.Context, id int64, input service.TrainerInput) (*domain.Trainer, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, input)
	}
	return nil, nil
}

func (m *MockTrainerService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// MockGymService implements service.GymService with function fields.
type MockGymService struct {
	CreateFn func(ctx context.Context, input service.GymInput) (*domain.Gym, error)
	GetFn    func(ctx context.Context, id int64) (*domain.Gym, error)
	ListFn   func(ctx context.Context) ([]*domain.Gym, error)
	UpdateFn func(ctx context.Context, id int64, input service.GymInput) (*domain.Gym, error)
	DeleteFn func(ctx context.Context, id int64) error
}

var _ service.GymService = (*MockGymService)(nil)

func (m *MockGymService) Create(ctx context.Context, input service.GymInput) (*domain.Gym, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, input)
	}
	return nil, nil
}

func (m *MockGymService) Get(ctx context.Context, id int64) (*domain.Gym, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

func (m *MockGymService) List(ctx context.Context) ([]*domain.Gym, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *MockGymService) Update(ctx context.Context, id int64, input service.GymInput) (*domain.Gym, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, input)
	}
	return nil, nil
}

func (m *MockGymService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// MockMembershipService implements service.MembershipService with function fields.
type MockMembershipService struct {
	CreateFn       func(ctx context.Context, personID int64, input service.MembershipInput) (*domain.Membership, error)
	GetFn          func(ctx context.Context, id int64) (*domain.Membership, error)
	ListByPersonFn func(ctx context.Context, personID int64) ([]*domain.Membership, error)
	DeleteFn       func(ctx context.Context, id int64) error
}

var _ service.MembershipService = (*MockMembershipService)(nil)

func (m *MockMembershipService) Create(ctx context.Context, personID int64, input service.MembershipInput) (*domain.Membership, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, personID, input)
	}
	return nil, nil
}

func (m *MockMembershipService) Get(ctx context.Context, id int64) (*domain.Membership, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	return nil, nil
}

func (m *MockMembershipService) ListByPerson(ctx context.Context, personID int64) ([]*domain.Membership, error) {
	if m.ListByPersonFn != nil {
		return m.ListByPersonFn(ctx, personID)
	}
	return nil, nil
}

func (m *MockMembershipService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// MockLogService implements service.LogService with function fields.
type MockLogService struct {
	StartExportFn func(ctx context.Context, dateFilter string) (string, error)
	StatusFn      func(ctx context.Context, taskID string) (task.Info, error)
	ResultFileFn  func(ctx context.Context, taskID string) (string, error)
}

var _ service.LogService = (*MockLogService)(nil)

func (m *MockLogService) StartExport(ctx context.Context, dateFilter string) (string, error) {
	if m.StartExportFn != nil {
		return m.StartExportFn(ctx, dateFilter)
	}
	return "", nil
}

func (m *MockLogService) Status(ctx context.Context, taskID string) (task.Info, error) {
	if m.StatusFn != nil {
		return m.StatusFn(ctx, taskID)
	}
	return task.Info{}, nil
}

func (m *MockLogService) ResultFile(ctx context.Context, taskID string) (string, error) {
	if m.ResultFileFn != nil {
		return m.ResultFileFn(ctx, taskID)
	}
	return "", nil
}
