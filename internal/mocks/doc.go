// Package mocks provides shared test doubles.
//
// Store mocks (PersonStore, TrainerStore, GymStore, MembershipStore) are
// built on testify/mock and are used by service tests. Service mocks
// (MockPersonService and friends) expose one function field per method and
// are used by handler tests:
//
//	svc := &mocks.MockPersonService{
//	    GetFn: func(ctx context.Context, id int64) (*domain.Person, error) {
//	        return &domain.Person{ID: id, Name: "Ann"}, nil
//	    },
//	}
package mocks
