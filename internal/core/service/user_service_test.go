package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/ports"
)

func TestUserService_GetSelf(t *testing.T) {
	repo := &userRepoStub{
		findByID: func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id, Role: domain.RoleUser}, nil
		},
	}
	svc := NewUserService(repo)

	user, err := svc.Get(context.Background(), 5, ports.Requester{ID: 5, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if user.ID != 5 {
		t.Fatalf("user id = %d", user.ID)
	}
}

func TestUserService_GetOtherUserDenied(t *testing.T) {
	repo := &userRepoStub{
		findByID: func(ctx context.Context, id uint) (*domain.User, error) {
			t.Fatalf("repository must not be hit on a denied request")
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.Get(context.Background(), 5, ports.Requester{ID: 6, Role: domain.RoleUser})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestUserService_GetAnyUserAsAdmin(t *testing.T) {
	repo := &userRepoStub{
		findByID: func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
	}
	svc := NewUserService(repo)

	if _, err := svc.Get(context.Background(), 5, ports.Requester{ID: 1, Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("Get as admin: %v", err)
	}
}

func TestUserService_UpdateOtherUserDenied(t *testing.T) {
	repo := &userRepoStub{
		update: func(ctx context.Context, id uint, update ports.UserUpdate) (*domain.User, error) {
			t.Fatalf("repository must not be hit on a denied request")
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	name := "Renamed"
	_, err := svc.Update(context.Background(), 5, ports.UserUpdate{Name: &name}, ports.Requester{ID: 6, Role: domain.RoleUser})
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
}

func TestUserService_UpdateRejectsUnknownRole(t *testing.T) {
	repo := &userRepoStub{
		update: func(ctx context.Context, id uint, update ports.UserUpdate) (*domain.User, error) {
			t.Fatalf("repository must not be hit for an invalid role value")
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	bad := domain.Role("ROOT")
	_, err := svc.Update(context.Background(), 5, ports.UserUpdate{Role: &bad}, ports.Requester{ID: 5, Role: domain.RoleUser})
	if err == nil {
		t.Fatalf("expected an error")
	}
}

func TestUserService_UpdateSelf(t *testing.T) {
	repo := &userRepoStub{
		update: func(ctx context.Context, id uint, update ports.UserUpdate) (*domain.User, error) {
			return &domain.User{ID: id, Name: *update.Name}, nil
		},
	}
	svc := NewUserService(repo)

	name := "Renamed"
	user, err := svc.Update(context.Background(), 5, ports.UserUpdate{Name: &name}, ports.Requester{ID: 5, Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if user.Name != "Renamed" {
		t.Fatalf("name = %q", user.Name)
	}
}
