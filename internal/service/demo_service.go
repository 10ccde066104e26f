package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/flowtel/admin-backend/internal/model"
)

var validate = validator.New()

// DemoStore is the persistence surface the demo service needs.
type DemoStore interface {
	List(ctx context.Context) ([]model.DemoRequest, error)
	Create(ctx context.Context, req model.CreateDemoRequest) (*model.DemoRequest, error)
	Update(ctx context.Context, id string, u model.UpdateDemoRequest) (*model.DemoRequest, error)
	Delete(ctx context.Context, id string) error
}

// DemoService manages demo requests from the public site.
type DemoService struct {
	demos DemoStore
}

// NewDemoService constructs a DemoService.
func NewDemoService(demos DemoStore) *DemoService {
	return &DemoService{demos: demos}
}

// List returns all demo requests, newest first.
func (s *DemoService) List(ctx context.Context) ([]model.DemoRequest, error) {
	return s.demos.List(ctx)
}

// Create validates and stores a public demo request.
func (s *DemoService) Create(ctx context.Context, req model.CreateDemoRequest) (*model.DemoRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Hotel = strings.TrimSpace(req.Hotel)
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := validate.Var(req.Email, "required,email"); err != nil {
		return nil, fmt.Errorf("a valid email is required")
	}
	if req.Hotel == "" {
		return nil, fmt.Errorf("hotel is required")
	}
	if req.Rooms < 0 {
		return nil, fmt.Errorf("rooms may not be negative")
	}
	return s.demos.Create(ctx, req)
}

// Update applies a partial admin edit.
func (s *DemoService) Update(ctx context.Context, id string, u model.UpdateDemoRequest) (*model.DemoRequest, error) {
	if u.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*u.Email))
		if err := validate.Var(email, "required,email"); err != nil {
			return nil, fmt.Errorf("a valid email is required")
		}
		u.Email = &email
	}
	if u.Rooms != nil && *u.Rooms < 0 {
		return nil, fmt.Errorf("rooms may not be negative")
	}
	return s.demos.Update(ctx, id, u)
}

// Delete removes a demo request.
func (s *DemoService) Delete(ctx context.Context, id string) error {
	return s.demos.Delete(ctx, id)
}
