// Package service provides business logic layer for field module.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
	"github.com/festy23/matchday/internal/authz"
	fieldModel "github.com/festy23/matchday/internal/field/model"
	"github.com/festy23/matchday/internal/field/repository"
	userRepository "github.com/festy23/matchday/internal/user/repository"
)

// Service defines the interface for field business logic operations.
// Mutations are allowed for the field's contacts only.
type Service interface {
	CreateField(ctx context.Context, actorID string, req *fieldModel.CreateFieldRequest) (*fieldModel.FieldResponse, error)
	GetField(ctx context.Context, id string) (*fieldModel.FieldResponse, error)
	ListFields(ctx context.Context) ([]fieldModel.FieldResponse, error)
	UpdateField(ctx context.Context, actorID, id string, req *fieldModel.UpdateFieldRequest) (*fieldModel.FieldResponse, error)
	DeleteField(ctx context.Context, actorID, id string) error
	AddContact(ctx context.Context, actorID, fieldID, contactID string) (*fieldModel.FieldResponse, error)
	RemoveContact(ctx context.Context, actorID, fieldID, contactID string) (*fieldModel.FieldResponse, error)
	AddFacility(ctx context.Context, actorID, fieldID, facility string) (*fieldModel.FieldResponse, error)
	RemoveFacility(ctx context.Context, actorID, fieldID, facility string) (*fieldModel.FieldResponse, error)
}

type service struct {
	repo   repository.Repository
	users  userRepository.Repository
	policy authz.Policy[*fieldModel.Field]
	logger *zap.SugaredLogger
}

// New creates a new field service instance.
func New(repo repository.Repository, users userRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		users:  users,
		policy: authz.NewPolicy(repo.GetByID, (*fieldModel.Field).Owners),
		logger: logger,
	}
}

func (s *service) authorize(ctx context.Context, actorID, fieldID string) (*fieldModel.Field, error) {
	field, err := s.policy.Authorize(ctx, actorID, fieldID)
	if errors.Is(err, apperr.ErrForbidden) {
		s.logger.Debugw("field mutation denied", "actor_id", actorID, "field_id", fieldID)
	}
	return field, err
}

func validDimension(v float64) bool {
	return v > 0
}

// normalizeFacilities trims tags, drops blanks and keeps the first occurrence of each.
func normalizeFacilities(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, raw := range in {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func (s *service) CreateField(ctx context.Context, actorID string, req *fieldModel.CreateFieldRequest) (*fieldModel.FieldResponse, error) {
	if actorID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fieldModel.ErrInvalidName
	}
	if !validDimension(req.Length) || !validDimension(req.Width) {
		return nil, fieldModel.ErrInvalidDimensions
	}

	field := &fieldModel.Field{
		ID:          uuid.NewString(),
		Name:        name,
		Address:     strings.TrimSpace(req.Address),
		PostalCode:  strings.TrimSpace(req.PostalCode),
		Length:      req.Length,
		Width:       req.Width,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, field, actorID, normalizeFacilities(req.Facilities)); err != nil {
		return nil, err
	}

	s.logger.Infow("field created", "field_id", field.ID, "contact_id", actorID)
	return s.GetField(ctx, field.ID)
}

func (s *service) GetField(ctx context.Context, id string) (*fieldModel.FieldResponse, error) {
	field, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return fieldModel.NewFieldResponse(field), nil
}

func (s *service) ListFields(ctx context.Context) ([]fieldModel.FieldResponse, error) {
	fields, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return fieldModel.NewFieldResponses(fields), nil
}

func (s *service) UpdateField(ctx context.Context, actorID, id string, req *fieldModel.UpdateFieldRequest) (*fieldModel.FieldResponse, error) {
	field, err := s.authorize(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fieldModel.ErrInvalidName
		}
		updates["name"] = name
	}
	if req.Address != nil {
		updates["address"] = strings.TrimSpace(*req.Address)
	}
	if req.PostalCode != nil {
		updates["postal_code"] = strings.TrimSpace(*req.PostalCode)
	}
	if req.Length != nil {
		if !validDimension(*req.Length) {
			return nil, fieldModel.ErrInvalidDimensions
		}
		updates["length"] = *req.Length
	}
	if req.Width != nil {
		if !validDimension(*req.Width) {
			return nil, fieldModel.ErrInvalidDimensions
		}
		updates["width"] = *req.Width
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, field.ID, updates); err != nil {
			return nil, err
		}
	}
	return s.GetField(ctx, field.ID)
}

func (s *service) DeleteField(ctx context.Context, actorID, id string) error {
	field, err := s.authorize(ctx, actorID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, field.ID); err != nil {
		return err
	}
	s.logger.Infow("field deleted", "field_id", field.ID)
	return nil
}

func (s *service) AddContact(ctx context.Context, actorID, fieldID, contactID string) (*fieldModel.FieldResponse, error) {
	field, err := s.authorize(ctx, actorID, fieldID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, contactID); err != nil {
		return nil, err
	}
	if err := s.repo.AddContact(ctx, field.ID, contactID); err != nil {
		return nil, err
	}

	s.logger.Infow("field contact added", "field_id", field.ID, "user_id", contactID)
	return s.GetField(ctx, field.ID)
}

func (s *service) RemoveContact(ctx context.Context, actorID, fieldID, contactID string) (*fieldModel.FieldResponse, error) {
	field, err := s.authorize(ctx, actorID, fieldID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveContact(ctx, field.ID, contactID); err != nil {
		return nil, err
	}
	return s.GetField(ctx, field.ID)
}

func (s *service) AddFacility(ctx context.Context, actorID, fieldID, facility string) (*fieldModel.FieldResponse, error) {
	field, err := s.authorize(ctx, actorID, fieldID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(facility)
	if name == "" {
		return nil, fieldModel.ErrInvalidFacility
	}
	if err := s.repo.AddFacility(ctx, field.ID, name); err != nil {
		return nil, err
	}
	return s.GetField(ctx, field.ID)
}

func (s *service) RemoveFacility(ctx context.Context, actorID, fieldID, facility string) (*fieldModel.FieldResponse, error) {
	field, err := s.authorize(ctx, actorID, fieldID)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(facility)
	if name == "" {
		return nil, fieldModel.ErrInvalidFacility
	}
	if err := s.repo.RemoveFacility(ctx, field.ID, name); err != nil {
		return nil, err
	}
	return s.GetField(ctx, field.ID)
}
