package services

import (
	"context"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/repositories"
)

// ReferenceService is read-only access to deal and property types.
type ReferenceService struct {
	repo repositories.ReferenceRepository
}

func NewReferenceService(repo repositories.ReferenceRepository) *ReferenceService {
	return &ReferenceService{repo: repo}
}

func (s *ReferenceService) DealTypes(ctx context.Context) ([]models.DealType, error) {
	types, err := s.repo.FindAllDealTypes(ctx)
	if err != nil {
		return nil, selectErr(err, entityDealType, nil)
	}
	return types, nil
}

func (s *ReferenceService) DealType(ctx context.Context, id int64) (*models.DealType, error) {
	t, err := s.repo.FindDealTypeByID(ctx, id)
	if err != nil {
		return nil, selectErr(err, entityDealType, id)
	}
	return t, nil
}

// DealTypesByName lists every deal type when name is empty.
func (s *ReferenceService) DealTypesByName(ctx context.Context, name string) ([]models.DealType, error) {
	if name == "" {
		return s.DealTypes(ctx)
	}
	types, err := s.repo.FindDealTypesByName(ctx, name)
	if err != nil {
		return nil, selectErr(err, entityDealType, nil)
	}
	return types, nil
}

func (s *ReferenceService) PropertyTypes(ctx context.Context) ([]models.PropertyType, error) {
	types, err := s.repo.FindAllPropertyTypes(ctx)
	if err != nil {
		return nil, selectErr(err, entityPropertyType, nil)
	}
	return types, nil
}

func (s *ReferenceService) PropertyType(ctx context.Context, id int64) (*models.PropertyType, error) {
	t, err := s.repo.FindPropertyTypeByID(ctx, id)
	if err != nil {
		return nil, selectErr(err, entityPropertyType, id)
	}
	return t, nil
}

func (s *ReferenceService) PropertyTypesByName(ctx context.Context, name string) ([]models.PropertyType, error) {
	if name == "" {
		return s.PropertyTypes(ctx)
	}
	types, err := s.repo.FindPropertyTypesByName(ctx, name)
	if err != nil {
		return nil, selectErr(err, entityPropertyType, nil)
	}
	return types, nil
}
