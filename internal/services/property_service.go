package services

import (
	"context"
	"fmt"

	"realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/repositories"
	"realestate-backoffice/internal/validators"
	"realestate-backoffice/pkg/database"
)

type PropertyService struct {
	properties repositories.PropertyRepository
	deals      repositories.DealRepository
	tx         database.Transactor
	validator  *validators.Validator
}

func NewPropertyService(
	properties repositories.PropertyRepository,
	deals repositories.DealRepository,
	tx database.Transactor,
	validator *validators.Validator,
) *PropertyService {
	return &PropertyService{properties: properties, deals: deals, tx: tx, validator: validator}
}

func (s *PropertyService) GetAll(ctx context.Context) ([]models.Property, error) {
	properties, err := s.properties.FindAll(ctx)
	if err != nil {
		return nil, selectErr(err, entityProperty, nil)
	}
	return properties, nil
}

func (s *PropertyService) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, selectErr(err, entityProperty, id)
	}
	return property, nil
}

func (s *PropertyService) Create(ctx context.Context, property *models.Property) (int64, error) {
	if err := s.validator.Property(property); err != nil {
		return 0, err
	}
	id, err := s.properties.Create(ctx, property)
	if err != nil {
		return 0, insertErr(err, entityProperty)
	}
	return id, nil
}

func (s *PropertyService) Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error) {
	fields, err := s.validator.Coerce(repositories.PropertyFields, updates)
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	if _, err := s.properties.FindByID(ctx, id); err != nil {
		return false, selectErr(err, entityProperty, id)
	}
	updated, err := s.properties.Update(ctx, id, fields)
	if err != nil {
		return false, updateErr(err, entityProperty, id)
	}
	return updated, nil
}

// Delete refuses to remove a property referenced by deals.
func (s *PropertyService) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		n, err := s.deals.WithQuerier(q).CountByProperty(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return errors.BusinessRule(errors.RulePropertyHasDeals,
				fmt.Sprintf("Невозможно удалить объект недвижимости: с ним связано сделок: %d", n))
		}
		deleted, err = s.properties.WithQuerier(q).Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, deleteErr(err, entityProperty, id)
	}
	return deleted, nil
}

func (s *PropertyService) FindByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Property, error) {
	if err := s.validator.Range("minPrice", &minPrice, &maxPrice); err != nil {
		return nil, err
	}
	properties, err := s.properties.FindByPriceRange(ctx, minPrice, maxPrice)
	if err != nil {
		return nil, selectErr(err, entityProperty, nil)
	}
	return properties, nil
}

func (s *PropertyService) FindByCity(ctx context.Context, cityID int64) ([]models.Property, error) {
	properties, err := s.properties.FindByCity(ctx, cityID)
	if err != nil {
		return nil, selectErr(err, entityProperty, nil)
	}
	return properties, nil
}

func (s *PropertyService) FindByPropertyType(ctx context.Context, typeID int64) ([]models.Property, error) {
	properties, err := s.properties.FindByPropertyType(ctx, typeID)
	if err != nil {
		return nil, selectErr(err, entityProperty, nil)
	}
	return properties, nil
}

func (s *PropertyService) Count(ctx context.Context) (int64, error) {
	n, err := s.properties.Count(ctx)
	if err != nil {
		return 0, selectErr(err, entityProperty, nil)
	}
	return n, nil
}

func (s *PropertyService) GetAllWithDetails(ctx context.Context) ([]models.PropertyWithDetails, error) {
	properties, err := s.properties.FindAllWithDetails(ctx)
	if err != nil {
		return nil, selectErr(err, entityProperty, nil)
	}
	return properties, nil
}

func (s *PropertyService) GetWithDetails(ctx context.Context, id int64) (*models.PropertyWithDetails, error) {
	property, err := s.properties.FindWithDetailsByID(ctx, id)
	if err != nil {
		return nil, selectErr(err, entityProperty, id)
	}
	return property, nil
}

func (s *PropertyService) SearchWithDetails(ctx context.Context, criteria models.PropertySearch) ([]models.PropertyWithDetails, error) {
	if err := s.validator.Range("minPrice", criteria.MinPrice, criteria.MaxPrice); err != nil {
		return nil, err
	}
	properties, err := s.properties.SearchWithDetails(ctx, criteria)
	if err != nil {
		return nil, selectErr(err, entityProperty, nil)
	}
	return properties, nil
}

func (s *PropertyService) GetAllForTable(ctx context.Context) ([]models.PropertyTable, error) {
	properties, err := s.properties.FindAllForTable(ctx)
	if err != nil {
		return nil, selectErr(err, entityProperty, nil)
	}
	return properties, nil
}

func (s *PropertyService) SearchForTable(ctx context.Context, criteria models.PropertySearch) ([]models.PropertyTable, error) {
	if err := s.validator.Range("minPrice", criteria.MinPrice, criteria.MaxPrice); err != nil {
		return nil, err
	}
	properties, err := s.properties.SearchForTable(ctx, criteria)
	if err != nil {
		return nil, selectErr(err, entityProperty, nil)
	}
	return properties, nil
}

func (s *PropertyService) GetAllForReport(ctx context.Context) ([]models.PropertyReport, error) {
	rows, err := s.properties.FindAllForReport(ctx)
	if err != nil {
		return nil, selectErr(err, entityProperty, nil)
	}
	return rows, nil
}
