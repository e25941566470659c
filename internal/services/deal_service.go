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

type DealService struct {
	deals      repositories.DealRepository
	properties repositories.PropertyRepository
	realtors   repositories.RealtorRepository
	clients    repositories.ClientRepository
	reference  repositories.ReferenceRepository
	validator  *validators.Validator
}

func NewDealService(
	deals repositories.DealRepository,
	properties repositories.PropertyRepository,
	realtors repositories.RealtorRepository,
	clients repositories.ClientRepository,
	reference repositories.ReferenceRepository,
	validator *validators.Validator,
) *DealService {
	return &DealService{
		deals:      deals,
		properties: properties,
		realtors:   realtors,
		clients:    clients,
		reference:  reference,
		validator:  validator,
	}
}

func (s *DealService) GetAll(ctx context.Context) ([]models.Deal, error) {
	deals, err := s.deals.FindAll(ctx)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) GetByID(ctx context.Context, id int64) (*models.Deal, error) {
	deal, err := s.deals.FindByID(ctx, id)
	if err != nil {
		return nil, selectErr(err, entityDeal, id)
	}
	return deal, nil
}

func (s *DealService) Create(ctx context.Context, deal *models.Deal) (int64, error) {
	if err := s.validator.Deal(deal); err != nil {
		return 0, err
	}
	if err := s.checkRelated(ctx, deal.RealtorID, deal.ClientID, deal.DealTypeID); err != nil {
		return 0, err
	}
	if err := s.checkCost(ctx, deal.PropertyID, deal.DealCost); err != nil {
		return 0, err
	}
	id, err := s.deals.Create(ctx, deal)
	if err != nil {
		return 0, insertErr(err, entityDeal)
	}
	return id, nil
}

// Update re-checks the cost rule whenever the cost or the property changes.
func (s *DealService) Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error) {
	fields, err := s.validator.Coerce(repositories.DealFields, updates)
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	current, err := s.deals.FindByID(ctx, id)
	if err != nil {
		return false, selectErr(err, entityDeal, id)
	}

	var realtorID, clientID, dealTypeID int64
	if v, ok := fields["idRealtor"].(int64); ok {
		realtorID = v
	}
	if v, ok := fields["idClient"].(int64); ok {
		clientID = v
	}
	if v, ok := fields["idDealType"].(int64); ok {
		dealTypeID = v
	}
	if err := s.checkRelated(ctx, realtorID, clientID, dealTypeID); err != nil {
		return false, err
	}

	_, costChanged := fields["dealCost"]
	_, propertyChanged := fields["idProperty"]
	if costChanged || propertyChanged {
		propertyID, cost := current.PropertyID, current.DealCost
		if v, ok := fields["idProperty"].(int64); ok {
			propertyID = v
		}
		if v, ok := fields["dealCost"].(float64); ok {
			cost = v
		}
		if err := s.checkCost(ctx, propertyID, cost); err != nil {
			return false, err
		}
	}

	updated, err := s.deals.Update(ctx, id, fields)
	if err != nil {
		return false, updateErr(err, entityDeal, id)
	}
	return updated, nil
}

func (s *DealService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.deals.Delete(ctx, id)
	if err != nil {
		return false, deleteErr(err, entityDeal, id)
	}
	return deleted, nil
}

// checkRelated verifies the non-zero foreign keys point at existing rows.
func (s *DealService) checkRelated(ctx context.Context, realtorID, clientID, dealTypeID int64) error {
	checks := []struct {
		id     int64
		name   string
		exists func(context.Context, int64) (bool, error)
	}{
		{realtorID, "idRealtor", s.realtors.ExistsByID},
		{clientID, "idClient", s.clients.ExistsByID},
		{dealTypeID, "idDealType", s.reference.DealTypeExists},
	}
	for _, c := range checks {
		if c.id == 0 {
			continue
		}
		ok, err := c.exists(ctx, c.id)
		if err != nil {
			return selectErr(err, entityDeal, nil)
		}
		if !ok {
			return errors.RelatedNotFound(c.name, c.id, entityDeal)
		}
	}
	return nil
}

// checkCost loads the property and rejects a deal priced above it.
func (s *DealService) checkCost(ctx context.Context, propertyID int64, cost float64) error {
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		if database.KindOf(err) == database.KindNotFound {
			return errors.RelatedNotFound("idProperty", propertyID, entityDeal)
		}
		return selectErr(err, entityProperty, propertyID)
	}
	if cost > property.Cost {
		return errors.BusinessRule(errors.RuleDealCostExceedsProperty,
			fmt.Sprintf("Стоимость сделки (%.2f) превышает стоимость объекта недвижимости (%.2f)", cost, property.Cost))
	}
	return nil
}

func (s *DealService) FindByDate(ctx context.Context, date models.Date) ([]models.Deal, error) {
	deals, err := s.deals.FindByDate(ctx, date)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) FindByDateRange(ctx context.Context, start, end models.Date) ([]models.Deal, error) {
	if err := s.validator.DateRange(&start, &end); err != nil {
		return nil, err
	}
	deals, err := s.deals.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) FindByRealtor(ctx context.Context, realtorID int64) ([]models.Deal, error) {
	deals, err := s.deals.FindByRealtor(ctx, realtorID)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) FindByClient(ctx context.Context, clientID int64) ([]models.Deal, error) {
	deals, err := s.deals.FindByClient(ctx, clientID)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) FindByProperty(ctx context.Context, propertyID int64) ([]models.Deal, error) {
	deals, err := s.deals.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) FindByDealType(ctx context.Context, dealTypeID int64) ([]models.Deal, error) {
	deals, err := s.deals.FindByDealType(ctx, dealTypeID)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) FindByCostRange(ctx context.Context, minCost, maxCost float64) ([]models.Deal, error) {
	if err := s.validator.Range("minCost", &minCost, &maxCost); err != nil {
		return nil, err
	}
	deals, err := s.deals.FindByCostRange(ctx, minCost, maxCost)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) TotalAmount(ctx context.Context) (float64, error) {
	total, err := s.deals.TotalAmount(ctx)
	if err != nil {
		return 0, selectErr(err, entityDeal, nil)
	}
	return total, nil
}

func (s *DealService) Count(ctx context.Context) (int64, error) {
	n, err := s.deals.Count(ctx)
	if err != nil {
		return 0, selectErr(err, entityDeal, nil)
	}
	return n, nil
}

func (s *DealService) GetAllWithDetails(ctx context.Context) ([]models.DealWithDetails, error) {
	deals, err := s.deals.FindAllWithDetails(ctx)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) GetWithDetails(ctx context.Context, id int64) (*models.DealWithDetails, error) {
	deal, err := s.deals.FindWithDetailsByID(ctx, id)
	if err != nil {
		return nil, selectErr(err, entityDeal, id)
	}
	return deal, nil
}

func (s *DealService) SearchWithDetails(ctx context.Context, criteria models.DealSearch) ([]models.DealWithDetails, error) {
	if err := s.validateSearch(criteria); err != nil {
		return nil, err
	}
	deals, err := s.deals.SearchWithDetails(ctx, criteria)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) GetAllForTable(ctx context.Context) ([]models.DealTable, error) {
	deals, err := s.deals.FindAllForTable(ctx)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) SearchForTable(ctx context.Context, criteria models.DealSearch) ([]models.DealTable, error) {
	if err := s.validateSearch(criteria); err != nil {
		return nil, err
	}
	deals, err := s.deals.SearchForTable(ctx, criteria)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return deals, nil
}

func (s *DealService) validateSearch(criteria models.DealSearch) error {
	if err := s.validator.DateRange(criteria.StartDate, criteria.EndDate); err != nil {
		return err
	}
	return s.validator.Range("minCost", criteria.MinCost, criteria.MaxCost)
}

func (s *DealService) GetAllForReport(ctx context.Context) ([]models.DealReport, error) {
	rows, err := s.deals.FindAllForReport(ctx)
	if err != nil {
		return nil, selectErr(err, entityDeal, nil)
	}
	return rows, nil
}
