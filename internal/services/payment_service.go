package services

import (
	"context"

	"realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/repositories"
	"realestate-backoffice/internal/validators"
)

type PaymentService struct {
	payments  repositories.PaymentRepository
	deals     repositories.DealRepository
	validator *validators.Validator
}

func NewPaymentService(
	payments repositories.PaymentRepository,
	deals repositories.DealRepository,
	validator *validators.Validator,
) *PaymentService {
	return &PaymentService{payments: payments, deals: deals, validator: validator}
}

func (s *PaymentService) GetAll(ctx context.Context) ([]models.Payment, error) {
	payments, err := s.payments.FindAll(ctx)
	if err != nil {
		return nil, selectErr(err, entityPayment, nil)
	}
	return payments, nil
}

func (s *PaymentService) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, selectErr(err, entityPayment, id)
	}
	return payment, nil
}

func (s *PaymentService) Create(ctx context.Context, payment *models.Payment) (int64, error) {
	if err := s.validator.Payment(payment); err != nil {
		return 0, err
	}
	if err := s.checkDeal(ctx, payment.DealID); err != nil {
		return 0, err
	}
	id, err := s.payments.Create(ctx, payment)
	if err != nil {
		return 0, insertErr(err, entityPayment)
	}
	return id, nil
}

// Replace overwrites every column of an existing payment.
func (s *PaymentService) Replace(ctx context.Context, id int64, payment *models.Payment) (bool, error) {
	if err := s.validator.Payment(payment); err != nil {
		return false, err
	}
	if _, err := s.payments.FindByID(ctx, id); err != nil {
		return false, selectErr(err, entityPayment, id)
	}
	if err := s.checkDeal(ctx, payment.DealID); err != nil {
		return false, err
	}
	payment.ID = id
	updated, err := s.payments.Update(ctx, payment)
	if err != nil {
		return false, updateErr(err, entityPayment, id)
	}
	return updated, nil
}

// Update applies a partial update from a field map.
func (s *PaymentService) Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error) {
	fields, err := s.validator.Coerce(repositories.PaymentFields, updates)
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	if _, err := s.payments.FindByID(ctx, id); err != nil {
		return false, selectErr(err, entityPayment, id)
	}
	if dealID, ok := fields["idDeal"].(int64); ok {
		if err := s.checkDeal(ctx, dealID); err != nil {
			return false, err
		}
	}
	updated, err := s.payments.UpdateFields(ctx, id, fields)
	if err != nil {
		return false, updateErr(err, entityPayment, id)
	}
	return updated, nil
}

func (s *PaymentService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.payments.Delete(ctx, id)
	if err != nil {
		return false, deleteErr(err, entityPayment, id)
	}
	return deleted, nil
}

func (s *PaymentService) checkDeal(ctx context.Context, dealID int64) error {
	ok, err := s.deals.ExistsByID(ctx, dealID)
	if err != nil {
		return selectErr(err, entityDeal, dealID)
	}
	if !ok {
		return errors.RelatedNotFound("idDeal", dealID, entityPayment)
	}
	return nil
}

func (s *PaymentService) FindByDeal(ctx context.Context, dealID int64) ([]models.Payment, error) {
	payments, err := s.payments.FindByDeal(ctx, dealID)
	if err != nil {
		return nil, selectErr(err, entityPayment, nil)
	}
	return payments, nil
}

func (s *PaymentService) GetAllWithDetails(ctx context.Context) ([]models.PaymentTable, error) {
	payments, err := s.payments.FindAllWithDetails(ctx)
	if err != nil {
		return nil, selectErr(err, entityPayment, nil)
	}
	return payments, nil
}

// Search keeps payments dated on EndDate itself; the cutoff is the next midnight.
func (s *PaymentService) Search(ctx context.Context, criteria models.PaymentSearch) ([]models.PaymentTable, error) {
	if err := s.validator.DateRange(criteria.StartDate, criteria.EndDate); err != nil {
		return nil, err
	}
	payments, err := s.payments.Search(ctx, criteria)
	if err != nil {
		return nil, selectErr(err, entityPayment, nil)
	}
	return payments, nil
}

func (s *PaymentService) GetAllForReport(ctx context.Context) ([]models.PaymentReport, error) {
	rows, err := s.payments.FindAllForReport(ctx)
	if err != nil {
		return nil, selectErr(err, entityPayment, nil)
	}
	return rows, nil
}
