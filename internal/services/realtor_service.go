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

type RealtorService struct {
	realtors  repositories.RealtorRepository
	deals     repositories.DealRepository
	tx        database.Transactor
	validator *validators.Validator
}

func NewRealtorService(
	realtors repositories.RealtorRepository,
	deals repositories.DealRepository,
	tx database.Transactor,
	validator *validators.Validator,
) *RealtorService {
	return &RealtorService{realtors: realtors, deals: deals, tx: tx, validator: validator}
}

func (s *RealtorService) GetAll(ctx context.Context) ([]models.Realtor, error) {
	realtors, err := s.realtors.FindAll(ctx)
	if err != nil {
		return nil, selectErr(err, entityRealtor, nil)
	}
	return realtors, nil
}

func (s *RealtorService) GetByID(ctx context.Context, id int64) (*models.Realtor, error) {
	realtor, err := s.realtors.FindByID(ctx, id)
	if err != nil {
		return nil, selectErr(err, entityRealtor, id)
	}
	return realtor, nil
}

func (s *RealtorService) Create(ctx context.Context, realtor *models.Realtor) (int64, error) {
	if err := s.validator.Realtor(realtor); err != nil {
		return 0, err
	}
	if err := s.checkUnique(ctx, errors.OpInsert, realtor.Email, realtor.Phone, 0); err != nil {
		return 0, err
	}
	id, err := s.realtors.Create(ctx, realtor)
	if err != nil {
		return 0, insertErr(err, entityRealtor)
	}
	return id, nil
}

// Update applies a partial update. It reports false without touching the
// database when updates holds no recognized field.
func (s *RealtorService) Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error) {
	fields, err := s.validator.Coerce(repositories.RealtorFields, updates)
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	if _, err := s.realtors.FindByID(ctx, id); err != nil {
		return false, selectErr(err, entityRealtor, id)
	}

	email, _ := textValue(fields["email"])
	phone, _ := textValue(fields["phone"])
	if err := s.checkUnique(ctx, errors.OpUpdate, &email, &phone, id); err != nil {
		return false, err
	}

	updated, err := s.realtors.Update(ctx, id, fields)
	if err != nil {
		return false, updateErr(err, entityRealtor, id)
	}
	return updated, nil
}

// Delete refuses to remove a realtor referenced by deals. The check and the
// delete share one transaction.
func (s *RealtorService) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		n, err := s.deals.WithQuerier(q).CountByRealtor(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return errors.BusinessRule(errors.RuleRealtorHasDeals,
				fmt.Sprintf("Невозможно удалить риелтора: с ним связано сделок: %d", n))
		}
		deleted, err = s.realtors.WithQuerier(q).Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, deleteErr(err, entityRealtor, id)
	}
	return deleted, nil
}

func (s *RealtorService) FindByLastName(ctx context.Context, lastName string) ([]models.Realtor, error) {
	realtors, err := s.realtors.FindByLastName(ctx, lastName)
	if err != nil {
		return nil, selectErr(err, entityRealtor, nil)
	}
	return realtors, nil
}

func (s *RealtorService) FindByPhone(ctx context.Context, phone string) (*models.Realtor, error) {
	realtor, err := s.realtors.FindByPhone(ctx, phone)
	if err != nil {
		return nil, selectErr(err, entityRealtor, "phone="+phone)
	}
	return realtor, nil
}

func (s *RealtorService) FindByEmail(ctx context.Context, email string) (*models.Realtor, error) {
	realtor, err := s.realtors.FindByEmail(ctx, email)
	if err != nil {
		return nil, selectErr(err, entityRealtor, "email="+email)
	}
	return realtor, nil
}

func (s *RealtorService) FindByExperience(ctx context.Context, minYears int) ([]models.Realtor, error) {
	if minYears < 0 {
		return nil, errors.FieldValidation("minExperience", "значение должно быть не меньше 0")
	}
	realtors, err := s.realtors.FindByExperience(ctx, minYears)
	if err != nil {
		return nil, selectErr(err, entityRealtor, nil)
	}
	return realtors, nil
}

func (s *RealtorService) Count(ctx context.Context) (int64, error) {
	n, err := s.realtors.Count(ctx)
	if err != nil {
		return 0, selectErr(err, entityRealtor, nil)
	}
	return n, nil
}

func (s *RealtorService) Search(ctx context.Context, criteria models.RealtorSearch) ([]models.Realtor, error) {
	realtors, err := s.realtors.Search(ctx, criteria)
	if err != nil {
		return nil, selectErr(err, entityRealtor, nil)
	}
	return realtors, nil
}

func (s *RealtorService) checkUnique(ctx context.Context, op string, email, phone *string, excludeID int64) error {
	if email != nil && *email != "" {
		exists, err := s.realtors.ExistsByEmail(ctx, *email, excludeID)
		if err != nil {
			return selectErr(err, entityRealtor, excludeID)
		}
		if exists {
			return errors.AlreadyExists(op, entityRealtor, "email", *email)
		}
	}
	if phone != nil && *phone != "" {
		exists, err := s.realtors.ExistsByPhone(ctx, *phone, excludeID)
		if err != nil {
			return selectErr(err, entityRealtor, excludeID)
		}
		if exists {
			return errors.AlreadyExists(op, entityRealtor, "phone", *phone)
		}
	}
	return nil
}
