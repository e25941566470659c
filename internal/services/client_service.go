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

type ClientService struct {
	clients  repositories.ClientRepository
	deals     repositories.DealRepository
	tx        database.Transactor
	validator *validators.Validator
}

func NewClientService(
	clients repositories.ClientRepository,
	deals repositories.DealRepository,
	tx database.Transactor,
	validator *validators.Validator,
) *ClientService {
	return &ClientService{clients: clients, deals: deals, tx: tx, validator: validator}
}

func (s *ClientService) GetAll(ctx context.Context) ([]models.Client, error) {
	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		return nil, selectErr(err, entityClient, nil)
	}
	return clients, nil
}

func (s *ClientService) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, selectErr(err, entityClient, id)
	}
	return client, nil
}

func (s *ClientService) Create(ctx context.Context, client *models.Client) (int64, error) {
	if err := s.validator.Client(client); err != nil {
		return 0, err
	}
	if err := s.checkUnique(ctx, errors.OpInsert, client.Email, client.Phone, 0); err != nil {
		return 0, err
	}
	id, err := s.clients.Create(ctx, client)
	if err != nil {
		return 0, insertErr(err, entityClient)
	}
	return id, nil
}

// Update applies a partial update. It reports false without touching the
// database when updates holds no recognized field.
func (s *ClientService) Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error) {
	fields, err := s.validator.Coerce(repositories.ClientFields, updates)
	if err != nil {
		return false, err
	}
	if len(fields) == 0 {
		return false, nil
	}
	if _, err := s.clients.FindByID(ctx, id); err != nil {
		return false, selectErr(err, entityClient, id)
	}

	email, _ := textValue(fields["email"])
	phone, _ := textValue(fields["phone"])
	if err := s.checkUnique(ctx, errors.OpUpdate, &email, &phone, id); err != nil {
		return false, err
	}

	updated, err := s.clients.Update(ctx, id, fields)
	if err != nil {
		return false, updateErr(err, entityClient, id)
	}
	return updated, nil
}

// Delete refuses to remove a client referenced by deals. The check and the
// delete share one transaction.
func (s *ClientService) Delete(ctx context.Context, id int64) (bool, error) {
	var deleted bool
	err := s.tx.WithTx(ctx, func(q database.Querier) error {
		n, err := s.deals.WithQuerier(q).CountByClient(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return errors.BusinessRule(errors.RuleClientHasDeals,
				fmt.Sprintf("Невозможно удалить клиента: с ним связано сделок: %d", n))
		}
		deleted, err = s.clients.WithQuerier(q).Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, deleteErr(err, entityClient, id)
	}
	return deleted, nil
}

func (s *ClientService) FindByLastName(ctx context.Context, lastName string) ([]models.Client, error) {
	clients, err := s.clients.FindByLastName(ctx, lastName)
	if err != nil {
		return nil, selectErr(err, entityClient, nil)
	}
	return clients, nil
}

func (s *ClientService) FindByPhone(ctx context.Context, phone string) (*models.Client, error) {
	client, err := s.clients.FindByPhone(ctx, phone)
	if err != nil {
		return nil, selectErr(err, entityClient, "phone="+phone)
	}
	return client, nil
}

func (s *ClientService) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	client, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		return nil, selectErr(err, entityClient, "email="+email)
	}
	return client, nil
}

func (s *ClientService) Count(ctx context.Context) (int64, error) {
	n, err := s.clients.Count(ctx)
	if err != nil {
		return 0, selectErr(err, entityClient, nil)
	}
	return n, nil
}

func (s *ClientService) Search(ctx context.Context, criteria models.ClientSearch) ([]models.Client, error) {
	clients, err := s.clients.Search(ctx, criteria)
	if err != nil {
		return nil, selectErr(err, entityClient, nil)
	}
	return clients, nil
}

func (s *ClientService) checkUnique(ctx context.Context, op string, email, phone *string, excludeID int64) error {
	if email != nil && *email != "" {
		exists, err := s.clients.ExistsByEmail(ctx, *email, excludeID)
		if err != nil {
			return selectErr(err, entityClient, excludeID)
		}
		if exists {
			return errors.AlreadyExists(op, entityClient, "email", *email)
		}
	}
	if phone != nil && *phone != "" {
		exists, err := s.clients.ExistsByPhone(ctx, *phone, excludeID)
		if err != nil {
			return selectErr(err, entityClient, excludeID)
		}
		if exists {
			return errors.AlreadyExists(op, entityClient, "phone", *phone)
		}
	}
	return nil
}
