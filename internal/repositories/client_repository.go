package repositories

import (
	"context"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/pkg/database"
)

const clientColumns = "id_client, first_name, last_name, middle_name, phone, email"

type clientRepository struct {
	base
}

func NewClientRepository(q database.Querier) ClientRepository {
	return &clientRepository{base{q: q, table: "clients"}}
}

func (r *clientRepository) WithQuerier(q database.Querier) ClientRepository {
	return NewClientRepository(q)
}

func (r *clientRepository) Create(ctx context.Context, c *models.Client) (int64, error) {
	return r.insert(ctx, "id_client",
		"INSERT INTO clients (first_name, last_name, middle_name, phone, email) VALUES (?, ?, ?, ?, ?)",
		c.FirstName, c.LastName, c.MiddleName, c.Phone, c.Email)
}

func (r *clientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	err := r.list(ctx, "find_all", &clients, "SELECT "+clientColumns+" FROM clients ORDER BY last_name, first_name")
	return clients, err
}

func (r *clientRepository) FindByID(ctx context.Context, id int64) (*models.Client, error) {
	var c models.Client
	if err := r.one(ctx, "find_by_id", &c, "SELECT "+clientColumns+" FROM clients WHERE id_client = ?", id); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error) {
	return r.update(ctx, ClientFields, id, updates)
}

func (r *clientRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "id_client", id)
}

func (r *clientRepository) FindByLastName(ctx context.Context, lastName string) ([]models.Client, error) {
	clients := []models.Client{}
	err := r.list(ctx, "find_by_last_name", &clients,
		"SELECT "+clientColumns+" FROM clients WHERE LOWER(last_name) LIKE LOWER(?) ORDER BY first_name", "%"+lastName+"%")
	return clients, err
}

func (r *clientRepository) FindByPhone(ctx context.Context, phone string) (*models.Client, error) {
	var c models.Client
	if err := r.one(ctx, "find_by_phone", &c, "SELECT "+clientColumns+" FROM clients WHERE phone = ?", phone); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	var c models.Client
	if err := r.one(ctx, "find_by_email", &c, "SELECT "+clientColumns+" FROM clients WHERE email = ?", email); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "count", "SELECT COUNT(*) FROM clients")
}

func (r *clientRepository) Search(ctx context.Context, criteria models.ClientSearch) ([]models.Client, error) {
	var w whereBuilder
	w.ilike("last_name", criteria.LastName)
	w.eqText("email", criteria.Email)
	w.eqText("phone", criteria.Phone)

	clients := []models.Client{}
	err := r.list(ctx, "search", &clients,
		"SELECT "+clientColumns+" FROM clients"+w.clause()+" ORDER BY last_name, first_name", w.args...)
	return clients, err
}

func (r *clientRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "SELECT COUNT(*) FROM clients WHERE id_client = ?", id)
}

// ExistsByEmail ignores the row with excludeID so an update can keep its own value.
func (r *clientRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.exists(ctx, "SELECT COUNT(*) FROM clients WHERE email = ? AND id_client <> ?", email, excludeID)
}

func (r *clientRepository) ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error) {
	return r.exists(ctx, "SELECT COUNT(*) FROM clients WHERE phone = ? AND id_client <> ?", phone, excludeID)
}
