package repositories

import (
	"context"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/pkg/database"
)

const realtorColumns = "id_realtor, first_name, last_name, middle_name, phone, email, experience_years"

type realtorRepository struct {
	base
}

func NewRealtorRepository(q database.Querier) RealtorRepository {
	return &realtorRepository{base{q: q, table: "realtors"}}
}

func (r *realtorRepository) WithQuerier(q database.Querier) RealtorRepository {
	return NewRealtorRepository(q)
}

func (r *realtorRepository) Create(ctx context.Context, realtor *models.Realtor) (int64, error) {
	return r.insert(ctx, "id_realtor",
		"INSERT INTO realtors (first_name, last_name, middle_name, phone, email, experience_years) VALUES (?, ?, ?, ?, ?, ?)",
		realtor.FirstName, realtor.LastName, realtor.MiddleName, realtor.Phone, realtor.Email, realtor.ExperienceYears)
}

func (r *realtorRepository) FindAll(ctx context.Context) ([]models.Realtor, error) {
	realtors := []models.Realtor{}
	err := r.list(ctx, "find_all", &realtors, "SELECT "+realtorColumns+" FROM realtors ORDER BY last_name, first_name")
	return realtors, err
}

func (r *realtorRepository) FindByID(ctx context.Context, id int64) (*models.Realtor, error) {
	var realtor models.Realtor
	if err := r.one(ctx, "find_by_id", &realtor, "SELECT "+realtorColumns+" FROM realtors WHERE id_realtor = ?", id); err != nil {
		return nil, err
	}
	return &realtor, nil
}

func (r *realtorRepository) Update(ctx context.Context, id int64, updates map[string]interface{}) (bool, error) {
	return r.update(ctx, RealtorFields, id, updates)
}

func (r *realtorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "id_realtor", id)
}

func (r *realtorRepository) FindByLastName(ctx context.Context, lastName string) ([]models.Realtor, error) {
	realtors := []models.Realtor{}
	err := r.list(ctx, "find_by_last_name", &realtors,
		"SELECT "+realtorColumns+" FROM realtors WHERE LOWER(last_name) LIKE LOWER(?) ORDER BY first_name", "%"+lastName+"%")
	return realtors, err
}

func (r *realtorRepository) FindByPhone(ctx context.Context, phone string) (*models.Realtor, error) {
	var realtor models.Realtor
	if err := r.one(ctx, "find_by_phone", &realtor, "SELECT "+realtorColumns+" FROM realtors WHERE phone = ?", phone); err != nil {
		return nil, err
	}
	return &realtor, nil
}

func (r *realtorRepository) FindByEmail(ctx context.Context, email string) (*models.Realtor, error) {
	var realtor models.Realtor
	if err := r.one(ctx, "find_by_email", &realtor, "SELECT "+realtorColumns+" FROM realtors WHERE email = ?", email); err != nil {
		return nil, err
	}
	return &realtor, nil
}

func (r *realtorRepository) FindByExperience(ctx context.Context, minYears int) ([]models.Realtor, error) {
	realtors := []models.Realtor{}
	err := r.list(ctx, "find_by_experience", &realtors,
		"SELECT "+realtorColumns+" FROM realtors WHERE experience_years >= ? ORDER BY experience_years DESC", minYears)
	return realtors, err
}

func (r *realtorRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "count", "SELECT COUNT(*) FROM realtors")
}

func (r *realtorRepository) Search(ctx context.Context, criteria models.RealtorSearch) ([]models.Realtor, error) {
	var w whereBuilder
	w.ilike("last_name", criteria.LastName)
	w.eqText("email", criteria.Email)
	w.eqText("phone", criteria.Phone)
	gte(&w, "experience_years", criteria.MinExperience)

	realtors := []models.Realtor{}
	err := r.list(ctx, "search", &realtors,
		"SELECT "+realtorColumns+" FROM realtors"+w.clause()+" ORDER BY last_name, first_name", w.args...)
	return realtors, err
}

func (r *realtorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, "SELECT COUNT(*) FROM realtors WHERE id_realtor = ?", id)
}

// ExistsByEmail ignores the row with excludeID so an update can keep its own value.
func (r *realtorRepository) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	return r.exists(ctx, "SELECT COUNT(*) FROM realtors WHERE email = ? AND id_realtor <> ?", email, excludeID)
}

func (r *realtorRepository) ExistsByPhone(ctx context.Context, phone string, excludeID int64) (bool, error) {
	return r.exists(ctx, "SELECT COUNT(*) FROM realtors WHERE phone = ? AND id_realtor <> ?", phone, excludeID)
}
