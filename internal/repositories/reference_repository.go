package repositories

import (
	"context"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/pkg/database"
)

type referenceRepository struct {
	dealTypes     base
	propertyTypes base
}

func NewReferenceRepository(q database.Querier) ReferenceRepository {
	return &referenceRepository{
		dealTypes:     base{q: q, table: "deal_types"},
		propertyTypes: base{q: q, table: "property_types"},
	}
}

func (r *referenceRepository) FindAllDealTypes(ctx context.Context) ([]models.DealType, error) {
	types := []models.DealType{}
	err := r.dealTypes.list(ctx, "find_all", &types,
		"SELECT id_deal_type, deal_type_name FROM deal_types ORDER BY deal_type_name")
	return types, err
}

func (r *referenceRepository) FindDealTypeByID(ctx context.Context, id int64) (*models.DealType, error) {
	var t models.DealType
	if err := r.dealTypes.one(ctx, "find_by_id", &t,
		"SELECT id_deal_type, deal_type_name FROM deal_types WHERE id_deal_type = ?", id); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *referenceRepository) FindDealTypesByName(ctx context.Context, name string) ([]models.DealType, error) {
	types := []models.DealType{}
	err := r.dealTypes.list(ctx, "find_by_name", &types,
		"SELECT id_deal_type, deal_type_name FROM deal_types WHERE LOWER(deal_type_name) LIKE LOWER(?) ORDER BY deal_type_name",
		"%"+name+"%")
	return types, err
}

func (r *referenceRepository) DealTypeExists(ctx context.Context, id int64) (bool, error) {
	return r.dealTypes.exists(ctx, "SELECT COUNT(*) FROM deal_types WHERE id_deal_type = ?", id)
}

func (r *referenceRepository) FindAllPropertyTypes(ctx context.Context) ([]models.PropertyType, error) {
	types := []models.PropertyType{}
	err := r.propertyTypes.list(ctx, "find_all", &types,
		"SELECT id_property_type, property_type_name FROM property_types ORDER BY property_type_name")
	return types, err
}

func (r *referenceRepository) FindPropertyTypeByID(ctx context.Context, id int64) (*models.PropertyType, error) {
	var t models.PropertyType
	if err := r.propertyTypes.one(ctx, "find_by_id", &t,
		"SELECT id_property_type, property_type_name FROM property_types WHERE id_property_type = ?", id); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *referenceRepository) FindPropertyTypesByName(ctx context.Context, name string) ([]models.PropertyType, error) {
	types := []models.PropertyType{}
	err := r.propertyTypes.list(ctx, "find_by_name", &types,
		"SELECT id_property_type, property_type_name FROM property_types WHERE LOWER(property_type_name) LIKE LOWER(?) ORDER BY property_type_name",
		"%"+name+"%")
	return types, err
}
