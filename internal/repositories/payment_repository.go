package repositories

import (
	"context"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/pkg/database"
)

const paymentColumns = "id_payment, payment_date, amount, id_deal"

var paymentTableSelect = `
	SELECT p.id_payment, p.payment_date, p.amount, p.id_deal, d.deal_date,
		` + fullName("c") + ` AS client_fio,
		` + cityAddress("city", "street", "prop") + ` AS property_address
	FROM payments p
	JOIN deals d ON p.id_deal = d.id_deal
	JOIN clients c ON d.id_client = c.id_client
	JOIN properties prop ON d.id_property = prop.id_property
	JOIN streets street ON prop.id_street = street.id_street
	JOIN cities city ON prop.id_city = city.id_city`

var paymentReportSelect = `
	SELECT p.id_payment AS id, p.payment_date, p.amount,
		` + fullName("c") + ` AS client_full_name,
		dt.deal_type_name, d.deal_cost
	FROM payments p
	JOIN deals d ON p.id_deal = d.id_deal
	JOIN clients c ON d.id_client = c.id_client
	JOIN deal_types dt ON d.id_deal_type = dt.id_deal_type
	ORDER BY p.payment_date DESC`

type paymentRepository struct {
	base
}

func NewPaymentRepository(q database.Querier) PaymentRepository {
	return &paymentRepository{base{q: q, table: "payments"}}
}

func (r *paymentRepository) WithQuerier(q database.Querier) PaymentRepository {
	return NewPaymentRepository(q)
}

func (r *paymentRepository) Create(ctx context.Context, p *models.Payment) (int64, error) {
	return r.insert(ctx, "id_payment",
		"INSERT INTO payments (payment_date, amount, id_deal) VALUES (?, ?, ?)",
		p.PaymentDate, p.Amount, p.DealID)
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := r.list(ctx, "find_all", &payments, "SELECT "+paymentColumns+" FROM payments ORDER BY payment_date DESC")
	return payments, err
}

func (r *paymentRepository) FindByID(ctx context.Context, id int64) (*models.Payment, error) {
	var p models.Payment
	if err := r.one(ctx, "find_by_id", &p, "SELECT "+paymentColumns+" FROM payments WHERE id_payment = ?", id); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update overwrites every column of the payment identified by p.ID.
func (r *paymentRepository) Update(ctx context.Context, p *models.Payment) (bool, error) {
	n, err := r.exec(ctx, "update",
		"UPDATE payments SET payment_date = ?, amount = ?, id_deal = ? WHERE id_payment = ?",
		p.PaymentDate, p.Amount, p.DealID, p.ID)
	return n > 0, err
}

func (r *paymentRepository) UpdateFields(ctx context.Context, id int64, updates map[string]interface{}) (bool, error) {
	return r.update(ctx, PaymentFields, id, updates)
}

func (r *paymentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, "id_payment", id)
}

func (r *paymentRepository) FindByDeal(ctx context.Context, dealID int64) ([]models.Payment, error) {
	payments := []models.Payment{}
	err := r.list(ctx, "find_by_deal", &payments,
		"SELECT "+paymentColumns+" FROM payments WHERE id_deal = ? ORDER BY payment_date DESC", dealID)
	return payments, err
}

func (r *paymentRepository) FindAllWithDetails(ctx context.Context) ([]models.PaymentTable, error) {
	return r.Search(ctx, models.PaymentSearch{})
}

// Search includes the whole end day by comparing against the following midnight.
func (r *paymentRepository) Search(ctx context.Context, criteria models.PaymentSearch) ([]models.PaymentTable, error) {
	w := &whereBuilder{}
	eq(w, "p.id_deal", criteria.DealID)
	gte(w, "p.payment_date", criteria.StartDate)
	if criteria.EndDate != nil {
		next := criteria.EndDate.AddDays(1)
		lt(w, "p.payment_date", &next)
	}

	payments := []models.PaymentTable{}
	err := r.list(ctx, "search", &payments, paymentTableSelect+w.clause()+" ORDER BY p.payment_date DESC", w.args...)
	return payments, err
}

func (r *paymentRepository) FindAllForReport(ctx context.Context) ([]models.PaymentReport, error) {
	rows := []models.PaymentReport{}
	err := r.list(ctx, "report", &rows, paymentReportSelect)
	return rows, err
}
