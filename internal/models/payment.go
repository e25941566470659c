package models

type Payment struct {
	ID          int64   `json:"idPayment" db:"id_payment"`
	PaymentDate Date    `json:"paymentDate" db:"payment_date"`
	Amount      float64 `json:"amount" db:"amount" validate:"gt=0"`
	DealID      int64   `json:"idDeal" db:"id_deal" validate:"gt=0"`
}

// PaymentTable is a payment joined with its deal, client and property address.
type PaymentTable struct {
	IDPayment       int64   `json:"idPayment" db:"id_payment"`
	PaymentDate     Date    `json:"paymentDate" db:"payment_date"`
	Amount          float64 `json:"amount" db:"amount"`
	IDDeal          int64   `json:"idDeal" db:"id_deal"`
	DealDate        Date    `json:"dealDate" db:"deal_date"`
	ClientFIO       string  `json:"clientFio" db:"client_fio"`
	PropertyAddress string  `json:"propertyAddress" db:"property_address"`
}

// PaymentReport is one CSV row of the payments report.
type PaymentReport struct {
	ID             int64   `db:"id"`
	PaymentDate    Date    `db:"payment_date"`
	Amount         float64 `db:"amount"`
	ClientFullName string  `db:"client_full_name"`
	DealTypeName   string  `db:"deal_type_name"`
	DealCost       float64 `db:"deal_cost"`
}
