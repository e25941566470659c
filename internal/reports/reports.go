package reports

import (
	"io"
	"strconv"

	"realestate-backoffice/internal/models"
)

var (
	realtorHeader = []string{"ID", "Имя", "Фамилия", "Отчество", "Телефон", "Email", "Опыт работы (лет)"}

	propertyHeader = []string{
		"ID", "ПЛОЩАДЬ, М2", "СТОИМОСТЬ, РУБ.", "ОПИСАНИЕ", "ТИП НЕДВИЖИМОСТИ", "ПОЧТОВЫЙ ИНДЕКС",
		"НОМЕР ДОМА", "ЛИТЕРА ДОМА", "НОМЕР КОРПУСА", "НОМЕР КВАРТИРЫ", "УЛИЦА", "РАЙОН", "ГОРОД",
		"КОД РЕГИОНА", "РЕГИОН", "СТРАНА",
	}

	dealHeader = []string{
		"ID СДЕЛКИ", "ДАТА СДЕЛКИ", "СТОИМОСТЬ СДЕЛКИ, РУБ.", "АДРЕС НЕДВИЖИМОСТИ",
		"ФИО РИЕЛТОРА", "ФИО КЛИЕНТА", "ТИП СДЕЛКИ",
	}

	paymentHeader = []string{
		"ID ПЛАТЕЖА", "ДАТА ПЛАТЕЖА", "СУММА ПЛАТЕЖА, РУБ.", "ФИО КЛИЕНТА", "ТИП СДЕЛКИ", "СТОИМОСТЬ СДЕЛКИ, РУБ.",
	}
)

func WriteRealtors(w io.Writer, realtors []models.Realtor) error {
	cw := newCSVWriter(w)
	cw.row(realtorHeader...)
	for _, r := range realtors {
		cw.row(id(r.ID), r.FirstName, r.LastName, text(r.MiddleName), text(r.Phone), text(r.Email),
			strconv.Itoa(r.ExperienceYears))
	}
	return cw.flush()
}

func WriteProperties(w io.Writer, properties []models.PropertyReport) error {
	cw := newCSVWriter(w)
	cw.row(propertyHeader...)
	for _, p := range properties {
		cw.row(id(p.ID), FormatNumber(p.Area), FormatNumber(p.Cost), text(p.Description), p.PropertyTypeName,
			text(p.PostalCode), text(p.HouseNumber), text(p.HouseLetter), text(p.BuildingNumber),
			text(p.ApartmentNumber), p.StreetName, p.DistrictName, p.CityName, text(p.RegionCode),
			p.RegionName, p.CountryName)
	}
	return cw.flush()
}

func WriteDeals(w io.Writer, deals []models.DealReport) error {
	cw := newCSVWriter(w)
	cw.row(dealHeader...)
	for _, d := range deals {
		cw.row(id(d.ID), FormatDate(d.DealDate), FormatNumber(d.DealCost), d.PropertyAddress,
			d.RealtorFullName, d.ClientFullName, d.DealTypeName)
	}
	return cw.flush()
}

func WritePayments(w io.Writer, payments []models.PaymentReport) error {
	cw := newCSVWriter(w)
	cw.row(paymentHeader...)
	for _, p := range payments {
		cw.row(id(p.ID), FormatDate(p.PaymentDate), FormatNumber(p.Amount), p.ClientFullName,
			p.DealTypeName, FormatNumber(p.DealCost))
	}
	return cw.flush()
}
