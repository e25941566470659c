package web

import (
	"context"
	"io"
	"strconv"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/reports"
	"realestate-backoffice/internal/transformers"
)

func (ctl *Controller) propertySection() section {
	return section{
		title: "Объекты недвижимости",
		path:  "/properties",
		filters: []field{
			numberField("minPrice", "Цена от"),
			numberField("maxPrice", "Цена до"),
			numberField("cityId", "Город (ID)"),
			numberField("propertyTypeId", "Тип (ID)"),
			numberField("districtId", "Район (ID)"),
			numberField("streetId", "Улица (ID)"),
		},
		form: []field{
			numberField("idPropertyType", "Тип (ID)"),
			numberField("area", "Площадь, м2"),
			numberField("cost", "Стоимость, руб."),
			textField("description", "Описание"),
			numberField("idCountry", "Страна (ID)"),
			numberField("idRegion", "Регион (ID)"),
			numberField("idCity", "Город (ID)"),
			numberField("idDistrict", "Район (ID)"),
			numberField("idStreet", "Улица (ID)"),
			textField("postalCode", "Индекс"),
			textField("houseNumber", "Дом"),
			textField("houseLetter", "Литера"),
			textField("buildingNumber", "Корпус"),
			textField("apartmentNumber", "Квартира"),
		},
		columns: []string{"ID", "Тип", "Площадь, м2", "Стоимость, руб.", "Описание", "Адрес"},
		list: func(ctx context.Context, q *values) ([]row, error) {
			criteria := models.PropertySearch{
				MinPrice:       q.float("minPrice"),
				MaxPrice:       q.float("maxPrice"),
				CityID:         q.int64("cityId"),
				PropertyTypeID: q.int64("propertyTypeId"),
				DistrictID:     q.int64("districtId"),
				StreetID:       q.int64("streetId"),
			}
			if err := q.err(); err != nil {
				return nil, err
			}
			properties, err := ctl.properties.SearchForTable(ctx, criteria)
			if err != nil {
				return nil, err
			}
			rows := make([]row, 0, len(properties))
			for _, p := range properties {
				rows = append(rows, row{ID: p.PropertyID, Cells: []string{
					strconv.FormatInt(p.PropertyID, 10),
					p.PropertyTypeName,
					reports.FormatNumber(p.Area),
					reports.FormatNumber(p.Cost),
					str(p.ShortDescription),
					ctl.addresses.Format(transformers.Address{
						City:            p.CityName,
						District:        p.DistrictName,
						Street:          p.StreetName,
						HouseNumber:     p.HouseNumber,
						HouseLetter:     p.HouseLetter,
						BuildingNumber:  p.BuildingNumber,
						ApartmentNumber: p.ApartmentNumber,
					}),
				}})
			}
			return rows, nil
		},
		create: func(ctx context.Context, f *values) error {
			property := &models.Property{
				PropertyTypeID:  f.id("idPropertyType"),
				Area:            f.number("area"),
				Cost:            f.number("cost"),
				Description:     f.optional("description"),
				CountryID:       f.id("idCountry"),
				RegionID:        f.id("idRegion"),
				CityID:          f.id("idCity"),
				DistrictID:      f.id("idDistrict"),
				StreetID:        f.id("idStreet"),
				PostalCode:      f.optional("postalCode"),
				HouseNumber:     f.optional("houseNumber"),
				HouseLetter:     f.optional("houseLetter"),
				BuildingNumber:  f.optional("buildingNumber"),
				ApartmentNumber: f.optional("apartmentNumber"),
			}
			if err := f.err(); err != nil {
				return err
			}
			_, err := ctl.properties.Create(ctx, property)
			return err
		},
		update: ctl.properties.Update,
		remove: ctl.properties.Delete,
		report: &report{entity: "properties", write: func(ctx context.Context, w io.Writer) error {
			properties, err := ctl.properties.GetAllForReport(ctx)
			if err != nil {
				return err
			}
			return reports.WriteProperties(w, properties)
		}},
	}
}

func (ctl *Controller) dealSection() section {
	return section{
		title: "Сделки",
		path:  "/deals",
		filters: []field{
			dateField("startDate", "С"),
			dateField("endDate", "По"),
			numberField("realtorId", "Риелтор (ID)"),
			numberField("clientId", "Клиент (ID)"),
			numberField("dealTypeId", "Тип сделки (ID)"),
			numberField("minCost", "Стоимость от"),
			numberField("maxCost", "Стоимость до"),
		},
		form: []field{
			dateField("dealDate", "Дата"),
			numberField("dealCost", "Стоимость, руб."),
			numberField("idProperty", "Объект (ID)"),
			numberField("idRealtor", "Риелтор (ID)"),
			numberField("idClient", "Клиент (ID)"),
			numberField("idDealType", "Тип сделки (ID)"),
		},
		columns: []string{"ID", "Дата", "Стоимость, руб.", "Клиент", "Телефон клиента", "Риелтор", "Адрес", "Тип объекта", "Тип сделки"},
		list: func(ctx context.Context, q *values) ([]row, error) {
			criteria := models.DealSearch{
				StartDate:  q.date("startDate"),
				EndDate:    q.date("endDate"),
				RealtorID:  q.int64("realtorId"),
				ClientID:   q.int64("clientId"),
				DealTypeID: q.int64("dealTypeId"),
				MinCost:    q.float("minCost"),
				MaxCost:    q.float("maxCost"),
			}
			if err := q.err(); err != nil {
				return nil, err
			}
			deals, err := ctl.deals.SearchForTable(ctx, criteria)
			if err != nil {
				return nil, err
			}
			rows := make([]row, 0, len(deals))
			for _, d := range deals {
				rows = append(rows, row{ID: d.DealID, Cells: []string{
					strconv.FormatInt(d.DealID, 10),
					reports.FormatDate(d.DealDate),
					reports.FormatNumber(d.DealCost),
					d.ClientName,
					str(d.ClientPhone),
					d.RealtorName,
					d.PropertyAddress,
					d.PropertyTypeName,
					d.DealTypeName,
				}})
			}
			return rows, nil
		},
		create: func(ctx context.Context, f *values) error {
			deal := &models.Deal{
				DealDate:   f.day("dealDate"),
				DealCost:   f.number("dealCost"),
				PropertyID: f.id("idProperty"),
				RealtorID:  f.id("idRealtor"),
				ClientID:   f.id("idClient"),
				DealTypeID: f.id("idDealType"),
			}
			if err := f.err(); err != nil {
				return err
			}
			_, err := ctl.deals.Create(ctx, deal)
			return err
		},
		update: ctl.deals.Update,
		remove: ctl.deals.Delete,
		report: &report{entity: "deals", write: func(ctx context.Context, w io.Writer) error {
			deals, err := ctl.deals.GetAllForReport(ctx)
			if err != nil {
				return err
			}
			return reports.WriteDeals(w, deals)
		}},
	}
}

func (ctl *Controller) paymentSection() section {
	return section{
		title: "Платежи",
		path:  "/payments",
		filters: []field{
			numberField("dealId", "Сделка (ID)"),
			dateField("startDate", "С"),
			dateField("endDate", "По"),
		},
		form: []field{
			dateField("paymentDate", "Дата"),
			numberField("amount", "Сумма, руб."),
			numberField("idDeal", "Сделка (ID)"),
		},
		columns: []string{"ID", "Дата", "Сумма, руб.", "Сделка", "Дата сделки", "Клиент", "Адрес"},
		list: func(ctx context.Context, q *values) ([]row, error) {
			criteria := models.PaymentSearch{
				DealID:    q.int64("dealId"),
				StartDate: q.date("startDate"),
				EndDate:   q.date("endDate"),
			}
			if err := q.err(); err != nil {
				return nil, err
			}
			payments, err := ctl.payments.Search(ctx, criteria)
			if err != nil {
				return nil, err
			}
			rows := make([]row, 0, len(payments))
			for _, p := range payments {
				rows = append(rows, row{ID: p.IDPayment, Cells: []string{
					strconv.FormatInt(p.IDPayment, 10),
					reports.FormatDate(p.PaymentDate),
					reports.FormatNumber(p.Amount),
					strconv.FormatInt(p.IDDeal, 10),
					reports.FormatDate(p.DealDate),
					p.ClientFIO,
					p.PropertyAddress,
				}})
			}
			return rows, nil
		},
		create: func(ctx context.Context, f *values) error {
			payment := &models.Payment{
				PaymentDate: f.day("paymentDate"),
				Amount:      f.number("amount"),
				DealID:      f.id("idDeal"),
			}
			if err := f.err(); err != nil {
				return err
			}
			_, err := ctl.payments.Create(ctx, payment)
			return err
		},
		update: ctl.payments.Update,
		remove: ctl.payments.Delete,
		report: &report{entity: "payments", write: func(ctx context.Context, w io.Writer) error {
			payments, err := ctl.payments.GetAllForReport(ctx)
			if err != nil {
				return err
			}
			return reports.WritePayments(w, payments)
		}},
	}
}
