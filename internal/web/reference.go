package web

import (
	"context"
	"strconv"

	"realestate-backoffice/internal/models"
)

func (ctl *Controller) referenceSections() []section {
	return []section{
		{
			title:   "Типы сделок",
			path:    "/reference/deal-types",
			filters: []field{textField("name", "Название")},
			columns: []string{"ID", "Название"},
			list: func(ctx context.Context, q *values) ([]row, error) {
				types, err := ctl.reference.DealTypesByName(ctx, q.text("name"))
				if err != nil {
					return nil, err
				}
				rows := make([]row, 0, len(types))
				for _, t := range types {
					rows = append(rows, idRow(t.ID, t.Name))
				}
				return rows, nil
			},
		},
		{
			title:   "Типы недвижимости",
			path:    "/reference/property-types",
			filters: []field{textField("name", "Название")},
			columns: []string{"ID", "Название"},
			list: func(ctx context.Context, q *values) ([]row, error) {
				types, err := ctl.reference.PropertyTypesByName(ctx, q.text("name"))
				if err != nil {
					return nil, err
				}
				rows := make([]row, 0, len(types))
				for _, t := range types {
					rows = append(rows, idRow(t.ID, t.Name))
				}
				return rows, nil
			},
		},
		{
			title:   "Страны",
			path:    "/reference/countries",
			filters: []field{textField("name", "Название")},
			columns: []string{"ID", "Название"},
			list: func(ctx context.Context, q *values) ([]row, error) {
				countries, err := ctl.geography.CountriesByName(ctx, q.text("name"))
				if err != nil {
					return nil, err
				}
				rows := make([]row, 0, len(countries))
				for _, c := range countries {
					rows = append(rows, idRow(c.ID, c.Name))
				}
				return rows, nil
			},
		},
		{
			title: "Регионы",
			path:  "/reference/regions",
			filters: []field{
				textField("name", "Название"),
				textField("code", "Код"),
				numberField("countryId", "Страна (ID)"),
			},
			columns: []string{"ID", "Регион", "Код", "Страна"},
			list: func(ctx context.Context, q *values) ([]row, error) {
				criteria := models.RegionSearch{
					NamePattern: q.text("name"),
					Code:        q.text("code"),
					CountryID:   q.int64("countryId"),
				}
				if err := q.err(); err != nil {
					return nil, err
				}
				regions, err := ctl.geography.SearchRegions(ctx, criteria)
				if err != nil {
					return nil, err
				}
				rows := make([]row, 0, len(regions))
				for _, r := range regions {
					rows = append(rows, idRow(r.RegionID, r.RegionName, str(r.RegionCode), r.CountryName))
				}
				return rows, nil
			},
		},
		{
			title: "Города",
			path:  "/reference/cities",
			filters: []field{
				textField("name", "Название"),
				numberField("regionId", "Регион (ID)"),
				numberField("countryId", "Страна (ID)"),
			},
			columns: []string{"ID", "Город", "Регион", "Страна"},
			list: func(ctx context.Context, q *values) ([]row, error) {
				criteria := models.CitySearch{
					NamePattern: q.text("name"),
					RegionID:    q.int64("regionId"),
					CountryID:   q.int64("countryId"),
				}
				if err := q.err(); err != nil {
					return nil, err
				}
				cities, err := ctl.geography.SearchCities(ctx, criteria)
				if err != nil {
					return nil, err
				}
				rows := make([]row, 0, len(cities))
				for _, c := range cities {
					rows = append(rows, idRow(c.CityID, c.CityName, c.RegionName, c.CountryName))
				}
				return rows, nil
			},
		},
		{
			title: "Районы",
			path:  "/reference/districts",
			filters: []field{
				textField("name", "Название"),
				numberField("cityId", "Город (ID)"),
				numberField("regionId", "Регион (ID)"),
			},
			columns: []string{"ID", "Район", "Город", "Регион"},
			list: func(ctx context.Context, q *values) ([]row, error) {
				criteria := models.DistrictSearch{
					NamePattern: q.text("name"),
					CityID:      q.int64("cityId"),
					RegionID:    q.int64("regionId"),
				}
				if err := q.err(); err != nil {
					return nil, err
				}
				districts, err := ctl.geography.SearchDistricts(ctx, criteria)
				if err != nil {
					return nil, err
				}
				rows := make([]row, 0, len(districts))
				for _, d := range districts {
					rows = append(rows, idRow(d.DistrictID, d.DistrictName, d.CityName, d.RegionName))
				}
				return rows, nil
			},
		},
		{
			title: "Улицы",
			path:  "/reference/streets",
			filters: []field{
				textField("name", "Название"),
				numberField("cityId", "Город (ID)"),
				numberField("regionId", "Регион (ID)"),
			},
			columns: []string{"ID", "Улица", "Город", "Регион"},
			list: func(ctx context.Context, q *values) ([]row, error) {
				criteria := models.StreetSearch{
					NamePattern: q.text("name"),
					CityID:      q.int64("cityId"),
					RegionID:    q.int64("regionId"),
				}
				if err := q.err(); err != nil {
					return nil, err
				}
				streets, err := ctl.geography.SearchStreets(ctx, criteria)
				if err != nil {
					return nil, err
				}
				rows := make([]row, 0, len(streets))
				for _, s := range streets {
					rows = append(rows, idRow(s.StreetID, s.StreetName, s.CityName, s.RegionName))
				}
				return rows, nil
			},
		},
	}
}

func idRow(id int64, cells ...string) row {
	return row{ID: id, Cells: append([]string{strconv.FormatInt(id, 10)}, cells...)}
}
