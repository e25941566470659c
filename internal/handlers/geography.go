package handlers

import (
	"context"
	"net/http"

	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

// GeographyHandler serves the read-only address hierarchy.
type GeographyHandler struct {
	geo *services.GeographyService
}

func NewGeographyHandler(geo *services.GeographyService) *GeographyHandler {
	return &GeographyHandler{geo: geo}
}

func respond[T any](c *gin.Context, v T, err error) {
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// withID runs fn with the positive integer path parameter name.
func withID(name string, fn func(c *gin.Context, id int64)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := pathID(c, name)
		if err != nil {
			fail(c, err)
			return
		}
		fn(c, id)
	}
}

// byNameWithin looks up one item by exact name under the parent id given in
// the query parameter parent.
func byNameWithin[T any](parent string, find func(ctx context.Context, name string, parentID int64) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := newQueryParser(c)
		name := q.required("name")
		parentID := q.requiredInt64(parent)
		if err := q.err(); err != nil {
			fail(c, err)
			return
		}
		item, err := find(c.Request.Context(), name, parentID)
		respond(c, item, err)
	}
}

func (h *GeographyHandler) Register(rg *gin.RouterGroup) {
	countries := rg.Group("/countries")
	countries.GET("", func(c *gin.Context) {
		items, err := h.geo.Countries(c.Request.Context())
		respond(c, items, err)
	})
	countries.GET("/search/by-name", func(c *gin.Context) {
		items, err := h.geo.CountriesByName(c.Request.Context(), c.Query("name"))
		respond(c, items, err)
	})
	countries.GET("/:id", withID("id", func(c *gin.Context, id int64) {
		item, err := h.geo.Country(c.Request.Context(), id)
		respond(c, item, err)
	}))

	regions := rg.Group("/regions")
	regions.GET("", func(c *gin.Context) {
		items, err := h.geo.Regions(c.Request.Context())
		respond(c, items, err)
	})
	regions.GET("/with-details", func(c *gin.Context) {
		items, err := h.geo.RegionsWithDetails(c.Request.Context())
		respond(c, items, err)
	})
	regions.GET("/search", h.SearchRegions)
	regions.GET("/search/by-code", h.RegionByCode)
	regions.GET("/search/by-name-and-country", byNameWithin("countryId", h.geo.RegionByNameAndCountry))
	regions.GET("/by-country/:countryId", withID("countryId", func(c *gin.Context, id int64) {
		items, err := h.geo.RegionsByCountry(c.Request.Context(), id)
		respond(c, items, err)
	}))
	regions.GET("/:id", withID("id", func(c *gin.Context, id int64) {
		item, err := h.geo.Region(c.Request.Context(), id)
		respond(c, item, err)
	}))

	cities := rg.Group("/cities")
	cities.GET("", func(c *gin.Context) {
		items, err := h.geo.Cities(c.Request.Context())
		respond(c, items, err)
	})
	cities.GET("/with-details", func(c *gin.Context) {
		items, err := h.geo.CitiesWithDetails(c.Request.Context())
		respond(c, items, err)
	})
	cities.GET("/search", h.SearchCities)
	cities.GET("/search/by-name", h.CitiesByName)
	cities.GET("/search/by-name-and-region", byNameWithin("regionId", h.geo.CityByNameAndRegion))
	cities.GET("/by-region/:regionId", withID("regionId", func(c *gin.Context, id int64) {
		items, err := h.geo.CitiesByRegion(c.Request.Context(), id)
		respond(c, items, err)
	}))
	cities.GET("/by-country/:countryId", withID("countryId", func(c *gin.Context, id int64) {
		items, err := h.geo.CitiesByCountry(c.Request.Context(), id)
		respond(c, items, err)
	}))
	cities.GET("/:id", withID("id", func(c *gin.Context, id int64) {
		item, err := h.geo.City(c.Request.Context(), id)
		respond(c, item, err)
	}))

	districts := rg.Group("/districts")
	districts.GET("", func(c *gin.Context) {
		items, err := h.geo.Districts(c.Request.Context())
		respond(c, items, err)
	})
	districts.GET("/with-details", func(c *gin.Context) {
		items, err := h.geo.DistrictsWithDetails(c.Request.Context())
		respond(c, items, err)
	})
	districts.GET("/search", h.SearchDistricts)
	districts.GET("/search/by-name-and-city", byNameWithin("cityId", h.geo.DistrictByNameAndCity))
	districts.GET("/by-city/:cityId", withID("cityId", func(c *gin.Context, id int64) {
		items, err := h.geo.DistrictsByCity(c.Request.Context(), id)
		respond(c, items, err)
	}))
	districts.GET("/by-region/:regionId", withID("regionId", func(c *gin.Context, id int64) {
		items, err := h.geo.DistrictsByRegion(c.Request.Context(), id)
		respond(c, items, err)
	}))
	districts.GET("/:id", withID("id", func(c *gin.Context, id int64) {
		item, err := h.geo.District(c.Request.Context(), id)
		respond(c, item, err)
	}))

	streets := rg.Group("/streets")
	streets.GET("", func(c *gin.Context) {
		items, err := h.geo.Streets(c.Request.Context())
		respond(c, items, err)
	})
	streets.GET("/with-details", func(c *gin.Context) {
		items, err := h.geo.StreetsWithDetails(c.Request.Context())
		respond(c, items, err)
	})
	streets.GET("/search", h.SearchStreets)
	streets.GET("/search/by-name", h.StreetsByName)
	streets.GET("/search/by-name-and-city", byNameWithin("cityId", h.geo.StreetByNameAndCity))
	streets.GET("/by-city/:cityId", withID("cityId", func(c *gin.Context, id int64) {
		items, err := h.geo.StreetsByCity(c.Request.Context(), id)
		respond(c, items, err)
	}))
	streets.GET("/:id", withID("id", func(c *gin.Context, id int64) {
		item, err := h.geo.Street(c.Request.Context(), id)
		respond(c, item, err)
	}))
}

func (h *GeographyHandler) SearchRegions(c *gin.Context) {
	q := newQueryParser(c)
	criteria := models.RegionSearch{
		NamePattern: q.text("name"),
		Code:        q.text("code"),
		CountryID:   q.int64("countryId"),
	}
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	items, err := h.geo.SearchRegions(c.Request.Context(), criteria)
	respond(c, items, err)
}

func (h *GeographyHandler) RegionByCode(c *gin.Context) {
	q := newQueryParser(c)
	code := q.required("code")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	item, err := h.geo.RegionByCode(c.Request.Context(), code)
	respond(c, item, err)
}

func (h *GeographyHandler) SearchCities(c *gin.Context) {
	q := newQueryParser(c)
	criteria := models.CitySearch{
		NamePattern: q.text("name"),
		RegionID:    q.int64("regionId"),
		CountryID:   q.int64("countryId"),
	}
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	items, err := h.geo.SearchCities(c.Request.Context(), criteria)
	respond(c, items, err)
}

func (h *GeographyHandler) CitiesByName(c *gin.Context) {
	q := newQueryParser(c)
	name := q.required("name")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	items, err := h.geo.CitiesByName(c.Request.Context(), name)
	respond(c, items, err)
}

func (h *GeographyHandler) SearchDistricts(c *gin.Context) {
	q := newQueryParser(c)
	criteria := models.DistrictSearch{
		NamePattern: q.text("name"),
		CityID:      q.int64("cityId"),
		RegionID:    q.int64("regionId"),
	}
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	items, err := h.geo.SearchDistricts(c.Request.Context(), criteria)
	respond(c, items, err)
}

func (h *GeographyHandler) SearchStreets(c *gin.Context) {
	q := newQueryParser(c)
	criteria := models.StreetSearch{
		NamePattern: q.text("name"),
		CityID:      q.int64("cityId"),
		RegionID:    q.int64("regionId"),
	}
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	items, err := h.geo.SearchStreets(c.Request.Context(), criteria)
	respond(c, items, err)
}

func (h *GeographyHandler) StreetsByName(c *gin.Context) {
	q := newQueryParser(c)
	name := q.required("name")
	if err := q.err(); err != nil {
		fail(c, err)
		return
	}
	items, err := h.geo.StreetsByName(c.Request.Context(), name)
	respond(c, items, err)
}
