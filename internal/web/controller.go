package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/models"
	"realestate-backoffice/internal/reports"
	"realestate-backoffice/internal/services"
	"realestate-backoffice/internal/transformers"
	"realestate-backoffice/internal/utils"
	"realestate-backoffice/pkg/logger"
	"realestate-backoffice/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Controller serves the operator pages. Page loads render HTML; the
// update and delete calls made from the pages answer JSON errors through
// the ErrorHandler middleware.
type Controller struct {
	clients    *services.ClientService
	realtors   *services.RealtorService
	properties *services.PropertyService
	deals      *services.DealService
	payments   *services.PaymentService
	reference  *services.ReferenceService
	geography  *services.GeographyService
	addresses  transformers.AddressTransformer
	today      func() models.Date
}

func NewController(
	clients *services.ClientService,
	realtors *services.RealtorService,
	properties *services.PropertyService,
	deals *services.DealService,
	payments *services.PaymentService,
	reference *services.ReferenceService,
	geography *services.GeographyService,
) *Controller {
	return &Controller{
		clients:    clients,
		realtors:   realtors,
		properties: properties,
		deals:      deals,
		payments:   payments,
		reference:  reference,
		geography:  geography,
		addresses:  transformers.NewAddressTransformer(),
		today:      models.Today,
	}
}

// section describes one entity page. Nil operations are not mounted.
type section struct {
	title   string
	path    string
	filters []field
	form    []field
	columns []string
	list    func(ctx context.Context, q *values) ([]row, error)
	create  func(ctx context.Context, f *values) error
	update  func(ctx context.Context, id int64, updates map[string]interface{}) (bool, error)
	remove  func(ctx context.Context, id int64) (bool, error)
	report  *report
}

type report struct {
	entity string
	write  func(ctx context.Context, w io.Writer) error
}

func (s section) page(get func(string) string) *page {
	p := &page{
		Title:    s.title,
		Path:     s.path,
		Filters:  withValues(s.filters, get),
		Columns:  s.columns,
		Editable: s.remove != nil,
		Report:   s.report != nil,
	}
	if s.create != nil {
		p.Form = s.form
	}
	return p
}

// Register mounts every page on r.
func (ctl *Controller) Register(r gin.IRouter) {
	r.GET("/", ctl.index)
	for _, s := range ctl.sections() {
		ctl.mount(r, s)
	}
	for _, s := range ctl.referenceSections() {
		ctl.mount(r, s)
	}
}

func (ctl *Controller) sections() []section {
	return []section{
		ctl.clientSection(),
		ctl.realtorSection(),
		ctl.propertySection(),
		ctl.dealSection(),
		ctl.paymentSection(),
	}
}

func (ctl *Controller) mount(r gin.IRouter, s section) {
	g := r.Group(s.path)
	g.GET("", ctl.show(s))
	if s.create != nil {
		g.POST("/add", ctl.add(s))
	}
	if s.update != nil {
		g.POST("/update/:id", ctl.change(s))
	}
	if s.remove != nil {
		g.DELETE("/delete/:id", ctl.remove(s))
	}
	if s.report != nil {
		g.GET("/report", ctl.download(s))
	}
}

func (ctl *Controller) index(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		view  indexPage
		total float64
		err   error
	)
	counters := []struct {
		dest  *int64
		count func(context.Context) (int64, error)
	}{
		{&view.Clients, ctl.clients.Count},
		{&view.Realtors, ctl.realtors.Count},
		{&view.Properties, ctl.properties.Count},
		{&view.Deals, ctl.deals.Count},
	}
	for _, counter := range counters {
		if *counter.dest, err = counter.count(ctx); err != nil {
			break
		}
	}
	if err == nil {
		total, err = ctl.deals.TotalAmount(ctx)
	}
	if err != nil {
		appErr := logPageError(c, err)
		view.Error = appErr.UserMessage
		c.HTML(appErr.HTTPStatus, "index.html", view)
		return
	}
	view.TotalAmount = reports.FormatNumber(total)
	c.HTML(http.StatusOK, "index.html", view)
}

func (ctl *Controller) show(s section) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := s.page(c.Query)
		rows, err := s.list(c.Request.Context(), newValues(c.Query))
		if err != nil {
			renderError(c, p, err)
			return
		}
		p.Rows = rows
		c.HTML(http.StatusOK, "entity.html", p)
	}
}

// add handles the add form: success redirects back to the list,
// failure re-renders it with the message and the submitted values.
func (ctl *Controller) add(s section) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		err := s.create(ctx, newValues(c.PostForm))
		if err == nil {
			c.Redirect(http.StatusSeeOther, s.path)
			return
		}
		p := s.page(func(string) string { return "" })
		p.Form = withValues(s.form, c.PostForm)
		if rows, listErr := s.list(ctx, newValues(func(string) string { return "" })); listErr == nil {
			p.Rows = rows
		}
		renderError(c, p, err)
	}
}

func (ctl *Controller) change(s section) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := rowID(c)
		if err != nil {
			fail(c, err)
			return
		}
		var updates map[string]interface{}
		if err := c.ShouldBindJSON(&updates); err != nil {
			fail(c, errors.FieldValidation("body", "некорректный JSON: "+err.Error()))
			return
		}
		if _, err := s.update(c.Request.Context(), id, updates); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}

func (ctl *Controller) remove(s section) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := rowID(c)
		if err != nil {
			fail(c, err)
			return
		}
		if _, err := s.remove(c.Request.Context(), id); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusOK)
	}
}

// download streams the CSV report as an attachment named after today's date.
func (ctl *Controller) download(s section) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Buffered so a failed query still gets an error response.
		var buf bytes.Buffer
		if err := s.report.write(c.Request.Context(), &buf); err != nil {
			fail(c, err)
			return
		}
		metrics.ReportsGeneratedTotal.WithLabelValues(s.report.entity).Inc()
		name := reports.Filename(s.report.entity, ctl.today())
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	}
}

func fail(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

func rowID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.FieldValidation("id", "некорректный идентификатор: "+raw)
	}
	return id, nil
}

func renderError(c *gin.Context, p *page, err error) {
	appErr := logPageError(c, err)
	p.Error = appErr.UserMessage
	p.FieldErrors = appErr.FieldErrors
	c.HTML(appErr.HTTPStatus, "entity.html", p)
}

func logPageError(c *gin.Context, err error) *errors.AppError {
	appErr := errors.MapError(err)
	if utils.IsExpected(appErr) {
		logger.GlobalLogger.Warnf("Page rejected: path=%s, code=%s, error=%s", c.Request.URL.Path, appErr.Code, appErr.TechnicalMessage)
	} else {
		logger.GlobalLogger.Errorf("Page failed: path=%s, error=%s", c.Request.URL.Path, appErr.Error())
	}
	return appErr
}
