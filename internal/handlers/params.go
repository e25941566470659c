package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"realestate-backoffice/internal/errors"
	"realestate-backoffice/internal/models"

	"github.com/gin-gonic/gin"
)

// fail hands err to the ErrorHandler middleware and stops the chain.
func fail(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}

func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.FieldValidation(name, "некорректный идентификатор: "+raw)
	}
	return id, nil
}

// queryParser collects every malformed query parameter before reporting.
type queryParser struct {
	c      *gin.Context
	errors map[string]string
}

func newQueryParser(c *gin.Context) *queryParser {
	return &queryParser{c: c, errors: map[string]string{}}
}

func (p *queryParser) text(name string) string {
	return strings.TrimSpace(p.c.Query(name))
}

func (p *queryParser) required(name string) string {
	v := p.text(name)
	if v == "" {
		p.errors[name] = "параметр обязателен"
	}
	return v
}

func (p *queryParser) int64(name string) *int64 {
	raw := p.text(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.errors[name] = "ожидается целое число"
		return nil
	}
	return &v
}

func (p *queryParser) int(name string) *int {
	v := p.int64(name)
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func (p *queryParser) float(name string) *float64 {
	raw := p.text(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil {
		p.errors[name] = "ожидается число"
		return nil
	}
	return &v
}

func (p *queryParser) date(name string) *models.Date {
	raw := p.text(name)
	if raw == "" {
		return nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		p.errors[name] = "ожидается дата в формате ГГГГ-ММ-ДД"
		return nil
	}
	return &d
}

func (p *queryParser) requiredFloat(name string) float64 {
	v := p.float(name)
	if v == nil {
		if _, bad := p.errors[name]; !bad {
			p.errors[name] = "параметр обязателен"
		}
		return 0
	}
	return *v
}

func (p *queryParser) requiredInt64(name string) int64 {
	v := p.int64(name)
	if v == nil {
		if _, bad := p.errors[name]; !bad {
			p.errors[name] = "параметр обязателен"
		}
		return 0
	}
	return *v
}

func (p *queryParser) requiredInt(name string) int {
	v := p.int(name)
	if v == nil {
		if _, bad := p.errors[name]; !bad {
			p.errors[name] = "параметр обязателен"
		}
		return 0
	}
	return *v
}

func (p *queryParser) requiredDate(name string) models.Date {
	v := p.date(name)
	if v == nil {
		if _, bad := p.errors[name]; !bad {
			p.errors[name] = "параметр обязателен"
		}
		return models.Date{}
	}
	return *v
}

func (p *queryParser) err() error {
	if len(p.errors) == 0 {
		return nil
	}
	return errors.Validation(p.errors)
}

// bindJSON decodes the request body, reporting malformed JSON as a validation error.
func bindJSON(c *gin.Context, dest interface{}) error {
	if err := c.ShouldBindJSON(dest); err != nil {
		return errors.FieldValidation("body", "некорректный JSON: "+err.Error())
	}
	return nil
}

// messages are the confirmations a handler answers mutations with.
type messages struct {
	created  string
	updated  string
	deleted  string
	notFound string
}

var (
	clientMessages   = messages{"Клиент успешно создан", "Данные клиента успешно обновлены", "Клиент успешно удален", "Клиент не найден"}
	realtorMessages  = messages{"Риелтор успешно создан", "Данные риелтора успешно обновлены", "Риелтор успешно удален", "Риелтор не найден"}
	propertyMessages = messages{"Объект недвижимости успешно создан", "Данные объекта недвижимости успешно обновлены", "Объект недвижимости успешно удален", "Объект недвижимости не найден"}
	dealMessages     = messages{"Сделка успешно создана", "Данные сделки успешно обновлены", "Сделка успешно удалена", "Сделка не найдена"}
	paymentMessages  = messages{"Платеж успешно создан", "Данные платежа успешно обновлены", "Платеж успешно удален", "Платеж не найден"}
)

func (m messages) respondCreated(c *gin.Context, id int64) {
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": m.created})
}

func (m messages) respondUpdated(c *gin.Context, updated bool) {
	if !updated {
		c.JSON(http.StatusOK, gin.H{"message": "Нет данных для обновления"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": m.updated})
}

// respondDeleted answers 200 either way; a missing row only changes the message.
func (m messages) respondDeleted(c *gin.Context, deleted bool) {
	if !deleted {
		c.JSON(http.StatusOK, gin.H{"message": m.notFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": m.deleted})
}
