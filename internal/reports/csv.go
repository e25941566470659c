// Package reports renders entity lists as spreadsheet-friendly CSV files.
package reports

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"realestate-backoffice/internal/models"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	delimiter  = ';'
	dateLayout = "02.01.2006"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

var printer = message.NewPrinter(language.Russian)

// spaces normalizes the no-break spaces CLDR uses for Russian grouping.
var spaces = strings.NewReplacer("\u00a0", " ", "\u202f", " ")

// FormatNumber renders v as "#,##0.##" in the Russian locale: space-grouped
// thousands, comma decimals, at most two fraction digits.
func FormatNumber(v float64) string {
	return spaces.Replace(printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2))))
}

func FormatDate(d models.Date) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// Filename is the download name of a report generated on day.
func Filename(entities string, day models.Date) string {
	return fmt.Sprintf("%s_report_%s.csv", entities, day.String())
}

// csvWriter quotes every field and doubles embedded quotes.
type csvWriter struct {
	w   *bufio.Writer
	err error
}

func newCSVWriter(w io.Writer) *csvWriter {
	cw := &csvWriter{w: bufio.NewWriter(w)}
	_, cw.err = cw.w.Write(bom)
	return cw
}

func (cw *csvWriter) row(fields ...string) {
	if cw.err != nil {
		return
	}
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(delimiter)
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	_, cw.err = cw.w.WriteString(b.String())
}

func (cw *csvWriter) flush() error {
	if cw.err != nil {
		return cw.err
	}
	return cw.w.Flush()
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}
