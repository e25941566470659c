package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded views; the result is handed to gin via SetHTMLTemplate.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// field is one input of a filter or add form.
type field struct {
	Name  string
	Label string
	Type  string
	Value string
}

type row struct {
	ID    int64
	Cells []string
}

// page is the view model of entity.html.
type page struct {
	Title       string
	Path        string
	Filters     []field
	Form        []field
	Columns     []string
	Rows        []row
	Editable    bool
	Report      bool
	Error       string
	FieldErrors map[string]string
}

type indexPage struct {
	Clients     int64
	Realtors    int64
	Properties  int64
	Deals       int64
	TotalAmount string
	Error       string
}

func textField(name, label string) field   { return field{Name: name, Label: label, Type: "text"} }
func numberField(name, label string) field { return field{Name: name, Label: label, Type: "number"} }
func dateField(name, label string) field   { return field{Name: name, Label: label, Type: "date"} }

// withValues fills fields from the request so the form keeps what was typed.
func withValues(fields []field, get func(string) string) []field {
	out := make([]field, len(fields))
	for i, f := range fields {
		f.Value = get(f.Name)
		out[i] = f
	}
	return out
}
