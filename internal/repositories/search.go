package repositories

import "strings"

// whereBuilder accumulates AND-ed predicates. Absent criteria add nothing.
type whereBuilder struct {
	conds []string
	args  []interface{}
}

func (w *whereBuilder) add(cond string, args ...interface{}) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

// ilike is a case-insensitive substring match portable across drivers.
func (w *whereBuilder) ilike(column, value string) {
	if value == "" {
		return
	}
	w.add("LOWER("+column+") LIKE LOWER(?)", "%"+value+"%")
}

func (w *whereBuilder) eqText(column, value string) {
	if value == "" {
		return
	}
	w.add(column+" = ?", value)
}

func eq[T any](w *whereBuilder, column string, v *T) {
	if v != nil {
		w.add(column+" = ?", *v)
	}
}

func gte[T any](w *whereBuilder, column string, v *T) {
	if v != nil {
		w.add(column+" >= ?", *v)
	}
}

func lte[T any](w *whereBuilder, column string, v *T) {
	if v != nil {
		w.add(column+" <= ?", *v)
	}
}

func lt[T any](w *whereBuilder, column string, v *T) {
	if v != nil {
		w.add(column+" < ?", *v)
	}
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// fullName renders "last first[ middle]" for the person table alias.
func fullName(alias string) string {
	return "CONCAT(" + alias + ".last_name, ' ', " + alias + ".first_name, " +
		"CASE WHEN " + alias + ".middle_name IS NOT NULL THEN CONCAT(' ', " + alias + ".middle_name) ELSE '' END)"
}

// houseAddress renders "street, house[-apartment]".
func houseAddress(street, property string) string {
	return "CONCAT(" + street + ".street_name, ', ', COALESCE(" + property + ".house_number, ''), " +
		"CASE WHEN " + property + ".apartment_number IS NOT NULL THEN CONCAT('-', " + property + ".apartment_number) ELSE '' END)"
}

// cityAddress renders "city, street, house[-apartment]".
func cityAddress(city, street, property string) string {
	return "CONCAT(" + city + ".city_name, ', ', " + street + ".street_name, ', ', COALESCE(" + property + ".house_number, ''), " +
		"CASE WHEN " + property + ".apartment_number IS NOT NULL THEN CONCAT('-', " + property + ".apartment_number) ELSE '' END)"
}
