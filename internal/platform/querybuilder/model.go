package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds a single-row insert from the db-tagged fields of
// model, in field declaration order.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	columns, values, err := taggedColumns(model)
	if err != nil {
		return "", nil, err
	}

	return InsertInto(table).
		Columns(columns...).
		Values(values...).
		Suffix(suffix).
		ToSQL()
}

func taggedColumns(model any) ([]string, []any, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct")
	}

	t := v.Type()
	var columns []string
	var values []any
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}

		columns = append(columns, name)
		values = append(values, v.Field(i).Interface())
	}

	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return columns, values, nil
}
