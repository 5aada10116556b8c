package datastore

import (
	"reflect"
	"strings"
	"unicode"
)

// Record converts a flat struct into a column map keyed by snake_case field
// names, ready for ReplaceAll. Pointer fields dereference to their value or
// nil, and named string types collapse to plain strings so the SQL driver
// accepts them.
func Record(value any) map[string]any {
	result := make(map[string]any)
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return result
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return result
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		result[toSnakeCase(field.Name)] = columnValue(v.Field(i))
	}
	return result
}

func columnValue(value reflect.Value) any {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() == reflect.String {
		return value.String()
	}
	return value.Interface()
}

func toSnakeCase(input string) string {
	runes := []rune(input)
	var b strings.Builder
	b.Grow(len(runes) + 2)

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			var next rune
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			// Break before a new word: after a lower/digit, or at the end
			// of an acronym run like the "ISO" in DateISO.
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && unicode.IsLower(next)) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
