package validator

import (
	"fmt"
	"net/mail"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// Rule checks value and returns a failure message, or "" when the value passes.
type Rule func(value reflect.Value, params []string) string

var (
	registryMu sync.RWMutex
	registry   = map[string]Rule{
		"required": required,
		"min":      minRule,
		"max":      maxRule,
		"between":  between,
		"email":    email,
		"in":       in,
		"positive": positive,
	}
)

// RegisterRule adds or replaces a named rule.
func RegisterRule(name string, fn Rule) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct checks v's fields against their `validate` tags.
//
// Rules are separated by ";" and take comma-separated parameters after ":",
// for example `validate:"required;between:1,50"`. Errors are reported under the
// field's JSON name when it has one. Rules other than required skip empty values.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	var errs ValidationErrors
	validateStruct(rv.Elem(), "", &errs)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStruct(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()
	for i := range rv.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		name := fieldName(sf)
		if prefix != "" {
			name = prefix + "." + name
		}

		field := rv.Field(i)
		if field.Kind() == reflect.Pointer && !field.IsNil() {
			field = field.Elem()
		}
		if field.Kind() == reflect.Struct && tag == "" {
			validateStruct(field, name, errs)
			continue
		}
		if tag != "" {
			validateField(name, field, tag, errs)
		}
	}
}

func validateField(name string, field reflect.Value, tag string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for raw := range strings.SplitSeq(tag, ";") {
		ruleName, paramStr, _ := strings.Cut(strings.TrimSpace(raw), ":")
		if ruleName == "" {
			continue
		}
		rule, ok := registry[ruleName]
		if !ok {
			continue
		}
		if ruleName != "required" && isEmpty(field) {
			continue
		}

		var params []string
		if paramStr != "" {
			params = strings.Split(paramStr, ",")
			for i := range params {
				params[i] = strings.TrimSpace(params[i])
			}
		}

		if msg := rule(field, params); msg != "" {
			errs.Add(ValidationError{Field: name, Rule: ruleName, Message: msg})
		}
	}
}

func fieldName(sf reflect.StructField) string {
	if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return sf.Name
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// size returns the rune count of strings, the length of collections and the value of numbers.
func size(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.String:
		return float64(utf8.RuneCountInString(v.String())), true
	case reflect.Slice, reflect.Map, reflect.Array:
		return float64(v.Len()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func unit(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Map, reflect.Array:
		return " items"
	}
	return ""
}

func required(v reflect.Value, _ []string) string {
	if v.Kind() == reflect.String && strings.TrimSpace(v.String()) == "" || isEmpty(v) {
		return "field is required"
	}
	return ""
}

func minRule(v reflect.Value, params []string) string {
	n, ok := size(v)
	limit, err := param(params, 0)
	if !ok || err != nil || n >= limit {
		return ""
	}
	return fmt.Sprintf("must be at least %s%s", strconv.FormatFloat(limit, 'f', -1, 64), unit(v))
}

func maxRule(v reflect.Value, params []string) string {
	n, ok := size(v)
	limit, err := param(params, 0)
	if !ok || err != nil || n <= limit {
		return ""
	}
	return fmt.Sprintf("must be at most %s%s", strconv.FormatFloat(limit, 'f', -1, 64), unit(v))
}

func between(v reflect.Value, params []string) string {
	n, ok := size(v)
	lo, errLo := param(params, 0)
	hi, errHi := param(params, 1)
	if !ok || errLo != nil || errHi != nil || (n >= lo && n <= hi) {
		return ""
	}
	return fmt.Sprintf("must be between %s and %s%s",
		strconv.FormatFloat(lo, 'f', -1, 64), strconv.FormatFloat(hi, 'f', -1, 64), unit(v))
}

func email(v reflect.Value, _ []string) string {
	if v.Kind() != reflect.String {
		return ""
	}
	s := v.String()
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || !strings.Contains(s[strings.LastIndex(s, "@"):], ".") {
		return "must be a valid email address"
	}
	return ""
}

func in(v reflect.Value, params []string) string {
	if v.Kind() != reflect.String || slices.Contains(params, v.String()) {
		return ""
	}
	return "must be one of: " + strings.Join(params, ", ")
}

func positive(v reflect.Value, _ []string) string {
	n, ok := size(v)
	if !ok || v.Kind() == reflect.String || n > 0 {
		return ""
	}
	return "must be positive"
}

func param(params []string, i int) (float64, error) {
	if i >= len(params) {
		return 0, fmt.Errorf("validator: missing parameter %d", i)
	}
	return strconv.ParseFloat(params[i], 64)
}
