package easyverein

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// MaxPageSize is the largest page size the API accepts. WithLimit clamps
// to it instead of letting the server reject the request.
const MaxPageSize = 100

// ListOptions controls a single list request.
type ListOptions struct {
	// Limit is the page size. The API caps it at MaxPageSize.
	Limit int
	// Page selects the page to fetch, starting at 1.
	Page int
	// Query is the API's server-side field projection string, passed
	// through verbatim as the "query" parameter.
	Query string
}

// NewListOptions creates empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithLimit sets the page size, clamped to MaxPageSize.
func (o *ListOptions) WithLimit(limit int) *ListOptions {
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	o.Limit = limit

	return o
}

// WithPage sets the page number.
func (o *ListOptions) WithPage(page int) *ListOptions {
	o.Page = page

	return o
}

// WithQuery sets the field projection string.
func (o *ListOptions) WithQuery(query string) *ListOptions {
	o.Query = query

	return o
}

// ToValues converts the options to URL query parameters. Zero values are
// omitted entirely.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}

	if o.Query != "" {
		values.Set("query", o.Query)
	}

	return values
}

// EncodeFilter flattens a filter struct into URL query parameters.
//
// Filter structs declare their wire predicate via a `filter` struct tag,
// e.g. `filter:"totalPrice__gte"`. Fields must be pointers (or the list
// types IntList/StrList); a nil field was never assigned and is excluded
// from the result entirely, which keeps unset predicates out of the query
// string. Fields without a tag or tagged "-" are skipped.
func EncodeFilter(filter any) (url.Values, error) {
	values := url.Values{}

	if filter == nil {
		return values, nil
	}

	value := reflect.ValueOf(filter)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return values, nil
		}

		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrFilterNotStruct, value.Kind())
	}

	structType := value.Type()
	for i := range structType.NumField() {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		name := field.Tag.Get("filter")
		if name == "" || name == "-" {
			continue
		}

		encoded, ok := encodeFilterValue(value.Field(i))
		if ok {
			values.Set(name, encoded)
		}
	}

	return values, nil
}

// encodeFilterValue renders a single filter field. The boolean result
// reports whether the field was set at all.
func encodeFilterValue(field reflect.Value) (string, bool) {
	switch field.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			return "", false
		}

		return encodeScalar(field.Elem())
	case reflect.Slice:
		if field.IsNil() || field.Len() == 0 {
			return "", false
		}

		if stringer, ok := field.Interface().(fmt.Stringer); ok {
			return stringer.String(), true
		}

		return "", false
	default:
		return "", false
	}
}

func encodeScalar(value reflect.Value) (string, bool) {
	if stringer, ok := value.Interface().(fmt.Stringer); ok {
		return stringer.String(), true
	}

	switch value.Kind() {
	case reflect.String:
		return value.String(), true
	case reflect.Bool:
		if value.Bool() {
			return "True", true
		}

		return "False", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(value.Int(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(value.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

// MergeValues copies every entry of src into dst, overwriting duplicate
// keys. Used to combine list options with flattened filters.
func MergeValues(dst, src url.Values) {
	for key, entries := range src {
		for _, entry := range entries {
			dst.Set(key, entry)
		}
	}
}
