package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
)

// identityField is stripped from create payloads; the server assigns it.
const identityField = "id"

func encodeBody(method string, body any) ([]byte, error) {
	if isNilBody(body) || strings.EqualFold(method, http.MethodGet) {
		return nil, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
	}

	if strings.EqualFold(method, http.MethodPost) {
		return withoutIdentity(data)
	}

	return data, nil
}

// withoutIdentity drops the top-level identity member of a JSON object.
// Anything that is not an object is returned untouched.
func withoutIdentity(data []byte) ([]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return data, nil //nolint:nilerr
	}

	if _, ok := fields[identityField]; !ok {
		return data, nil
	}

	delete(fields, identityField)

	out, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
	}

	return out, nil
}

func isNilBody(body any) bool {
	if body == nil {
		return true
	}

	v := reflect.ValueOf(body)

	switch v.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
