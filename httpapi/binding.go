package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
)

// bindJSON decodes the request body into out with exact-name field matching.
// encoding/json falls back to case-insensitive matching; the UI contract is
// exact, so mis-cased keys are dropped instead of bound.
func bindJSON(r *http.Request, out any) error {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("httpapi: read body: %w", err)
	}
	filtered, err := filterExactKeys(data, reflect.TypeOf(out))
	if err != nil {
		return fmt.Errorf("httpapi: decode body: %w", err)
	}
	if err := json.Unmarshal(filtered, out); err != nil {
		return fmt.Errorf("httpapi: decode body: %w", err)
	}
	return nil
}

// filterExactKeys strips object members whose keys do not exactly match a
// field's JSON name, recursing through nested structs and slices. Members
// that survive match exactly, so the final Unmarshal never needs the
// case-insensitive fallback.
func filterExactKeys(data []byte, t reflect.Type) ([]byte, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		var members map[string]json.RawMessage
		if err := json.Unmarshal(data, &members); err != nil {
			return nil, err
		}
		out := make(map[string]json.RawMessage, len(members))
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := f.Name
			if tag, ok := f.Tag.Lookup("json"); ok {
				tagName, _, _ := strings.Cut(tag, ",")
				if tagName == "-" {
					continue
				}
				if tagName != "" {
					name = tagName
				}
			}
			raw, ok := members[name]
			if !ok {
				continue
			}
			filtered, err := filterExactKeys(raw, f.Type)
			if err != nil {
				return nil, err
			}
			out[name] = filtered
		}
		return json.Marshal(out)

	case reflect.Slice, reflect.Array:
		elem := t.Elem()
		// []byte and json.RawMessage stay verbatim.
		if elem.Kind() == reflect.Uint8 {
			return data, nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		out := make([]json.RawMessage, len(items))
		for i, item := range items {
			filtered, err := filterExactKeys(item, elem)
			if err != nil {
				return nil, err
			}
			out[i] = filtered
		}
		return json.Marshal(out)

	default:
		return data, nil
	}
}
