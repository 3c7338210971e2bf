package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Cast payloads never fail to decode on a value of the wrong JSON type. The
// value is dropped and the problem is kept for Malformed or MenuIDError, so
// the caller's role can be checked first.

const invalidIntegerMessage = "A valid integer is required."

var errNotInteger = errors.New("not an integer")

func (r *CastV1) UnmarshalJSON(data []byte) error {
	*r = CastV1{}

	fields, ok := objectFields(data)
	if !ok {
		return nil
	}
	raw, ok := fields["menu_id"]
	if !ok {
		return nil
	}
	id, err := lenientInt(raw, true)
	if err != nil {
		r.malformed = NewValidationError("menu_id", invalidIntegerMessage)
		return nil
	}
	r.MenuID = id
	return nil
}

func (r *CastV2) UnmarshalJSON(data []byte) error {
	*r = CastV2{}

	fields, ok := objectFields(data)
	if !ok {
		return nil
	}
	raw, ok := fields["top_menus"]
	if !ok || isNull(raw) {
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		r.malformed = NewValidationError("top_menus", TopMenusRequired)
		return nil
	}

	r.TopMenus = make([]RankedMenu, 0, len(entries))
	for _, entry := range entries {
		var m RankedMenu
		if isNull(entry) || json.Unmarshal(entry, &m) != nil {
			r.TopMenus = nil
			r.malformed = NewValidationError("top_menus", TopMenusRequired)
			return nil
		}
		r.TopMenus = append(r.TopMenus, m)
	}
	return nil
}

// UnmarshalJSON fails only when data is not an object. A points value that is
// not an integral number is dropped and then fails the points rule.
func (m *RankedMenu) UnmarshalJSON(data []byte) error {
	*m = RankedMenu{}

	fields, ok := objectFields(data)
	if !ok {
		return errors.New("ranked menu must be an object")
	}

	if raw, ok := fields["points"]; ok {
		if p, err := lenientInt(raw, false); err == nil && p != nil {
			points := int(*p)
			m.Points = &points
		}
	}
	if raw, ok := fields["menu_id"]; ok {
		id, err := lenientInt(raw, true)
		if err != nil {
			m.menuIDErr = NewValidationError("menu_id", invalidIntegerMessage)
		} else {
			m.MenuID = id
		}
	}
	return nil
}

func objectFields(data []byte) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// lenientInt reads an integral JSON number such as 5 or 5.0, and with
// allowString also a string holding one. null yields nil.
func lenientInt(raw json.RawMessage, allowString bool) (*int64, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	var text string
	switch x := v.(type) {
	case nil:
		return nil, nil
	case json.Number:
		text = x.String()
	case string:
		if !allowString {
			return nil, errNotInteger
		}
		text = strings.TrimSpace(x)
	default:
		return nil, errNotInteger
	}

	if i := strings.IndexByte(text, '.'); i >= 0 && strings.Trim(text[i+1:], "0") == "" {
		text = text[:i]
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, errNotInteger
	}
	return &n, nil
}

func asError(err *ValidationError) error {
	if err == nil {
		return nil
	}
	return err
}
