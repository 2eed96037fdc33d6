package dao

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// URLList stores an ordered list of asset URLs as a JSON-encoded text
// column, matching the wire shape the store has always used.
type URLList []string

func (l URLList) Value() (driver.Value, error) {
	if l == nil {
		l = URLList{}
	}

	encoded, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal -> %w", err)
	}

	return string(encoded), nil
}

func (l *URLList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for URLList", src)
	}

	if len(raw) == 0 {
		*l = nil
		return nil
	}

	return json.Unmarshal(raw, l)
}
