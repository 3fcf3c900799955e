// Package entities defines the persistence row shapes of the catalog
// tables. Every entity carries a static column table: Columns() names the
// columns, Values() and ScanDest() line up with it positionally. Queries
// are built and decoded from these tables; nothing on the query path
// inspects struct tags or uses reflection.
package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap maps a jsonb column to a Go map.
type JSONMap map[string]any

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("jsonmap: cannot scan %T", src)
	}
	return json.Unmarshal(data, m)
}
