package models

import (
	"database/sql/driver"
	"encoding/json"
)

// CostComponents maps cost-component names to CHF sub-amounts.
type CostComponents map[string]float64

// Value implements driver.Valuer for JSONB
func (c CostComponents) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB
func (c *CostComponents) Scan(value interface{}) error {
	if value == nil {
		*c = make(CostComponents)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		*c = make(CostComponents)
		return nil
	}

	return json.Unmarshal(bytes, c)
}

// CostBreakdown is a total cost in CHF with an optional component split.
// Components are informational; their sum approximates the total but the
// relation is not strictly enforced.
type CostBreakdown struct {
	TotalCHF   float64        `json:"total_chf"`
	Components CostComponents `json:"breakdown,omitempty"`
}
