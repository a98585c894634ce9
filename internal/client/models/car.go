// Package models defines the marketplace records exchanged with the AutoHub backend.
package models

import (
	"encoding/json"
	"strings"
)

// Numeric holds a backend field that is usually a JSON number but is
// occasionally delivered as a string (older listings). The raw text is kept
// as-is; callers that need a number convert it themselves and decide what an
// unparseable value means.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*n = Numeric(v)
		return nil
	}
	*n = Numeric(s)
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	var probe json.Number
	if err := json.Unmarshal([]byte(n), &probe); err == nil {
		return []byte(n), nil
	}
	return json.Marshal(string(n))
}

func (n Numeric) String() string { return string(n) }

// Car is a single listing as returned by the backend. The identifier is
// assigned by the server; the client never mutates a fetched record beyond
// removing it from an in-memory list after a successful delete.
type Car struct {
	ID             string   `json:"_id"`
	Name           string   `json:"name"`
	Year           int      `json:"year"`
	Price          Numeric  `json:"price"`
	Mileage        int      `json:"mileage"`
	Transmission   string   `json:"transmission"`
	Fuel           string   `json:"fuel"`
	Engine         string   `json:"engine"`
	Color          string   `json:"color,omitempty"`
	Description    string   `json:"description,omitempty"`
	Images         []string `json:"image"`
	SellerName     string   `json:"sellerName"`
	SellerPhone    string   `json:"sellerPhone,omitempty"`
	SellerEmail    string   `json:"sellerEmail,omitempty"`
	SellerLocation string   `json:"sellerLocation,omitempty"`
	SellerImage    string   `json:"sellerImage,omitempty"`
}
