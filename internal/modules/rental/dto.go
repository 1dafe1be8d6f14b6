package rental

import "time"

// BookCarRequest is the inbound booking attempt. Dates are pointers so the
// pipeline can tell "missing" from "zero" and answer with the exact code.
type BookCarRequest struct {
	VIN              string     `json:"vin"`
	FromDate         *time.Time `json:"from_date"`
	ToDate           *time.Time `json:"to_date"`
	ForeignCountries []string   `json:"foreign_countries"`
}
