// File: models/serviceProvider.go
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ServiceProvider is one directory entry as served by the directory API.
// The list projection omits Reviews, WorkingHours and Services.
type ServiceProvider struct {
	ID           string              `json:"_id"`          // Assigned by the backend, never by this app.
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	ServiceType  string              `json:"serviceType"`  // Category tag, e.g. "Plumbing".
	Description  string              `json:"description"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	ZipCode      string              `json:"zipCode"`
	Rating       float64             `json:"rating"`       // 0-5, authoritative from the backend.
	IsVerified   bool                `json:"isVerified"`
	Reviews      []Review            `json:"reviews,omitempty"`
	WorkingHours []WorkingHoursEntry `json:"workingHours,omitempty"`
	Services     []ServiceOffering   `json:"services,omitempty"`
}

// Review is a single customer review attached to a provider.
type Review struct {
	UserID    string     `json:"userId"`
	Rating    int        `json:"rating"` // 1-5
	Comment   string     `json:"comment"`
	CreatedAt ReviewDate `json:"createdAt"`
}

// reviewDateLayouts are tried in order when decoding a review date.
var reviewDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly}

// ReviewDate is a review timestamp as sent by the directory API. Values
// that are not a recognised date are kept verbatim in Raw.
type ReviewDate struct {
	Time time.Time
	Raw  string
}

func (d *ReviewDate) UnmarshalJSON(data []byte) error {
	*d = ReviewDate{}
	if string(data) == "null" {
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		// Epoch milliseconds.
		var ms float64
		if json.Unmarshal(data, &ms) == nil {
			d.Time = time.UnixMilli(int64(ms)).UTC()
			return nil
		}
		d.Raw = string(data)
		return nil
	}
	text = strings.TrimSpace(text)
	for _, layout := range reviewDateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			d.Time = t
			return nil
		}
	}
	d.Raw = text
	return nil
}

func (d ReviewDate) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		if d.Raw == "" {
			return []byte("null"), nil
		}
		return json.Marshal(d.Raw)
	}
	return json.Marshal(d.Time)
}

type WorkingHoursEntry struct {
	Day    string `json:"day"`   // Weekday label, e.g. "Monday".
	Open   string `json:"open"`  // e.g. "09:00"
	Close  string `json:"close"` // e.g. "17:00"
	IsOpen bool   `json:"isOpen"`
}

type ServiceOffering struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Duration    float64         `json:"duration"` // Minutes.
}

// FormatRating renders the rating with one decimal of precision.
func (p ServiceProvider) FormatRating() string {
	return fmt.Sprintf("%.1f", p.Rating)
}

// Location returns "City, State".
func (p ServiceProvider) Location() string {
	return joinNonEmpty(", ", p.City, p.State)
}

// FullAddress returns "Address, City, State ZipCode".
func (p ServiceProvider) FullAddress() string {
	stateZip := joinNonEmpty(" ", p.State, p.ZipCode)
	return joinNonEmpty(", ", p.Address, p.City, stateZip)
}

// Display returns the opening hours, or "Closed" for days the provider is not open.
func (w WorkingHoursEntry) Display() string {
	if !w.IsOpen {
		return "Closed"
	}
	return w.Open + " - " + w.Close
}

// Stars returns five flags, true for each filled star.
func (r Review) Stars() []bool {
	stars := make([]bool, 5)
	for i := range stars {
		stars[i] = i < r.Rating
	}
	return stars
}

// DateDisplay formats the review date for the detail page. An unparsed
// date is shown as received.
func (r Review) DateDisplay() string {
	if r.CreatedAt.Time.IsZero() {
		return r.CreatedAt.Raw
	}
	return r.CreatedAt.Time.Format("Jan 2, 2006")
}

func (s ServiceOffering) PriceDisplay() string {
	return "$" + s.Price.String()
}

func (s ServiceOffering) DurationDisplay() string {
	return strconv.FormatFloat(s.Duration, 'f', -1, 64) + " min"
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
