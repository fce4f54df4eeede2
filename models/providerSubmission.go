package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var errNegativePrice = errors.New("service price must not be negative")

// ProviderSubmission is the add-service-provider form as posted by a visitor.
type ProviderSubmission struct {
	Name        string `form:"name" binding:"required,max=120"`
	Email       string `form:"email" binding:"required,email"`
	Phone       string `form:"phone" binding:"required,max=32"`
	ServiceType string `form:"serviceType" binding:"required,max=64"`
	Description string `form:"description" binding:"required,max=2000"`
	Address     string `form:"address" binding:"required"`
	City        string `form:"city" binding:"required"`
	State       string `form:"state" binding:"required"`
	ZipCode     string `form:"zipCode" binding:"required"`

	// Optional first service offering.
	ServiceName        string `form:"serviceName"`
	ServiceDescription string `form:"serviceDescription"`
	ServicePrice       string `form:"servicePrice"`
	ServiceDuration    int    `form:"serviceDuration" binding:"omitempty,min=0"`
}

// NewProviderRequest is the JSON body sent to the directory API on creation.
// It carries no ID, rating or verification flag; the backend owns those.
type NewProviderRequest struct {
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	ServiceType  string              `json:"serviceType"`
	Description  string              `json:"description"`
	Address      string              `json:"address"`
	City         string              `json:"city"`
	State        string              `json:"state"`
	ZipCode      string              `json:"zipCode"`
	WorkingHours []WorkingHoursEntry `json:"workingHours"`
	Services     []ServiceOffering   `json:"services"`
}

// DefaultWorkingHours is the week a new provider starts with.
func DefaultWorkingHours() []WorkingHoursEntry {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	hours := make([]WorkingHoursEntry, 0, len(days))
	for _, day := range days {
		open := day != "Saturday" && day != "Sunday"
		hours = append(hours, WorkingHoursEntry{Day: day, Open: "09:00", Close: "17:00", IsOpen: open})
	}
	return hours
}

// ToRequest trims the submission and builds the creation payload.
// An invalid service price is reported as an error.
func (s ProviderSubmission) ToRequest() (NewProviderRequest, error) {
	req := NewProviderRequest{
		Name:         strings.TrimSpace(s.Name),
		Email:        strings.TrimSpace(s.Email),
		Phone:        strings.TrimSpace(s.Phone),
		ServiceType:  strings.TrimSpace(s.ServiceType),
		Description:  strings.TrimSpace(s.Description),
		Address:      strings.TrimSpace(s.Address),
		City:         strings.TrimSpace(s.City),
		State:        strings.TrimSpace(s.State),
		ZipCode:      strings.TrimSpace(s.ZipCode),
		WorkingHours: DefaultWorkingHours(),
		Services:     []ServiceOffering{},
	}

	name := strings.TrimSpace(s.ServiceName)
	if name == "" {
		return req, nil
	}
	price := decimal.Zero
	if raw := strings.TrimSpace(s.ServicePrice); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			return req, err
		}
		if p.IsNegative() {
			return req, errNegativePrice
		}
		price = p
	}
	req.Services = append(req.Services, ServiceOffering{
		Name:        name,
		Description: strings.TrimSpace(s.ServiceDescription),
		Price:       price,
		Duration:    float64(s.ServiceDuration),
	})
	return req, nil
}
