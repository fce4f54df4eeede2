package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceProvider_Display(t *testing.T) {
	p := ServiceProvider{Rating: 4.25, Address: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701"}
	assert.Equal(t, "4.2", p.FormatRating())
	assert.Equal(t, "Springfield, IL", p.Location())
	assert.Equal(t, "1 Main St, Springfield, IL 62701", p.FullAddress())

	assert.Equal(t, "0.0", ServiceProvider{}.FormatRating())
	assert.Equal(t, "", ServiceProvider{}.Location())
	assert.Equal(t, "Austin", ServiceProvider{City: "Austin"}.Location())
}

func TestWorkingHoursEntry_Display(t *testing.T) {
	assert.Equal(t, "09:00 - 17:00", WorkingHoursEntry{Day: "Monday", Open: "09:00", Close: "17:00", IsOpen: true}.Display())
	assert.Equal(t, "Closed", WorkingHoursEntry{Day: "Sunday", Open: "09:00", Close: "17:00"}.Display())
}

func TestReview_Display(t *testing.T) {
	r := Review{Rating: 3, CreatedAt: ReviewDate{Time: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}}
	assert.Equal(t, []bool{true, true, true, false, false}, r.Stars())
	assert.Equal(t, "Mar 1, 2024", r.DateDisplay())
	assert.Equal(t, "", Review{}.DateDisplay())
}

func TestServiceOffering_Display(t *testing.T) {
	s := ServiceOffering{Price: decimal.RequireFromString("49.99"), Duration: 45}
	assert.Equal(t, "$49.99", s.PriceDisplay())
	assert.Equal(t, "45 min", s.DurationDisplay())
}

func TestReviewDate_JSON(t *testing.T) {
	var r Review
	require.NoError(t, json.Unmarshal([]byte(`{"rating": 5, "createdAt": "2024-03-01"}`), &r))
	assert.Equal(t, "Mar 1, 2024", r.DateDisplay())

	require.NoError(t, json.Unmarshal([]byte(`{"rating": 5, "createdAt": "soon"}`), &r))
	assert.Equal(t, "soon", r.DateDisplay())
	out, err := json.Marshal(r.CreatedAt)
	require.NoError(t, err)
	assert.Equal(t, `"soon"`, string(out))

	out, err = json.Marshal(ReviewDate{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestServiceOffering_FractionalDuration(t *testing.T) {
	assert.Equal(t, "30.5 min", ServiceOffering{Duration: 30.5}.DurationDisplay())
	assert.Equal(t, "60 min", ServiceOffering{Duration: 60}.DurationDisplay())
}

func TestDefaultWorkingHours(t *testing.T) {
	hours := DefaultWorkingHours()
	require.Len(t, hours, 7)
	assert.Equal(t, "Monday", hours[0].Day)
	assert.True(t, hours[4].IsOpen)
	assert.False(t, hours[5].IsOpen)
	assert.False(t, hours[6].IsOpen)
}

func TestProviderSubmission_ToRequest(t *testing.T) {
	s := ProviderSubmission{
		Name:            "  Ace Electric ",
		Email:           "ace@example.com",
		ServiceType:     "Electrical",
		ServiceName:     "Panel upgrade",
		ServicePrice:    "199.99",
		ServiceDuration: 90,
	}
	req, err := s.ToRequest()
	require.NoError(t, err)
	assert.Equal(t, "Ace Electric", req.Name)
	assert.Len(t, req.WorkingHours, 7)
	require.Len(t, req.Services, 1)
	assert.Equal(t, "Panel upgrade", req.Services[0].Name)
	assert.True(t, decimal.RequireFromString("199.99").Equal(req.Services[0].Price))
	assert.Equal(t, 90.0, req.Services[0].Duration)
}

func TestProviderSubmission_ToRequestWithoutService(t *testing.T) {
	req, err := ProviderSubmission{Name: "x", ServicePrice: "not used"}.ToRequest()
	require.NoError(t, err)
	assert.NotNil(t, req.Services)
	assert.Empty(t, req.Services)
}

func TestProviderSubmission_ToRequestRejectsBadPrice(t *testing.T) {
	_, err := ProviderSubmission{ServiceName: "x", ServicePrice: "cheap"}.ToRequest()
	assert.Error(t, err)

	_, err = ProviderSubmission{ServiceName: "x", ServicePrice: "-1"}.ToRequest()
	assert.ErrorIs(t, err, errNegativePrice)
}
