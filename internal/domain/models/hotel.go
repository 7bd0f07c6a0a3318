package models

import "time"

type AvailabilityQuery struct {
	StartDate     time.Time
	EndDate       time.Time
	ZoneCode      string
	Distributions []Distribution
	Currency      string
}

type AvailabilityResult struct {
	SessionID string  `json:"session_id"`
	Hotels    []Hotel `json:"availability"`
}

type Hotel struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Reference string   `json:"reference,omitempty"`
	Services  []string `json:"services"`
	// Availability groups room offers by the distribution reference they answer.
	Availability map[string][]Room `json:"availability"`
}

type Room struct {
	ID                      string                   `json:"room_id"`
	Distribution            string                   `json:"distribution"`
	MinPeople               int                      `json:"min_people"`
	MaxPeople               int                      `json:"max_people"`
	AdultsMax               int                      `json:"adults_max"`
	ChildrenMax             int                      `json:"children_max"`
	BaseAmount              float64                  `json:"base_amount"`
	IVAAmount               float64                  `json:"iva_amount"`
	TaxAmount               float64                  `json:"tax_amount"`
	CommissionableAmount    float64                  `json:"commissionable_amount"`
	NonCommissionableAmount float64                  `json:"non_commissionable_amount"`
	FareCode                string                   `json:"fare_code"`
	FareName                string                   `json:"fare_name"`
	Description             string                   `json:"description,omitempty"`
	CommercialName          string                   `json:"commercial_name,omitempty"`
	Services                []RoomService            `json:"services"`
	Cancellation            *CancellationRestriction `json:"cancellation_restrictions,omitempty"`
}

type RoomService struct {
	Reference string `json:"reference"`
	Name      string `json:"name"`
}

type CancellationRestriction struct {
	Date    *time.Time `json:"date,omitempty"`
	Percent float64    `json:"percent"`
	Amount  float64    `json:"amount"`
	Text    string     `json:"text,omitempty"`
}

type HotelInfoQuery struct {
	ZoneCode  string
	HotelCode string
}

// CacheKey returns the lookup key for the query, or "" when the query is empty.
func (q HotelInfoQuery) CacheKey() string {
	switch {
	case q.HotelCode != "":
		return "hotel:" + q.HotelCode
	case q.ZoneCode != "":
		return "zone:" + q.ZoneCode
	default:
		return ""
	}
}

type HotelInfo struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	ZoneCode    string   `json:"zone_code"`
	Address     string   `json:"address,omitempty"`
	City        string   `json:"city,omitempty"`
	PostalCode  string   `json:"postal_code,omitempty"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Description string   `json:"description,omitempty"`
	Services    []string `json:"services"`
}
