package models

import "time"

type BlockRoom struct {
	RoomID    string     `json:"room_id"`
	Customers []Customer `json:"customers"`
}

type BlockRequest struct {
	HotelID string      `json:"hotel_id"`
	Rooms   []BlockRoom `json:"rooms"`
}

type BlockResult struct {
	SessionID string        `json:"session_id"`
	StartDate *time.Time    `json:"start_date,omitempty"`
	EndDate   *time.Time    `json:"end_date,omitempty"`
	Hotel     BlockedHotel  `json:"hotel"`
	Payment   *Payment      `json:"payment,omitempty"`
	Rooms     []BlockedRoom `json:"rooms"`
}

type BlockedHotel struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Category string `json:"category"`
	ZoneCode string `json:"zone_code"`
}

type BlockedRoom struct {
	FareCode     string                   `json:"fare_code"`
	FareName     string                   `json:"fare_name"`
	Cancellation *CancellationRestriction `json:"cancellation_restrictions,omitempty"`
	Customers    []string                 `json:"customers"`
	Services     []RoomService            `json:"services"`
}

type Payment struct {
	TotalAmount float64    `json:"total_amount"`
	LimitDate   *time.Time `json:"limit_date,omitempty"`
}

type Passenger struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Surname    string     `json:"surname"`
	SecondName string     `json:"second_surname,omitempty"`
	Birthdate  *time.Time `json:"birthdate,omitempty"`
	Passport   string     `json:"passport,omitempty"`
}

type Contact struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

type ReserveRequest struct {
	Passengers      []Passenger `json:"passengers"`
	Contact         Contact     `json:"contact"`
	AgencyReference string      `json:"agency_reference,omitempty"`
	Notes           string      `json:"notes,omitempty"`
}

type Reservation struct {
	Locator                 string       `json:"locator"`
	Status                  string       `json:"status"`
	StartDate               *time.Time   `json:"start_date,omitempty"`
	EndDate                 *time.Time   `json:"end_date,omitempty"`
	Currency                string       `json:"currency"`
	TotalAmount             float64      `json:"total_amount"`
	CommissionableAmount    float64      `json:"commissionable_amount"`
	NonCommissionableAmount float64      `json:"non_commissionable_amount"`
	Passengers              []Passenger  `json:"passengers"`
	Rooms                   []BookedRoom `json:"rooms"`
	Contact                 *Contact     `json:"contact,omitempty"`
	Payment                 *Payment     `json:"payment,omitempty"`
	Notes                   []string     `json:"notes"`
	// Cancellation is only set on reservations read back from the ledger.
	Cancellation *Cancellation `json:"cancellation,omitempty"`
}

type BookedRoom struct {
	Locator      string                   `json:"locator"`
	HotelCode    string                   `json:"hotel_code"`
	HotelName    string                   `json:"hotel_name"`
	Category     string                   `json:"category"`
	StartDate    *time.Time               `json:"start_date,omitempty"`
	EndDate      *time.Time               `json:"end_date,omitempty"`
	FareCode     string                   `json:"fare_code"`
	FareName     string                   `json:"fare_name"`
	Amount       float64                  `json:"amount"`
	Cancellation *CancellationRestriction `json:"cancellation_restrictions,omitempty"`
	Customers    []string                 `json:"customers"`
	Services     []RoomService            `json:"services"`
}

type ReservationFilter struct {
	Limit    int
	Page     int
	From     *time.Time
	To       *time.Time
	Name     string
	Surname  string
	Passport string
}

type ReservationList struct {
	Total        int                  `json:"total"`
	Reservations []ReservationSummary `json:"reservations"`
}

type ReservationSummary struct {
	Locator   string     `json:"locator"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Name      string     `json:"name"`
	Surname   string     `json:"surname"`
	Currency  string     `json:"currency"`
	Total     float64    `json:"total_amount"`
}

type Cancellation struct {
	Locator     string     `json:"locator"`
	Currency    string     `json:"currency"`
	Amount      float64    `json:"amount"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}
