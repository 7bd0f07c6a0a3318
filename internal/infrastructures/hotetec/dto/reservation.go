package dto

import "encoding/xml"

type ReserveRequest struct {
	XMLName         xml.Name        `xml:"ReservaCerrarPeticion"`
	SessionID       string          `xml:"ideses"`
	Passengers      []PassengerInfo `xml:"infpas"`
	Contact         ContactInfo     `xml:"percon"`
	AgencyReference string          `xml:"refage,omitempty"`
	Notes           string          `xml:"notser,omitempty"`
}

type PassengerInfo struct {
	ID            string `xml:"id,attr"`
	Name          string `xml:"nombre"`
	Surname       string `xml:"priape"`
	SecondSurname string `xml:"segape,omitempty"`
	Birthdate     string `xml:"fecnac"`
	Passport      string `xml:"pasapt,omitempty"`
}

type ContactInfo struct {
	Name    string `xml:"nombre"`
	Surname string `xml:"priape"`
	Email   string `xml:"email,omitempty"`
	Phone   string `xml:"telefo,omitempty"`
}

func (c *ContactInfo) IsZero() bool {
	return c == nil || (c.Name == "" && c.Surname == "" && c.Email == "" && c.Phone == "")
}

// ReservationPayload is the full reservation shared by the close and open
// responses.
type ReservationPayload struct {
	ErrorFields
	Locator           string          `xml:"locata"`
	Status            string          `xml:"sitres"`
	StartDate         string          `xml:"fecini"`
	EndDate           string          `xml:"fecfin"`
	Currency          string          `xml:"coddiv"`
	Total             string          `xml:"imptot"`
	Commissionable    string          `xml:"impcom"`
	NonCommissionable string          `xml:"impnoc"`
	Passengers        []PassengerInfo `xml:"infpas"`
	Services          []BookedService `xml:"resser"`
	Contact           *ContactInfo    `xml:"percon"`
	Payment           *PaymentTerms   `xml:"infrsr>infrpg>inffpg"`
	Notes             []string        `xml:"obsres"`
}

type BookedService struct {
	Locator      string             `xml:"locser"`
	Code         string             `xml:"codser"`
	Name         string             `xml:"nomser"`
	Category     string             `xml:"codsca"`
	StartDate    string             `xml:"fecini"`
	EndDate      string             `xml:"fecfin"`
	FareCode     string             `xml:"codtrf"`
	FareName     string             `xml:"nomtrf"`
	Amount       string             `xml:"imptot"`
	Cancellation *CancellationBlock `xml:"rstcan"`
	PassengerIDs []string           `xml:"estpas>pasid"`
	Notes        []Note             `xml:"notser"`
}

type ReserveResponse struct {
	XMLName xml.Name `xml:"ReservaCerrarRespuesta"`
	ReservationPayload
}

type ReservationOpenRequest struct {
	XMLName   xml.Name `xml:"ReservaAbrirPeticion"`
	SessionID string   `xml:"ideses"`
	Locator   string   `xml:"locata"`
}

type ReservationOpenResponse struct {
	XMLName xml.Name `xml:"ReservaAbrirRespuesta"`
	ReservationPayload
}

type ReservationListRequest struct {
	XMLName   xml.Name `xml:"ReservaListarPeticion"`
	SessionID string   `xml:"ideses"`
	Limit     int      `xml:"numrst,omitempty"`
	Page      int      `xml:"indpag,omitempty"`
	StartDate string   `xml:"fecini,omitempty"`
	EndDate   string   `xml:"fecfin,omitempty"`
	Name      string   `xml:"nombre,omitempty"`
	Surname   string   `xml:"priape,omitempty"`
	Passport  string   `xml:"pasapt,omitempty"`
}

type ReservationListResponse struct {
	XMLName xml.Name `xml:"ReservaListarRespuesta"`
	ErrorFields
	Total        string             `xml:"numtot"`
	Reservations []ReservationEntry `xml:"estres"`
}

type ReservationEntry struct {
	Locator   string `xml:"locata"`
	Status    string `xml:"sitres"`
	StartDate string `xml:"fecini"`
	EndDate   string `xml:"fecfin"`
	CreatedAt string `xml:"feccre"`
	Name      string `xml:"nombre"`
	Surname   string `xml:"priape"`
	Currency  string `xml:"coddiv"`
	Total     string `xml:"imptot"`
}

type ReservationCancelRequest struct {
	XMLName   xml.Name `xml:"ReservaCancelarPeticion"`
	SessionID string   `xml:"ideses"`
	Locator   string   `xml:"locata"`
}

type ReservationCancelResponse struct {
	XMLName xml.Name `xml:"ReservaCancelarRespuesta"`
	ErrorFields
	Locator  string `xml:"locata"`
	Currency string `xml:"coddiv"`
	Amount   string `xml:"impcan"`
}
