package dto

import "encoding/xml"

type AvailabilityRequest struct {
	XMLName       xml.Name            `xml:"DisponibilidadHotelPeticion"`
	SessionID     string              `xml:"ideses"`
	TourOperator  string              `xml:"codtou"`
	StartDate     string              `xml:"fecini"`
	EndDate       string              `xml:"fecfin"`
	ZoneCode      string              `xml:"codzge"`
	CheckSchema   string              `xml:"chkscm"`
	Distributions []DistributionEntry `xml:"distri"`
	Currency      string              `xml:"coddiv"`
}

type DistributionEntry struct {
	ID        int   `xml:"id,attr"`
	Units     int   `xml:"numuni"`
	Adults    int   `xml:"numadl"`
	Children  int   `xml:"numnin"`
	ChildAges []int `xml:"edanin,omitempty"`
}

type AvailabilityResponse struct {
	XMLName xml.Name `xml:"DisponibilidadHotelRespuesta"`
	ErrorFields
	Hotels []HotelOffer `xml:"infhot"`
}

type HotelOffer struct {
	ID       string      `xml:"id,attr"`
	Code     string      `xml:"codser"`
	Name     string      `xml:"nomser"`
	Category string      `xml:"codsca"`
	Services []string    `xml:"codcas"`
	Rooms    []RoomOffer `xml:"infhab"`
}

type RoomOffer struct {
	ID                string             `xml:"id,attr"`
	DistributionRef   string             `xml:"refdis,attr"`
	Status            string             `xml:"cupest"`
	MinPeople         string             `xml:"capmin"`
	MaxPeople         string             `xml:"capmax"`
	AdultsMax         string             `xml:"adlmax"`
	ChildrenMax       string             `xml:"ninmax"`
	BaseAmount        string             `xml:"impbas"`
	IVAAmount         string             `xml:"impiva"`
	TaxAmount         string             `xml:"imptax"`
	Commissionable    string             `xml:"impcom"`
	NonCommissionable string             `xml:"impnoc"`
	FareCode          string             `xml:"codtrf"`
	FareName          string             `xml:"nomtrf"`
	Notes             []Note             `xml:"notser"`
	Cancellation      *CancellationBlock `xml:"rstcan"`
}
