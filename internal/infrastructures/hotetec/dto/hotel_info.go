package dto

import "encoding/xml"

type HotelInfoRequest struct {
	XMLName      xml.Name `xml:"InformacionServicioPeticion"`
	SessionID    string   `xml:"ideses"`
	TourOperator string   `xml:"codtou"`
	ZoneCode     string   `xml:"codzge,omitempty"`
	HotelCode    string   `xml:"codser,omitempty"`
}

type HotelInfoResponse struct {
	XMLName xml.Name `xml:"InformacionServicioRespuesta"`
	ErrorFields
	Hotels []HotelDetail `xml:"servic"`
}

type HotelDetail struct {
	Code        string   `xml:"codser"`
	Name        string   `xml:"nomser"`
	Category    string   `xml:"codsca"`
	ZoneCode    string   `xml:"codzge"`
	Address     string   `xml:"dirser"`
	City        string   `xml:"nompob"`
	PostalCode  string   `xml:"codpos"`
	Latitude    string   `xml:"latitu"`
	Longitude   string   `xml:"longit"`
	Description string   `xml:"desser"`
	Services    []string `xml:"codcas"`
}
