package dto

import "encoding/xml"

type SessionOpenRequest struct {
	XMLName    xml.Name `xml:"SesionAbrirPeticion"`
	SystemCode string   `xml:"codsys"`
	AgencyCode string   `xml:"codage"`
	Username   string   `xml:"idtusu"`
	Password   string   `xml:"pasusu"`
	Language   string   `xml:"codidi"`
}

type SessionOpenResponse struct {
	XMLName xml.Name `xml:"SesionAbrirRespuesta"`
	ErrorFields
	SessionID string `xml:"ideses"`
}
