package dto

import "encoding/xml"

type BlockRequest struct {
	XMLName      xml.Name        `xml:"BloqueoServicioPeticion"`
	SessionID    string          `xml:"ideses"`
	TourOperator string          `xml:"codtou"`
	Passengers   PassengerGroups `xml:"pasage"`
	Service      BlockService    `xml:"bloser"`
	Action       string          `xml:"accion"`
}

type PassengerGroups struct {
	Adults   []BlockPassenger `xml:"adl"`
	Children []BlockPassenger `xml:"nin"`
}

type BlockPassenger struct {
	ID        string `xml:"id,attr"`
	Birthdate string `xml:"fecnac"`
}

type BlockService struct {
	ID    string      `xml:"id,attr"`
	Rooms []BlockRoom `xml:"dissmo"`
}

type BlockRoom struct {
	ID           string   `xml:"id,attr"`
	PassengerIDs []string `xml:"pasid"`
	Units        int      `xml:"numuni"`
}

type BlockResponse struct {
	XMLName xml.Name `xml:"BloqueoServicioRespuesta"`
	ErrorFields
	Service *BlockedService `xml:"resser"`
	Payment *PaymentTerms   `xml:"infrsr>infrpg>inffpg"`
}

type BlockedService struct {
	StartDate string        `xml:"fecini"`
	EndDate   string        `xml:"fecfin"`
	Name      string        `xml:"nomser"`
	Category  string        `xml:"codsca"`
	ZoneCode  string        `xml:"codzge"`
	Code      string        `xml:"codser"`
	Rooms     []BlockedRoom `xml:"estsmo"`
}

type BlockedRoom struct {
	FareCode     string             `xml:"codtrf"`
	FareName     string             `xml:"nomtrf"`
	Cancellation *CancellationBlock `xml:"rstcan"`
	PassengerIDs []string           `xml:"estpas>pasid"`
	Notes        []Note             `xml:"notser"`
}
