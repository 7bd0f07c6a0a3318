package mappers

import (
	"encoding/xml"
	"testing"

	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/dto"
)

func TestToBlockResult(t *testing.T) {
	var resp dto.BlockResponse
	body := `
<BloqueoServicioRespuesta>
  <resser>
    <fecini>01/06/2024</fecini>
    <fecfin>05/06/2024</fecfin>
    <nomser>Hotel Uno</nomser>
    <codsca>4*</codsca>
    <codzge>ABC</codzge>
    <codser>H1</codser>
    <estsmo>
      <codtrf>BAR</codtrf>
      <nomtrf>Best rate</nomtrf>
      <estpas><pasid>1</pasid><pasid>2</pasid></estpas>
      <notser><refnot>ROOM</refnot><txtinf>Double room</txtinf></notser>
    </estsmo>
  </resser>
  <infrsr><infrpg><inffpg><imptot>402.00</imptot><fecpag>20/05/2024</fecpag></inffpg></infrpg></infrsr>
</BloqueoServicioRespuesta>`
	if err := xml.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal block: %v", err)
	}

	result, err := ToBlockResult(resp)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Hotel.Code != "H1" || result.Hotel.ZoneCode != "ABC" {
		t.Fatalf("unexpected hotel: %+v", result.Hotel)
	}
	if result.StartDate == nil || result.StartDate.Format(DateLayout) != "01/06/2024" {
		t.Fatalf("unexpected start date: %v", result.StartDate)
	}
	if result.Payment == nil || result.Payment.TotalAmount != 402 {
		t.Fatalf("unexpected payment: %+v", result.Payment)
	}
	if len(result.Rooms) != 1 || len(result.Rooms[0].Customers) != 2 {
		t.Fatalf("unexpected rooms: %+v", result.Rooms)
	}
	if len(result.Rooms[0].Services) != 1 || result.Rooms[0].Services[0].Reference != "ROOM" {
		t.Fatalf("expected block notes kept as services, got %+v", result.Rooms[0].Services)
	}
}

func TestToReservation(t *testing.T) {
	var resp dto.ReserveResponse
	body := `
<ReservaCerrarRespuesta>
  <locata>LOC123</locata>
  <sitres>OK</sitres>
  <fecini>01/06/2024</fecini>
  <fecfin>05/06/2024</fecfin>
  <coddiv>EUR</coddiv>
  <imptot>402.00</imptot>
  <infpas id="1"><nombre>Ana</nombre><priape>Lopez</priape><fecnac>02/01/1990</fecnac></infpas>
  <resser>
    <locser>S1</locser>
    <codser>H1</codser>
    <imptot>402.00</imptot>
    <estpas><pasid>1</pasid></estpas>
  </resser>
  <percon><nombre>Ana</nombre><priape>Lopez</priape><email>ana@example.com</email></percon>
  <obsres>Late arrival</obsres>
</ReservaCerrarRespuesta>`
	if err := xml.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal reservation: %v", err)
	}

	reservation, err := ToReservation(resp.ReservationPayload)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if reservation.Locator != "LOC123" || reservation.Currency != "EUR" || reservation.TotalAmount != 402 {
		t.Fatalf("unexpected reservation: %+v", reservation)
	}
	if len(reservation.Passengers) != 1 || reservation.Passengers[0].Birthdate == nil {
		t.Fatalf("unexpected passengers: %+v", reservation.Passengers)
	}
	if len(reservation.Rooms) != 1 || reservation.Rooms[0].Locator != "S1" {
		t.Fatalf("unexpected rooms: %+v", reservation.Rooms)
	}
	if reservation.Contact == nil || reservation.Contact.Email != "ana@example.com" {
		t.Fatalf("unexpected contact: %+v", reservation.Contact)
	}
	if reservation.Payment != nil {
		t.Fatalf("expected no payment, got %+v", reservation.Payment)
	}
	if len(reservation.Notes) != 1 {
		t.Fatalf("unexpected notes: %v", reservation.Notes)
	}
}

func TestToReservationList_TotalFallsBackToEntries(t *testing.T) {
	var resp dto.ReservationListResponse
	body := `
<ReservaListarRespuesta>
  <estres><locata>A</locata><fecini>01/06/2024</fecini><imptot>10</imptot></estres>
  <estres><locata>B</locata></estres>
</ReservaListarRespuesta>`
	if err := xml.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}

	list, err := ToReservationList(resp)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if list.Total != 2 || len(list.Reservations) != 2 {
		t.Fatalf("unexpected list: %+v", list)
	}
	if list.Reservations[0].Total != 10 || list.Reservations[1].StartDate != nil {
		t.Fatalf("unexpected entries: %+v", list.Reservations)
	}
}

func TestToCancellation(t *testing.T) {
	cancellation, err := ToCancellation(dto.ReservationCancelResponse{Locator: "LOC", Currency: "EUR", Amount: "25.5"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cancellation.Locator != "LOC" || cancellation.Amount != 25.5 {
		t.Fatalf("unexpected cancellation: %+v", cancellation)
	}

	if _, err := ToCancellation(dto.ReservationCancelResponse{ErrorFields: dto.ErrorFields{Code: "41", Text: "Not found"}}); err == nil {
		t.Fatal("expected provider error")
	}
}

func TestToHotelInfo(t *testing.T) {
	var resp dto.HotelInfoResponse
	body := `
<InformacionServicioRespuesta>
  <servic>
    <codser>H1</codser>
    <nomser>Hotel Uno</nomser>
    <latitu>40.4168</latitu>
    <longit>-3.7038</longit>
    <codcas>POOL</codcas>
    <codcas>WIFI</codcas>
  </servic>
</InformacionServicioRespuesta>`
	if err := xml.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal hotel info: %v", err)
	}

	hotels, err := ToHotelInfo(resp)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(hotels) != 1 || hotels[0].Latitude != 40.4168 || hotels[0].Longitude != -3.7038 {
		t.Fatalf("unexpected hotels: %+v", hotels)
	}
	if len(hotels[0].Services) != 2 {
		t.Fatalf("unexpected services: %v", hotels[0].Services)
	}
}
