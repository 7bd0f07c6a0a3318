package mappers

import (
	"strings"

	"github.com/ozzus/hotetec-gateway/internal/domain/models"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/dto"
)

func ToReservation(payload dto.ReservationPayload) (models.Reservation, error) {
	if err := CheckError(payload.ErrorFields); err != nil {
		return models.Reservation{}, err
	}

	var p fieldParser
	reservation := models.Reservation{
		Locator:                 strings.TrimSpace(payload.Locator),
		Status:                  payload.Status,
		StartDate:               p.day("fecini", payload.StartDate),
		EndDate:                 p.day("fecfin", payload.EndDate),
		Currency:                payload.Currency,
		TotalAmount:             p.decimal("imptot", payload.Total),
		CommissionableAmount:    p.decimal("impcom", payload.Commissionable),
		NonCommissionableAmount: p.decimal("impnoc", payload.NonCommissionable),
		Passengers:              make([]models.Passenger, 0, len(payload.Passengers)),
		Rooms:                   make([]models.BookedRoom, 0, len(payload.Services)),
		Notes:                   toStrings(payload.Notes),
	}
	if p.err != nil {
		return models.Reservation{}, p.err
	}

	for _, passenger := range payload.Passengers {
		birthdate, err := parseDate("fecnac", passenger.Birthdate)
		if err != nil {
			return models.Reservation{}, err
		}
		reservation.Passengers = append(reservation.Passengers, models.Passenger{
			ID:         passenger.ID,
			Name:       passenger.Name,
			Surname:    passenger.Surname,
			SecondName: passenger.SecondSurname,
			Birthdate:  birthdate,
			Passport:   passenger.Passport,
		})
	}

	for _, service := range payload.Services {
		room, err := toBookedRoom(service)
		if err != nil {
			return models.Reservation{}, err
		}
		reservation.Rooms = append(reservation.Rooms, room)
	}

	if !payload.Contact.IsZero() {
		reservation.Contact = &models.Contact{
			Name:    payload.Contact.Name,
			Surname: payload.Contact.Surname,
			Email:   payload.Contact.Email,
			Phone:   payload.Contact.Phone,
		}
	}

	payment, err := toPayment(payload.Payment)
	if err != nil {
		return models.Reservation{}, err
	}
	reservation.Payment = payment

	return reservation, nil
}

func toBookedRoom(service dto.BookedService) (models.BookedRoom, error) {
	var p fieldParser
	room := models.BookedRoom{
		Locator:   service.Locator,
		HotelCode: service.Code,
		HotelName: service.Name,
		Category:  service.Category,
		StartDate: p.day("fecini", service.StartDate),
		EndDate:   p.day("fecfin", service.EndDate),
		FareCode:  service.FareCode,
		FareName:  service.FareName,
		Amount:    p.decimal("imptot", service.Amount),
		Customers: toStrings(service.PassengerIDs),
		Services:  toServices(service.Notes),
	}
	if p.err != nil {
		return models.BookedRoom{}, p.err
	}

	cancellation, err := toCancellation(service.Cancellation)
	if err != nil {
		return models.BookedRoom{}, err
	}
	room.Cancellation = cancellation

	return room, nil
}

func ToReservationList(resp dto.ReservationListResponse) (models.ReservationList, error) {
	if err := CheckError(resp.ErrorFields); err != nil {
		return models.ReservationList{}, err
	}

	var p fieldParser
	list := models.ReservationList{
		Reservations: make([]models.ReservationSummary, 0, len(resp.Reservations)),
	}
	for _, entry := range resp.Reservations {
		list.Reservations = append(list.Reservations, models.ReservationSummary{
			Locator:   entry.Locator,
			Status:    entry.Status,
			StartDate: p.day("fecini", entry.StartDate),
			EndDate:   p.day("fecfin", entry.EndDate),
			CreatedAt: p.day("feccre", entry.CreatedAt),
			Name:      entry.Name,
			Surname:   entry.Surname,
			Currency:  entry.Currency,
			Total:     p.decimal("imptot", entry.Total),
		})
	}
	list.Total = p.integer("numtot", resp.Total)
	if p.err != nil {
		return models.ReservationList{}, p.err
	}
	if strings.TrimSpace(resp.Total) == "" {
		list.Total = len(list.Reservations)
	}

	return list, nil
}

func ToCancellation(resp dto.ReservationCancelResponse) (models.Cancellation, error) {
	if err := CheckError(resp.ErrorFields); err != nil {
		return models.Cancellation{}, err
	}

	amount, err := parseFloat("impcan", resp.Amount)
	if err != nil {
		return models.Cancellation{}, err
	}

	return models.Cancellation{
		Locator:  strings.TrimSpace(resp.Locator),
		Currency: resp.Currency,
		Amount:   amount,
	}, nil
}
