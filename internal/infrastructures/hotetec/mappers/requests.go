package mappers

import (
	"strings"

	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"github.com/ozzus/hotetec-gateway/internal/domain/models"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/dto"
)

const (
	TourOperator    = "HTI"
	checkSchema     = "S"
	blockActionAdd  = "A"
	DefaultCurrency = "USD"
)

func ToSessionOpenRequest(cfg models.SessionConfig) dto.SessionOpenRequest {
	return dto.SessionOpenRequest{
		SystemCode: cfg.SystemCode,
		AgencyCode: cfg.AgencyCode,
		Username:   cfg.Username,
		Password:   cfg.Password,
		Language:   strings.ToUpper(strings.TrimSpace(cfg.Language)),
	}
}

func ToAvailabilityRequest(token string, query models.AvailabilityQuery, currency string) (dto.AvailabilityRequest, error) {
	if query.StartDate.IsZero() || query.EndDate.IsZero() {
		return dto.AvailabilityRequest{}, derr.InvalidRequest("start and end dates are required")
	}
	if query.EndDate.Before(query.StartDate) {
		return dto.AvailabilityRequest{}, derr.InvalidRequest("end date %s is before start date %s", FormatDate(query.EndDate), FormatDate(query.StartDate))
	}
	if strings.TrimSpace(query.ZoneCode) == "" {
		return dto.AvailabilityRequest{}, derr.InvalidRequest("zone code is required")
	}
	if len(query.Distributions) == 0 {
		return dto.AvailabilityRequest{}, derr.InvalidRequest("at least one distribution is required")
	}

	if query.Currency != "" {
		currency = query.Currency
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	distributions := make([]dto.DistributionEntry, 0, len(query.Distributions))
	for i, d := range query.Distributions {
		if d.Adults < 0 || d.Children < 0 {
			return dto.AvailabilityRequest{}, derr.InvalidRequest("distribution %d has negative occupancy", i+1)
		}
		if len(d.ChildAges) > 0 && len(d.ChildAges) != d.Children {
			return dto.AvailabilityRequest{}, derr.InvalidRequest("distribution %d has %d child ages for %d children", i+1, len(d.ChildAges), d.Children)
		}
		for _, age := range d.ChildAges {
			if age < 0 {
				return dto.AvailabilityRequest{}, derr.InvalidRequest("distribution %d has a negative child age", i+1)
			}
		}
		entry := dto.DistributionEntry{
			ID:       i + 1,
			Units:    1,
			Adults:   d.Adults,
			Children: d.Children,
		}
		if len(d.ChildAges) > 0 {
			entry.ChildAges = append([]int(nil), d.ChildAges...)
		}
		distributions = append(distributions, entry)
	}

	return dto.AvailabilityRequest{
		SessionID:     token,
		TourOperator:  TourOperator,
		StartDate:     FormatDate(query.StartDate),
		EndDate:       FormatDate(query.EndDate),
		ZoneCode:      strings.TrimSpace(query.ZoneCode),
		CheckSchema:   checkSchema,
		Distributions: distributions,
		Currency:      strings.ToUpper(currency),
	}, nil
}

func ToBlockRequest(token string, req models.BlockRequest) (dto.BlockRequest, error) {
	if strings.TrimSpace(req.HotelID) == "" {
		return dto.BlockRequest{}, derr.InvalidRequest("hotel id is required")
	}
	if len(req.Rooms) == 0 {
		return dto.BlockRequest{}, derr.InvalidRequest("at least one room is required")
	}

	groups := dto.PassengerGroups{
		Adults:   []dto.BlockPassenger{},
		Children: []dto.BlockPassenger{},
	}
	rooms := make([]dto.BlockRoom, 0, len(req.Rooms))

	for _, room := range req.Rooms {
		ids := make([]string, 0, len(room.Customers))
		for _, customer := range room.Customers {
			if strings.TrimSpace(customer.ID) == "" {
				return dto.BlockRequest{}, derr.InvalidRequest("room %q has a customer without id", room.RoomID)
			}
			entry := dto.BlockPassenger{
				ID:        customer.ID,
				Birthdate: FormatDate(customer.Birthdate),
			}
			switch customer.Type {
			case models.CustomerAdult:
				groups.Adults = append(groups.Adults, entry)
			case models.CustomerChild:
				groups.Children = append(groups.Children, entry)
			default:
				return dto.BlockRequest{}, derr.InvalidRequest("customer %q has unknown type", customer.ID)
			}
			ids = append(ids, customer.ID)
		}

		rooms = append(rooms, dto.BlockRoom{
			ID:           room.RoomID,
			PassengerIDs: ids,
			Units:        1,
		})
	}

	return dto.BlockRequest{
		SessionID:    token,
		TourOperator: TourOperator,
		Passengers:   groups,
		Service: dto.BlockService{
			ID:    req.HotelID,
			Rooms: rooms,
		},
		Action: blockActionAdd,
	}, nil
}

func ToReserveRequest(token string, req models.ReserveRequest) (dto.ReserveRequest, error) {
	if len(req.Passengers) == 0 {
		return dto.ReserveRequest{}, derr.InvalidRequest("at least one passenger is required")
	}

	passengers := make([]dto.PassengerInfo, 0, len(req.Passengers))
	for i, p := range req.Passengers {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return dto.ReserveRequest{}, derr.InvalidRequest("passenger %d has no id", i+1)
		}
		passengers = append(passengers, dto.PassengerInfo{
			ID:            id,
			Name:          p.Name,
			Surname:       p.Surname,
			SecondSurname: p.SecondName,
			Birthdate:     formatOptionalDate(p.Birthdate),
			Passport:      p.Passport,
		})
	}

	return dto.ReserveRequest{
		SessionID:  token,
		Passengers: passengers,
		Contact: dto.ContactInfo{
			Name:    req.Contact.Name,
			Surname: req.Contact.Surname,
			Email:   req.Contact.Email,
			Phone:   req.Contact.Phone,
		},
		AgencyReference: strings.TrimSpace(req.AgencyReference),
		Notes:           strings.TrimSpace(req.Notes),
	}, nil
}

// ToReservationListRequest only sets the filters the caller supplied; empty
// values are left out of the envelope.
func ToReservationListRequest(token string, filter models.ReservationFilter) dto.ReservationListRequest {
	req := dto.ReservationListRequest{
		SessionID: token,
		StartDate: formatOptionalDate(filter.From),
		EndDate:   formatOptionalDate(filter.To),
		Name:      strings.TrimSpace(filter.Name),
		Surname:   strings.TrimSpace(filter.Surname),
		Passport:  strings.TrimSpace(filter.Passport),
	}
	if filter.Limit > 0 {
		req.Limit = filter.Limit
	}
	if filter.Page > 0 {
		req.Page = filter.Page
	}
	return req
}

func ToReservationOpenRequest(token, locator string) (dto.ReservationOpenRequest, error) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return dto.ReservationOpenRequest{}, derr.InvalidRequest("locator is required")
	}
	return dto.ReservationOpenRequest{SessionID: token, Locator: locator}, nil
}

func ToReservationCancelRequest(token, locator string) (dto.ReservationCancelRequest, error) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return dto.ReservationCancelRequest{}, derr.InvalidRequest("locator is required")
	}
	return dto.ReservationCancelRequest{SessionID: token, Locator: locator}, nil
}

func ToHotelInfoRequest(token string, query models.HotelInfoQuery) (dto.HotelInfoRequest, error) {
	zone := strings.TrimSpace(query.ZoneCode)
	code := strings.TrimSpace(query.HotelCode)
	switch {
	case zone == "" && code == "":
		return dto.HotelInfoRequest{}, derr.InvalidRequest("zone code or hotel code is required")
	case zone != "" && code != "":
		return dto.HotelInfoRequest{}, derr.InvalidRequest("zone code and hotel code are mutually exclusive")
	}

	return dto.HotelInfoRequest{
		SessionID:    token,
		TourOperator: TourOperator,
		ZoneCode:     zone,
		HotelCode:    code,
	}, nil
}
