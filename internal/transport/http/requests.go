package http

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	derr "github.com/ozzus/hotetec-gateway/internal/domain/errors"
	"github.com/ozzus/hotetec-gateway/internal/domain/models"
)

const isoDate = "2006-01-02"

type availabilityRequest struct {
	StartDate     string                `json:"start_date"`
	EndDate       string                `json:"end_date"`
	ZoneCode      string                `json:"zone_code"`
	Currency      string                `json:"currency"`
	Distributions []models.Distribution `json:"distributions"`
}

func (r availabilityRequest) toQuery() (models.AvailabilityQuery, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return models.AvailabilityQuery{}, err
	}
	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return models.AvailabilityQuery{}, err
	}

	return models.AvailabilityQuery{
		StartDate:     start,
		EndDate:       end,
		ZoneCode:      r.ZoneCode,
		Distributions: r.Distributions,
		Currency:      r.Currency,
	}, nil
}

type blockRequest struct {
	HotelID string `json:"hotel_id"`
	Rooms   []struct {
		RoomID    string `json:"room_id"`
		Customers []struct {
			ID        string `json:"id"`
			Type      string `json:"customer_type"`
			Birthdate string `json:"birthdate"`
		} `json:"customers"`
	} `json:"rooms"`
}

func (r blockRequest) toModel() (models.BlockRequest, error) {
	req := models.BlockRequest{
		HotelID: r.HotelID,
		Rooms:   make([]models.BlockRoom, 0, len(r.Rooms)),
	}

	for i, room := range r.Rooms {
		customers := make([]models.Customer, 0, len(room.Customers))
		for j, c := range room.Customers {
			customerType, err := models.ParseCustomerType(c.Type)
			if err != nil {
				return models.BlockRequest{}, derr.InvalidRequest("rooms[%d].customers[%d]: %v", i, j, err)
			}
			birthdate, err := parseDate("birthdate", c.Birthdate)
			if err != nil {
				return models.BlockRequest{}, err
			}
			customers = append(customers, models.Customer{ID: c.ID, Type: customerType, Birthdate: birthdate})
		}
		req.Rooms = append(req.Rooms, models.BlockRoom{RoomID: room.RoomID, Customers: customers})
	}

	return req, nil
}

type reserveRequest struct {
	Passengers []struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Surname    string `json:"surname"`
		SecondName string `json:"second_name"`
		Birthdate  string `json:"birthdate"`
		Passport   string `json:"passport"`
	} `json:"passengers"`
	Contact         models.Contact `json:"contact"`
	AgencyReference string         `json:"agency_reference"`
	Notes           string         `json:"notes"`
}

func (r reserveRequest) toModel() (models.ReserveRequest, error) {
	req := models.ReserveRequest{
		Passengers:      make([]models.Passenger, 0, len(r.Passengers)),
		Contact:         r.Contact,
		AgencyReference: r.AgencyReference,
		Notes:           r.Notes,
	}

	for _, p := range r.Passengers {
		birthdate, err := parseOptionalDate("birthdate", p.Birthdate)
		if err != nil {
			return models.ReserveRequest{}, err
		}
		req.Passengers = append(req.Passengers, models.Passenger{
			ID:         p.ID,
			Name:       p.Name,
			Surname:    p.Surname,
			SecondName: p.SecondName,
			Birthdate:  birthdate,
			Passport:   p.Passport,
		})
	}

	return req, nil
}

func reservationFilterFromQuery(values url.Values) (models.ReservationFilter, error) {
	var (
		filter models.ReservationFilter
		err    error
	)

	if filter.Limit, err = parseNonNegative("limit", values.Get("limit")); err != nil {
		return models.ReservationFilter{}, err
	}
	if filter.Page, err = parseNonNegative("page", values.Get("page")); err != nil {
		return models.ReservationFilter{}, err
	}
	if filter.From, err = parseOptionalDate("from", values.Get("from")); err != nil {
		return models.ReservationFilter{}, err
	}
	if filter.To, err = parseOptionalDate("to", values.Get("to")); err != nil {
		return models.ReservationFilter{}, err
	}
	filter.Name = values.Get("name")
	filter.Surname = values.Get("surname")
	filter.Passport = values.Get("passport")

	return filter, nil
}

func parseDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, derr.InvalidRequest("%s is required", field)
	}
	t, err := time.Parse(isoDate, value)
	if err != nil {
		return time.Time{}, derr.InvalidRequest("%s must be YYYY-MM-DD, got %q", field, value)
	}
	return t, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := parseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseNonNegative(field, value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, derr.InvalidRequest("%s must be a non-negative integer", field)
	}
	return n, nil
}
