package mappers

import (
	"strings"

	"github.com/ozzus/hotetec-gateway/internal/domain/models"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/dto"
)

const (
	// StatusAvailable is the provider's "available for sale" room status.
	StatusAvailable = "DS"

	noteRoomDescription = "ROOM"
	noteCommercialName  = "ROOM_COMMERCIALNAME"
)

func ToSessionToken(resp dto.SessionOpenResponse) (string, error) {
	if err := CheckError(resp.ErrorFields); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.SessionID), nil
}

func ToHotels(resp dto.AvailabilityResponse) ([]models.Hotel, error) {
	if err := CheckError(resp.ErrorFields); err != nil {
		return nil, err
	}

	hotels := make([]models.Hotel, 0, len(resp.Hotels))
	for _, offer := range resp.Hotels {
		availability := make(map[string][]models.Room)
		for _, room := range offer.Rooms {
			if room.ID == "" || room.DistributionRef == "" || room.Status != StatusAvailable {
				continue
			}
			mapped, err := toRoom(room)
			if err != nil {
				return nil, err
			}
			availability[room.DistributionRef] = append(availability[room.DistributionRef], mapped)
		}

		hotels = append(hotels, models.Hotel{
			Code:         offer.Code,
			Name:         offer.Name,
			Category:     offer.Category,
			Reference:    offer.ID,
			Services:     toStrings(offer.Services),
			Availability: availability,
		})
	}

	return hotels, nil
}

func toRoom(room dto.RoomOffer) (models.Room, error) {
	var p fieldParser
	mapped := models.Room{
		ID:                      room.ID,
		Distribution:            room.DistributionRef,
		MaxPeople:               p.integer("capmax", room.MaxPeople),
		MinPeople:               p.integer("capmin", room.MinPeople),
		AdultsMax:               p.integer("adlmax", room.AdultsMax),
		ChildrenMax:             p.integer("ninmax", room.ChildrenMax),
		BaseAmount:              p.decimal("impbas", room.BaseAmount),
		IVAAmount:               p.decimal("impiva", room.IVAAmount),
		TaxAmount:               p.decimal("imptax", room.TaxAmount),
		NonCommissionableAmount: p.decimal("impnoc", room.NonCommissionable),
		CommissionableAmount:    p.decimal("impcom", room.Commissionable),
		FareCode:                room.FareCode,
		FareName:                room.FareName,
	}
	if p.err != nil {
		return models.Room{}, p.err
	}

	mapped.Description, mapped.CommercialName, mapped.Services = splitNotes(room.Notes)

	cancellation, err := toCancellation(room.Cancellation)
	if err != nil {
		return models.Room{}, err
	}
	mapped.Cancellation = cancellation

	return mapped, nil
}

// splitNotes pulls the room description and commercial name out of the note
// list; every other note is an extra service.
func splitNotes(notes []dto.Note) (description, commercialName string, services []models.RoomService) {
	services = make([]models.RoomService, 0, len(notes))
	for _, note := range notes {
		switch note.Reference {
		case noteRoomDescription:
			description = note.Text
		case noteCommercialName:
			commercialName = note.Text
		default:
			services = append(services, models.RoomService{Reference: note.Reference, Name: note.Text})
		}
	}
	return description, commercialName, services
}

func toServices(notes []dto.Note) []models.RoomService {
	services := make([]models.RoomService, 0, len(notes))
	for _, note := range notes {
		services = append(services, models.RoomService{Reference: note.Reference, Name: note.Text})
	}
	return services
}

func toCancellation(block *dto.CancellationBlock) (*models.CancellationRestriction, error) {
	if block.IsZero() {
		return nil, nil
	}

	var p fieldParser
	restriction := &models.CancellationRestriction{
		Date:    p.day("feccan", block.Date),
		Percent: p.decimal("porcan", block.Percent),
		Amount:  p.decimal("impcan", block.Amount),
		Text:    block.Text,
	}
	if p.err != nil {
		return nil, p.err
	}
	return restriction, nil
}

func toPayment(terms *dto.PaymentTerms) (*models.Payment, error) {
	if terms.IsZero() {
		return nil, nil
	}

	var p fieldParser
	payment := &models.Payment{
		TotalAmount: p.decimal("imptot", terms.Total),
		LimitDate:   p.day("fecpag", terms.LimitDate),
	}
	if p.err != nil {
		return nil, p.err
	}
	return payment, nil
}
