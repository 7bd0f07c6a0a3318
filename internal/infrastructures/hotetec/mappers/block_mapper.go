package mappers

import (
	"github.com/ozzus/hotetec-gateway/internal/domain/models"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/dto"
)

func ToBlockResult(resp dto.BlockResponse) (models.BlockResult, error) {
	if err := CheckError(resp.ErrorFields); err != nil {
		return models.BlockResult{}, err
	}

	result := models.BlockResult{Rooms: []models.BlockedRoom{}}

	payment, err := toPayment(resp.Payment)
	if err != nil {
		return models.BlockResult{}, err
	}
	result.Payment = payment

	service := resp.Service
	if service == nil {
		return result, nil
	}

	var p fieldParser
	result.StartDate = p.day("fecini", service.StartDate)
	result.EndDate = p.day("fecfin", service.EndDate)
	if p.err != nil {
		return models.BlockResult{}, p.err
	}
	result.Hotel = models.BlockedHotel{
		Code:     service.Code,
		Name:     service.Name,
		Category: service.Category,
		ZoneCode: service.ZoneCode,
	}

	for _, room := range service.Rooms {
		cancellation, err := toCancellation(room.Cancellation)
		if err != nil {
			return models.BlockResult{}, err
		}
		result.Rooms = append(result.Rooms, models.BlockedRoom{
			FareCode:     room.FareCode,
			FareName:     room.FareName,
			Cancellation: cancellation,
			Customers:    toStrings(room.PassengerIDs),
			Services:     toServices(room.Notes),
		})
	}

	return result, nil
}
