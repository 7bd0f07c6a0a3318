package mappers

import (
	"strings"

	"github.com/ozzus/hotetec-gateway/internal/domain/models"
	"github.com/ozzus/hotetec-gateway/internal/infrastructures/hotetec/dto"
)

func ToHotelInfo(resp dto.HotelInfoResponse) ([]models.HotelInfo, error) {
	if err := CheckError(resp.ErrorFields); err != nil {
		return nil, err
	}

	var p fieldParser
	hotels := make([]models.HotelInfo, 0, len(resp.Hotels))
	for _, h := range resp.Hotels {
		hotels = append(hotels, models.HotelInfo{
			Code:        h.Code,
			Name:        h.Name,
			Category:    h.Category,
			ZoneCode:    h.ZoneCode,
			Address:     strings.TrimSpace(h.Address),
			City:        h.City,
			PostalCode:  h.PostalCode,
			Latitude:    p.decimal("latitu", h.Latitude),
			Longitude:   p.decimal("longit", h.Longitude),
			Description: strings.TrimSpace(h.Description),
			Services:    toStrings(h.Services),
		})
	}
	if p.err != nil {
		return nil, p.err
	}

	return hotels, nil
}
