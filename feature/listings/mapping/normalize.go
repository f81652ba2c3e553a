package mapping

import (
	"strings"

	"listing-sync/feature/listings/models"
)

// Normalize converts a feed listing into its typed row. The result is marked
// active; the store owns the bookkeeping timestamps.
func Normalize(l models.Listing) models.Row {
	return models.Row{
		Code:        strings.TrimSpace(l.Code),
		Title:       l.Title,
		Description: l.Description,

		Type:             l.Type,
		SubType:          l.SubType,
		Purpose:          l.Purpose,
		Category:         Category(l.Category),
		Standard:         Standard(l.Standard),
		LocationStandard: Standard(l.LocationStandard),

		Country:      l.Country,
		State:        l.State,
		City:         l.City,
		Neighborhood: l.Neighborhood,
		Street:       l.Street,
		Number:       l.Number,
		Complement:   l.Complement,
		PostalCode:   l.PostalCode,
		Address:      Address(l.Street, l.Number, l.Complement, l.Neighborhood, l.City, l.State, l.PostalCode),
		Latitude:     Decimal(l.Latitude),
		Longitude:    Decimal(l.Longitude),

		SalePrice: Decimal(l.SalePrice),
		RentPrice: Decimal(l.RentPrice),
		CondoFee:  Decimal(l.CondoFee),
		OfferType: OfferType(l.OfferType),
		Publish:   Bool(l.Publish),
		ShowPrice: Bool(l.ShowPrice),

		UsableArea:       Decimal(l.UsableArea),
		TotalArea:        Decimal(l.TotalArea),
		AreaUnit:         l.AreaUnit,
		Bedrooms:         Count(l.Bedrooms),
		Bathrooms:        Count(l.Bathrooms),
		Suites:           Count(l.Suites),
		ParkingSpaces:    Count(l.ParkingSpaces),
		Floor:            Count(l.Floor),
		ConstructionYear: Count(l.ConstructionYear),

		Pool:            Bool(l.Pool),
		Elevator:        Bool(l.Elevator),
		AirConditioning: Bool(l.AirConditioning),
		Furnished:       Bool(l.Furnished),
		Barbecue:        Bool(l.Barbecue),
		Gym:             Bool(l.Gym),
		Doorman:         Bool(l.Doorman),
		Balcony:         Bool(l.Balcony),

		RealtorName:   l.Realtor.Name,
		RealtorPhone:  l.Realtor.Phone,
		RealtorMobile: l.Realtor.Mobile,
		RealtorEmail:  l.Realtor.Email,
		RealtorPhoto:  l.Realtor.Photo,

		Photos: photos(l.Photos),

		CreatedDate: Date(l.CreatedDate),
		UpdatedDate: Date(l.UpdatedDate),
		DetailURL:   l.DetailURL,

		Active: true,
	}
}

func photos(in []models.Photo) models.PhotoList {
	out := make(models.PhotoList, 0, len(in))
	for _, p := range in {
		out = append(out, models.StoredPhoto{
			FileName: p.FileName,
			Type:     p.Type,
			URL:      p.URL,
			Primary:  Bool(p.Primary),
		})
	}
	return out
}
