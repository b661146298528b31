package usecase

import (
	"github.com/roshan-1001/credence-realtor-sub001/internal/domain/entity"
	"github.com/roshan-1001/credence-realtor-sub001/internal/utils"
)

// toListingItem derives the normalized listing shape from a raw record.
// mainImage resolves cover, then logo, then the first photo; the gallery
// is the remaining photos minus whichever URL became the main image.
func toListingItem(rec entity.ProjectRecord) entity.ListingItem {
	firstPhoto := ""
	if len(rec.Photos) > 0 {
		firstPhoto = rec.Photos[0]
	}
	mainImage := utils.FirstNonEmpty(rec.Cover, rec.Logo, firstPhoto)

	gallery := make([]string, 0, len(rec.Photos))
	for _, photo := range rec.Photos {
		if photo == mainImage {
			continue
		}
		gallery = append(gallery, photo)
	}

	price := rec.PriceFrom
	if price == 0 {
		price = rec.PriceTo
	}

	return entity.ListingItem{
		ID:         rec.ID,
		Slug:       rec.Slug,
		Title:      rec.Title,
		Type:       rec.Type,
		Price:      price,
		MinPrice:   rec.PriceFrom,
		MaxPrice:   rec.PriceTo,
		MainImage:  mainImage,
		Gallery:    gallery,
		Location:   rec.Location,
		Locality:   rec.Locality,
		City:       rec.City,
		Developer:  rec.Developer,
		ReadyDate:  utils.QuarterLabel(rec.ReadyDate),
		Statistics: rec.Statistics,
	}
}

// toDeveloperItem nests the flat provider record into the normalized
// developer shape.
func toDeveloperItem(rec entity.DeveloperRecord) entity.DeveloperItem {
	return entity.DeveloperItem{
		ID:   rec.ID,
		Name: rec.Title,
		Company: entity.DeveloperCompany{
			Name: rec.CompanyTitle,
			Logo: rec.CompanyLogo,
		},
		ProjectCount: rec.ProjectsCount,
		Logo:         rec.Logo,
	}
}
