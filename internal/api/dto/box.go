package dto

import "github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"

// BoxRequest is one packing list entry in a request body. Dimensions are
// millimeters and weight is kilograms.
type BoxRequest struct {
	ID          int     `json:"id" validate:"gt=0"`
	Name        string  `json:"name" validate:"max=128"`
	Length      float64 `json:"length" validate:"gt=0"`
	Width       float64 `json:"width" validate:"gt=0"`
	Height      float64 `json:"height" validate:"gt=0"`
	Weight      float64 `json:"weight" validate:"gte=0"`
	Stackable   *bool   `json:"stackable"`
	Description string  `json:"description" validate:"max=1024"`
}

// ToDomain builds the box; a missing stackable flag means stackable.
func (b BoxRequest) ToDomain() *domain.Box {
	stackable := b.Stackable == nil || *b.Stackable
	return domain.NewBox(b.ID, b.Name, b.Length, b.Width, b.Height, b.Weight, stackable, b.Description)
}

func BoxesToDomain(reqs []BoxRequest) []*domain.Box {
	out := make([]*domain.Box, 0, len(reqs))
	for _, b := range reqs {
		out = append(out, b.ToDomain())
	}
	return out
}

type ReplaceBoxesRequest struct {
	Boxes []BoxRequest `json:"boxes" validate:"dive"`
}

type BoxResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	Volume      float64 `json:"volume"`
	Stackable   bool    `json:"stackable"`
	Description string  `json:"description"`
}

type ListBoxesResponse struct {
	Boxes []BoxResponse `json:"boxes"`
}

func NewBoxResponse(b *domain.Box) BoxResponse {
	return BoxResponse{
		ID:          b.ID,
		Name:        b.Name,
		Length:      b.Length,
		Width:       b.Width,
		Height:      b.Height,
		Weight:      b.Weight,
		Volume:      b.Volume,
		Stackable:   b.Stackable,
		Description: b.Description,
	}
}
