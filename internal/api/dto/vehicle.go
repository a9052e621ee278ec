package dto

import "github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"

type VehicleRequest struct {
	Name      string  `json:"name" validate:"required,max=128"`
	Length    float64 `json:"length" validate:"gt=0"`
	Width     float64 `json:"width" validate:"gt=0"`
	Height    float64 `json:"height" validate:"gt=0"`
	MaxWeight float64 `json:"max_weight" validate:"gte=0"`
}

func (v VehicleRequest) ToDomain(mode domain.Mode) domain.VehicleSpec {
	return domain.VehicleSpec{
		Name:      v.Name,
		Mode:      mode,
		Length:    v.Length,
		Width:     v.Width,
		Height:    v.Height,
		MaxWeight: v.MaxWeight,
	}
}

func VehiclesToDomain(reqs []VehicleRequest, mode domain.Mode) []domain.VehicleSpec {
	out := make([]domain.VehicleSpec, 0, len(reqs))
	for _, v := range reqs {
		out = append(out, v.ToDomain(mode))
	}
	return out
}

type VehicleResponse struct {
	Name      string  `json:"name"`
	Mode      string  `json:"mode"`
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	MaxWeight float64 `json:"max_weight"`
}

type ListVehiclesResponse struct {
	Mode     string            `json:"mode"`
	Vehicles []VehicleResponse `json:"vehicles"`
}

func NewVehicleResponse(v domain.VehicleSpec) VehicleResponse {
	return VehicleResponse{
		Name:      v.Name,
		Mode:      string(v.Mode),
		Length:    v.Length,
		Width:     v.Width,
		Height:    v.Height,
		MaxWeight: v.MaxWeight,
	}
}
