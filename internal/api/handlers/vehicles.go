package handlers

import (
	"log/slog"
	"net/http"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/api/dto"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/catalog"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/ports"
)

// VehicleHandler lists the candidate vehicle types of one mode.
// An empty stored catalog falls back to the presets.
type VehicleHandler struct {
	Catalog     ports.VehicleCatalog
	DefaultMode domain.Mode
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r, http.MethodGet)
		return
	}

	mode := h.DefaultMode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		parsed, err := domain.ParseMode(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "mode must be truck or container")
			return
		}
		mode = parsed
	}

	var specs []domain.VehicleSpec
	if h.Catalog != nil {
		stored, err := h.Catalog.ListVehicles(r.Context(), mode)
		if err != nil {
			slog.ErrorContext(r.Context(), "list vehicles failed", "mode", mode, "err", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
		specs = stored
	}
	if len(specs) == 0 {
		preset, err := catalog.Preset(mode)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		specs = preset
	}

	res := dto.ListVehiclesResponse{
		Mode:     string(mode),
		Vehicles: make([]dto.VehicleResponse, 0, len(specs)),
	}
	for _, v := range specs {
		res.Vehicles = append(res.Vehicles, dto.NewVehicleResponse(v))
	}

	writeJSON(w, r, http.StatusOK, res)
}
