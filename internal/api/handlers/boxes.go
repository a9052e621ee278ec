package handlers

import (
	"log/slog"
	"net/http"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/api/dto"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/ports"
)

// BoxHandler exposes the stored packing list.
type BoxHandler struct {
	Repo ports.BoxRepository
}

func (h *BoxHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.List(w, r)
	case http.MethodPut:
		h.Replace(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut)
	}
}

func (h *BoxHandler) List(w http.ResponseWriter, r *http.Request) {
	boxes, err := h.Repo.ListBoxes(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list boxes failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, listBoxesResponse(boxes))
}

// Replace swaps the whole packing list for the boxes in the body.
func (h *BoxHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req dto.ReplaceBoxesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	boxes := dto.BoxesToDomain(req.Boxes)
	seen := make(map[int]struct{}, len(boxes))
	for _, b := range boxes {
		if _, ok := seen[b.ID]; ok {
			writeError(w, r, http.StatusBadRequest, "duplicate box id")
			return
		}
		seen[b.ID] = struct{}{}
	}

	if err := h.Repo.ReplaceBoxes(r.Context(), boxes); err != nil {
		slog.ErrorContext(r.Context(), "replace boxes failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, listBoxesResponse(boxes))
}

func listBoxesResponse(boxes []*domain.Box) dto.ListBoxesResponse {
	res := dto.ListBoxesResponse{
		Boxes: make([]dto.BoxResponse, 0, len(boxes)),
	}
	for _, b := range boxes {
		res.Boxes = append(res.Boxes, dto.NewBoxResponse(b))
	}
	return res
}
