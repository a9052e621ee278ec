package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/api/dto"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/catalog"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/metrics"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/ports"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/services"
)

// PlanCacheHeader reports whether a plan came from the cache.
const PlanCacheHeader = "X-Plan-Cache"

type PlanHandler struct {
	Boxes    ports.BoxRepository
	Vehicles ports.VehicleCatalog
	// Cache and Metrics are optional.
	Cache   ports.PlanCache
	Metrics *metrics.Metrics

	DefaultMode    domain.Mode
	DefaultOptions domain.PlanOptions
	Concurrency    int
}

// Plan compares every candidate vehicle type for the packing list and
// recommends the one needing the fewest vehicles.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req dto.PlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	mode := h.DefaultMode
	if req.Mode != "" {
		parsed, err := domain.ParseMode(req.Mode)
		if err != nil {
			h.observeError("invalid")
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		mode = parsed
	}

	ctx := r.Context()
	fleetReq, err := services.ResolveShipment(ctx, services.PlanShipmentRequest{
		Boxes:       dto.BoxesToDomain(req.Boxes),
		Vehicles:    dto.VehiclesToDomain(req.Vehicles, mode),
		Mode:        mode,
		Options:     req.Options(h.DefaultOptions),
		Concurrency: h.Concurrency,
	}, h.Boxes, h.Vehicles)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	// Cached plans carry no id; every response gets a fresh one.
	key := services.Fingerprint(fleetReq)
	if res, ok := h.cachedPlan(r, key); ok {
		res.PlanID = uuid.NewString()
		w.Header().Set(PlanCacheHeader, "hit")
		writeJSON(w, r, http.StatusOK, res)
		return
	}

	start := time.Now()
	plan, err := services.PlanFleet(ctx, fleetReq)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}
	if h.Metrics != nil {
		h.Metrics.ObservePlan(plan, time.Since(start))
	}

	res := dto.NewPlanResponse("", plan)
	if h.Cache != nil {
		h.storePlan(r, key, res)
		w.Header().Set(PlanCacheHeader, "miss")
	}

	res.PlanID = uuid.NewString()
	slog.InfoContext(ctx, "fleet planned",
		"plan_id", res.PlanID,
		"boxes", len(fleetReq.Boxes),
		"vehicle_types", len(fleetReq.Vehicles),
		"feasible", res.Feasible,
	)
	writeJSON(w, r, http.StatusOK, res)
}

// cachedPlan looks the fingerprint up. Cache failures and undecodable
// entries count as misses.
func (h *PlanHandler) cachedPlan(r *http.Request, key string) (dto.PlanResponse, bool) {
	var res dto.PlanResponse
	if h.Cache == nil {
		return res, false
	}

	ctx := r.Context()
	payload, ok, err := h.Cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "plan cache lookup failed", "key", key, "err", err)
	}
	if ok {
		if err := json.Unmarshal(payload, &res); err != nil {
			slog.WarnContext(ctx, "plan cache entry unreadable", "key", key, "err", err)
			ok = false
		}
	}
	h.observeCache(ok)
	return res, ok
}

func (h *PlanHandler) storePlan(r *http.Request, key string, res dto.PlanResponse) {
	ctx := r.Context()
	payload, err := json.Marshal(res)
	if err != nil {
		slog.WarnContext(ctx, "encode plan for cache failed", "key", key, "err", err)
		return
	}
	if err := h.Cache.Put(ctx, key, payload); err != nil {
		slog.WarnContext(ctx, "plan cache store failed", "key", key, "err", err)
	}
}

func (h *PlanHandler) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	var oversize *services.OversizeError
	switch {
	case errors.As(err, &oversize):
		h.observeError("oversize")
		res := dto.OversizeResponse{
			Error: services.ErrUnplaceableBoxes.Error(),
			Boxes: make([]dto.BoxResponse, 0, len(oversize.Boxes)),
		}
		for _, b := range oversize.Boxes {
			res.Boxes = append(res.Boxes, dto.NewBoxResponse(b))
		}
		writeJSON(w, r, http.StatusUnprocessableEntity, res)

	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, catalog.ErrUnknownMode):
		h.observeError("invalid")
		writeError(w, r, http.StatusBadRequest, err.Error())

	default:
		h.observeError("error")
		slog.ErrorContext(r.Context(), "plan fleet failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func (h *PlanHandler) observeError(reason string) {
	if h.Metrics != nil {
		h.Metrics.ObservePlanError(reason)
	}
}

func (h *PlanHandler) observeCache(hit bool) {
	if h.Metrics != nil {
		h.Metrics.ObserveCacheLookup(hit)
	}
}
