package api

import (
	"net/http"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/api/handlers"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/platform/metrics"
	"github.com/sujeonghan78-lgtm/CargoLoading/internal/ports"
)

// Deps are the adapters the HTTP layer needs. Cache and Metrics may be nil.
type Deps struct {
	Boxes    ports.BoxRepository
	Vehicles ports.VehicleCatalog
	Cache    ports.PlanCache
	Metrics  *metrics.Metrics

	DefaultMode    domain.Mode
	DefaultOptions domain.PlanOptions
	Concurrency    int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	boxHandler := &handlers.BoxHandler{Repo: deps.Boxes}
	vehicleHandler := &handlers.VehicleHandler{
		Catalog:     deps.Vehicles,
		DefaultMode: deps.DefaultMode,
	}
	planHandler := &handlers.PlanHandler{
		Boxes:          deps.Boxes,
		Vehicles:       deps.Vehicles,
		Cache:          deps.Cache,
		Metrics:        deps.Metrics,
		DefaultMode:    deps.DefaultMode,
		DefaultOptions: deps.DefaultOptions,
		Concurrency:    deps.Concurrency,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/boxes", boxHandler)
	mux.HandleFunc("/vehicles", vehicleHandler.List)
	mux.HandleFunc("/plans", planHandler.Plan)
	if deps.Metrics != nil {
		mux.Handle("/metrics", deps.Metrics.Handler())
	}

	return loggingMiddleware(deps.Metrics, mux)
}
