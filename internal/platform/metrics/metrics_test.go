package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/domain"
)

func TestObservePlan(t *testing.T) {
	m := New()

	best := &domain.VehiclePlan{Bins: make([]*domain.Bin, 2), Outcome: domain.OutcomeComplete}
	plan := &domain.FleetPlan{
		Evaluations: []*domain.VehiclePlan{
			best,
			{Bins: make([]*domain.Bin, 50), Outcome: domain.OutcomeBinLimitReached},
		},
		Best: best,
	}

	m.ObservePlan(plan, 20*time.Millisecond)
	m.ObservePlan(&domain.FleetPlan{}, time.Millisecond)
	m.ObservePlanError("oversize")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlansTotal.WithLabelValues("feasible")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlansTotal.WithLabelValues("infeasible")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PlansTotal.WithLabelValues("oversize")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.VehiclesRequired))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveCacheLookup(true)
	m.ObserveCacheLookup(false)
	m.ObserveCacheLookup(false)
	m.ObserveHTTP("POST", "/plans", 200, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `loadplan_plan_cache_lookups_total{result="miss"} 2`)
	assert.Contains(t, string(body), `http_server_requests_total{method="POST",path="/plans",status="200"} 1`)
}
