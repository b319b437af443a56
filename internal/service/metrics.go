package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Доменные метрики. Каждый NotFound/InvalidIdentity учитывается до того,
// как ошибка уйдёт наверх: дашборды должны отличать системные проблемы
// идентичности от легитимных «не нашлось».
var (
	identityErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hustle_identity_errors_total",
		Help: "Composite hustle id failures by reason.",
	}, []string{"reason"})

	degradedSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hustle_search_degraded_total",
		Help: "Searches served without external results because the gateway was unavailable.",
	})

	savesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hustle_saves_total",
		Help: "Saved hustles by provider.",
	}, []string{"provider"})
)

// Метки reason для identityErrors.
const (
	reasonInvalidID = "invalid_id"
	reasonNotFound  = "not_found"
)
