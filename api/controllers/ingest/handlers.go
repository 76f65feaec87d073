package ingest

import (
	"net/http"

	"github.com/storepulse/storepulse-backend/api/responses"
	"github.com/storepulse/storepulse-backend/api/validators"
	ingestsvc "github.com/storepulse/storepulse-backend/internal/ingest"
	"github.com/storepulse/storepulse-backend/pkg/logger"
)

type salesBatchRequest struct {
	Rows []ingestsvc.SalesRowInput `json:"rows" validate:"required"`
}

type weatherBatchRequest struct {
	Rows []ingestsvc.WeatherRowInput `json:"rows" validate:"required"`
}

type eventsBatchRequest struct {
	Rows []ingestsvc.EventRowInput `json:"rows" validate:"required"`
}

// IngestSales accepts a batch of daily sales rows.
func IngestSales(service ingestsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body salesBatchRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.IngestSales(ctx, body.Rows)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// IngestWeather accepts a batch of observed-weather rows.
func IngestWeather(service ingestsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body weatherBatchRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.IngestWeather(ctx, body.Rows)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// IngestEvents accepts a batch of local-event rows.
func IngestEvents(service ingestsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body eventsBatchRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := service.IngestEvents(ctx, body.Rows)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
