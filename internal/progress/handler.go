package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/aztracker/internal/telemetry/metrics"
	"github.com/2beens/aztracker/internal/telemetry/tracing"
	"github.com/2beens/aztracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// SummaryDisplay holds the summary values formatted for the configured
// display weight unit.
type SummaryDisplay struct {
	LatestWeight          string `json:"latestWeight"`
	WeightTrend           string `json:"weightTrend"`
	AverageRunTime        string `json:"averageRunTime"`
	BestRunTime           string `json:"bestRunTime"`
	AverageCompletionRate string `json:"averageCompletionRate"`
}

type SummaryResponse struct {
	*Summary
	Display SummaryDisplay `json:"display"`
}

func NewSummaryResponse(summary *Summary, unit WeightUnit) SummaryResponse {
	latestWeight := 0.0
	if summary.Latest != nil {
		latestWeight = summary.Latest.WeightKg
	}
	return SummaryResponse{
		Summary: summary,
		Display: SummaryDisplay{
			LatestWeight:          FormatWeight(latestWeight, unit),
			WeightTrend:           fmt.Sprintf("%+.1f%%", summary.WeightTrendPercent),
			AverageRunTime:        FormatRunTime(int(summary.AverageRunTime + 0.5)),
			BestRunTime:           FormatRunTime(summary.BestRunTime),
			AverageCompletionRate: FormatCompletionRate(summary.AverageCompletionRate),
		},
	}
}

type Handler struct {
	service     *Service
	loc         *time.Location
	displayUnit WeightUnit
	metrics     *metrics.Manager
}

func NewHandler(
	service *Service,
	loc *time.Location,
	displayUnit WeightUnit,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		service:     service,
		loc:         loc,
		displayUnit: displayUnit,
		metrics:     metrics,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/progress", handler.HandleCreate).Methods("POST", "OPTIONS").Name("new-progress")
	r.HandleFunc("/progress", handler.HandleList).Methods("GET", "OPTIONS").Name("list-progress")
	r.HandleFunc("/progress/latest", handler.HandleLatest).Methods("GET", "OPTIONS").Name("latest-progress")
	r.HandleFunc("/progress/summary/{window}", handler.HandleSummary).Methods("GET", "OPTIONS").Name("progress-summary")
	r.HandleFunc("/progress/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-progress")
	r.HandleFunc("/progress/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-progress")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.create")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var form CheckInForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		log.Errorf("new check-in, unmarshal json params: %s", err)
		http.Error(w, "invalid check-in", http.StatusBadRequest)
		return
	}

	entry, err := handler.service.Create(ctx, form)
	if err != nil {
		log.Errorf("save check-in: %s", err)
		http.Error(w, "failed to save check-in", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterCheckIns.Inc()
	log.Debugf("new check-in saved: %d", entry.ID)

	pkg.WriteJSON(w, entry, http.StatusCreated)
}

func (handler *Handler) parseListParams(r *http.Request) (ListParams, error) {
	var params ListParams
	query := r.URL.Query()

	if from := query.Get("from"); from != "" {
		t, err := time.ParseInLocation(time.DateOnly, from, handler.loc)
		if err != nil {
			return params, fmt.Errorf("invalid from date: %w", err)
		}
		params.From = &t
	}
	if to := query.Get("to"); to != "" {
		t, err := time.ParseInLocation(time.DateOnly, to, handler.loc)
		if err != nil {
			return params, fmt.Errorf("invalid to date: %w", err)
		}
		// inclusive for the caller
		t = t.AddDate(0, 0, 1)
		params.To = &t
	}
	if limit := query.Get("limit"); limit != "" {
		l, err := strconv.Atoi(limit)
		if err != nil || l < 0 {
			return params, fmt.Errorf("invalid limit: %s", limit)
		}
		params.Limit = l
	}

	return params, nil
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.list")
	defer span.End()

	params, err := handler.parseListParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := handler.service.List(ctx, params)
	if err != nil {
		log.Errorf("list check-ins: %s", err)
		http.Error(w, "failed to list check-ins", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	pkg.WriteJSON(w, entries, http.StatusOK)
}

func (handler *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.latest")
	defer span.End()

	entry, err := handler.service.Latest(ctx)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "no check-ins yet", http.StatusNotFound)
			return
		}
		log.Errorf("get latest check-in: %s", err)
		http.Error(w, "failed to get latest check-in", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, entry, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	entry, err := handler.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "check-in not found", http.StatusNotFound)
			return
		}
		log.Errorf("get check-in %d: %s", id, err)
		http.Error(w, "failed to get check-in", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, entry, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.delete")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "check-in not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete check-in %d: %s", id, err)
		http.Error(w, "failed to delete check-in", http.StatusInternalServerError)
		return
	}

	log.Debugf("check-in %d deleted", id)
	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.summary")
	defer span.End()

	window, err := ParseWindow(mux.Vars(r)["window"])
	if err != nil {
		http.Error(w, "invalid window, expected week, month or 3months", http.StatusBadRequest)
		return
	}

	unit := handler.displayUnit
	if u := r.URL.Query().Get("unit"); u != "" {
		unit = ParseWeightUnit(u)
	}

	summary, err := handler.service.Summary(ctx, window)
	if err != nil {
		log.Errorf("progress summary %s: %s", window, err)
		http.Error(w, "failed to compute summary", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, NewSummaryResponse(summary, unit), http.StatusOK)
}
