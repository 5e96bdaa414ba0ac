package daylog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/aztracker/internal/schedule"
	"github.com/2beens/aztracker/internal/telemetry/metrics"
	"github.com/2beens/aztracker/internal/telemetry/tracing"
	"github.com/2beens/aztracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type SetMealRequest struct {
	Completed   bool `json:"completed"`
	OptionIndex int  `json:"optionIndex"`
}

type SetNoteRequest struct {
	Note string `json:"note"`
}

type LogSetsRequest struct {
	Weights []float64 `json:"weights"`
	Note    string    `json:"note"`
}

type DayResponse struct {
	*DayState
	ConsumedCalories int `json:"consumedCalories"`
	TargetCalories   int `json:"targetCalories"`
}

type Handler struct {
	service   *Service
	scheduler *schedule.Scheduler
	metrics   *metrics.Manager
}

func NewHandler(service *Service, scheduler *schedule.Scheduler, metrics *metrics.Manager) *Handler {
	return &Handler{
		service:   service,
		scheduler: scheduler,
		metrics:   metrics,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/days/{date}", handler.HandleDay).Methods("GET", "OPTIONS").Name("get-day")
	r.HandleFunc("/days/{date}/tasks/{task}/toggle", handler.HandleToggleTask).Methods("POST", "OPTIONS").Name("toggle-task")
	r.HandleFunc("/days/{date}/meals/{slot}", handler.HandleSetMeal).Methods("PUT", "OPTIONS").Name("set-meal")
	r.HandleFunc("/days/{date}/note", handler.HandleSetNote).Methods("PUT", "OPTIONS").Name("set-day-note")
	r.HandleFunc("/days/{date}/workout", handler.HandleWorkout).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/days/{date}/workout/{exercise}", handler.HandleLogSets).Methods("PUT", "OPTIONS").Name("log-sets")
	r.HandleFunc("/week/{date}", handler.HandleWeek).Methods("GET", "OPTIONS").Name("get-week")
}

func (handler *Handler) parseDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	day, err := handler.scheduler.ParseDay(mux.Vars(r)["date"])
	if err != nil {
		log.Tracef("bad date: %s", err)
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, false
	}
	return day, true
}

func (handler *Handler) writeDay(w http.ResponseWriter, state *DayState) {
	pkg.WriteJSON(w, DayResponse{
		DayState:         state,
		ConsumedCalories: state.ConsumedCalories(),
		TargetCalories:   handler.scheduler.TotalTargetCalories(state.Record.Day),
	}, http.StatusOK)
}

func (handler *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylog.day")
	defer span.End()

	day, ok := handler.parseDate(w, r)
	if !ok {
		return
	}

	state, err := handler.service.Day(ctx, day)
	if err != nil {
		log.Errorf("get day %s: %s", day.Format(time.DateOnly), err)
		http.Error(w, "failed to get day", http.StatusInternalServerError)
		return
	}

	handler.writeDay(w, state)
}

func (handler *Handler) HandleToggleTask(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylog.toggle")
	defer span.End()

	day, ok := handler.parseDate(w, r)
	if !ok {
		return
	}
	task, err := ParseTask(mux.Vars(r)["task"])
	if err != nil {
		http.Error(w, "unknown task", http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.String("task", string(task)))

	state, err := handler.service.ToggleTask(ctx, day, task)
	if err != nil {
		log.Errorf("toggle task %s on %s: %s", task, day.Format(time.DateOnly), err)
		http.Error(w, "failed to toggle task", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterTaskToggles.WithLabelValues(string(task)).Inc()
	log.Debugf("task %s toggled on %s: %t", task, day.Format(time.DateOnly), state.Record.Done(task))

	handler.writeDay(w, state)
}

func (handler *Handler) HandleSetMeal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylog.meal")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	day, ok := handler.parseDate(w, r)
	if !ok {
		return
	}
	slot, err := strconv.Atoi(mux.Vars(r)["slot"])
	if err != nil {
		http.Error(w, "error, slot NaN", http.StatusBadRequest)
		return
	}

	var req SetMealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set meal, unmarshal json params: %s", err)
		http.Error(w, "invalid meal request", http.StatusBadRequest)
		return
	}

	state, err := handler.service.SetMeal(ctx, day, slot, req.Completed, req.OptionIndex)
	if err != nil {
		if errors.Is(err, ErrInvalidMealSlot) || errors.Is(err, ErrInvalidMealOption) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("set meal %d on %s: %s", slot, day.Format(time.DateOnly), err)
		http.Error(w, "failed to update meal", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterMealUpdates.Inc()
	handler.writeDay(w, state)
}

func (handler *Handler) HandleSetNote(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylog.note")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	day, ok := handler.parseDate(w, r)
	if !ok {
		return
	}

	var req SetNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("set note, unmarshal json params: %s", err)
		http.Error(w, "invalid note request", http.StatusBadRequest)
		return
	}

	state, err := handler.service.SetNote(ctx, day, req.Note)
	if err != nil {
		log.Errorf("set note on %s: %s", day.Format(time.DateOnly), err)
		http.Error(w, "failed to save note", http.StatusInternalServerError)
		return
	}

	handler.writeDay(w, state)
}

func (handler *Handler) HandleWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylog.workout")
	defer span.End()

	day, ok := handler.parseDate(w, r)
	if !ok {
		return
	}

	workout, err := handler.service.Workout(ctx, day)
	if err != nil {
		log.Errorf("get workout %s: %s", day.Format(time.DateOnly), err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, workout, http.StatusOK)
}

func (handler *Handler) HandleLogSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylog.logsets")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	day, ok := handler.parseDate(w, r)
	if !ok {
		return
	}
	exercise := mux.Vars(r)["exercise"]
	span.SetAttributes(attribute.String("exercise", exercise))

	var req LogSetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("log sets, unmarshal json params: %s", err)
		http.Error(w, "invalid sets request", http.StatusBadRequest)
		return
	}

	wl, err := handler.service.LogSets(ctx, day, exercise, req.Weights, req.Note)
	if err != nil {
		if errors.Is(err, ErrUnknownExercise) {
			http.Error(w, "exercise not scheduled for this day", http.StatusBadRequest)
			return
		}
		log.Errorf("log sets %s on %s: %s", exercise, day.Format(time.DateOnly), err)
		http.Error(w, "failed to log sets", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, wl, http.StatusOK)
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.daylog.week")
	defer span.End()

	day, ok := handler.parseDate(w, r)
	if !ok {
		return
	}

	week, err := handler.service.Week(ctx, day)
	if err != nil {
		log.Errorf("get week of %s: %s", day.Format(time.DateOnly), err)
		http.Error(w, "failed to get week", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, week, http.StatusOK)
}
