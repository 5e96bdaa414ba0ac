package schedule

import (
	"net/http"

	"github.com/2beens/aztracker/internal/telemetry/tracing"
	"github.com/2beens/aztracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Handler struct {
	scheduler *Scheduler
}

func NewHandler(scheduler *Scheduler) *Handler {
	return &Handler{
		scheduler: scheduler,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/schedule/day/{date}", handler.HandleDay).Methods("GET", "OPTIONS").Name("schedule-day")
	r.HandleFunc("/schedule/week/{date}", handler.HandleWeek).Methods("GET", "OPTIONS").Name("schedule-week")
}

func (handler *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.day")
	defer span.End()

	dateStr := mux.Vars(r)["date"]
	span.SetAttributes(attribute.String("date", dateStr))
	day, err := handler.scheduler.ParseDay(dateStr)
	if err != nil {
		log.Tracef("schedule day, bad date: %s", err)
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, handler.scheduler.Plan(day), http.StatusOK)
}

func (handler *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.week")
	defer span.End()

	dateStr := mux.Vars(r)["date"]
	span.SetAttributes(attribute.String("date", dateStr))
	day, err := handler.scheduler.ParseDay(dateStr)
	if err != nil {
		log.Tracef("schedule week, bad date: %s", err)
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, handler.scheduler.WeekPlan(day), http.StatusOK)
}
