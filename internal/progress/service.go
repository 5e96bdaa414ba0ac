package progress

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/aztracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress_test

type entriesRepo interface {
	Add(ctx context.Context, entry *Entry) (*Entry, error)
	Get(ctx context.Context, id int) (*Entry, error)
	Latest(ctx context.Context) (*Entry, error)
	List(ctx context.Context, params ListParams) ([]Entry, error)
	Delete(ctx context.Context, id int) error
}

// completionRater provides the week's completion rate when the check-in
// form leaves it empty.
type completionRater interface {
	WeeklyCompletionRate(ctx context.Context, date time.Time) (float64, error)
}

type photoRemover interface {
	Delete(ctx context.Context, id string) error
}

type summaryCache interface {
	Get(ctx context.Context, window Window) (*Summary, bool)
	Set(ctx context.Context, window Window, summary *Summary)
	Invalidate(ctx context.Context)
}

// CheckInForm is the raw check-in input; numeric fields are parsed
// tolerantly and malformed values end up as 0 (unset).
type CheckInForm struct {
	EntryDate      *time.Time `json:"entryDate,omitempty"`
	Weight         string     `json:"weight"`
	WeightUnit     string     `json:"weightUnit"`
	RunTime        string     `json:"runTime"`
	CompletionRate string     `json:"completionRate"`
	Notes          string     `json:"notes"`
	Photos         Photos     `json:"photos"`
}

type Service struct {
	repo   entriesRepo
	rater  completionRater
	photos photoRemover
	cache  summaryCache
	now    func() time.Time
}

func NewService(
	repo entriesRepo,
	rater completionRater,
	photos photoRemover,
	cache summaryCache,
) *Service {
	return &Service{
		repo:   repo,
		rater:  rater,
		photos: photos,
		cache:  cache,
		now:    time.Now,
	}
}

// Create saves a new check-in from the form.
func (s *Service) Create(ctx context.Context, form CheckInForm) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	entryDate := s.now()
	if form.EntryDate != nil && !form.EntryDate.IsZero() {
		entryDate = *form.EntryDate
	}

	entry := &Entry{
		EntryDate:      entryDate,
		WeightKg:       ParseWeight(form.Weight, ParseWeightUnit(form.WeightUnit)),
		RunTimeSeconds: ParseRunTime(form.RunTime),
		CompletionRate: ParseCompletionRate(form.CompletionRate),
		Notes:          strings.TrimSpace(form.Notes),
		Photos:         form.Photos,
	}

	if strings.TrimSpace(form.CompletionRate) == "" && s.rater != nil {
		rate, err := s.rater.WeeklyCompletionRate(ctx, entryDate)
		if err != nil {
			// the check-in is still worth saving without it
			log.Errorf("compute weekly completion rate for %s: %s", entryDate.Format(time.DateOnly), err)
		} else {
			entry.CompletionRate = rate
		}
	}

	added, err := s.repo.Add(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("add progress entry: %w", err)
	}
	span.SetAttributes(attribute.Int("id", added.ID))

	s.cache.Invalidate(ctx)
	return added, nil
}

// Delete removes the entry and, best effort, its photos.
func (s *Service) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("id", id))

	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get progress entry %d: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete progress entry %d: %w", id, err)
	}
	s.cache.Invalidate(ctx)

	for _, photoID := range entry.Photos.IDs() {
		if err := s.photos.Delete(ctx, photoID); err != nil {
			log.Warnf("delete photo %s of entry %d: %s", photoID, id, err)
		}
	}

	return nil
}

func (s *Service) Get(ctx context.Context, id int) (*Entry, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Latest(ctx context.Context) (*Entry, error) {
	return s.repo.Latest(ctx)
}

func (s *Service) List(ctx context.Context, params ListParams) ([]Entry, error) {
	return s.repo.List(ctx, params)
}

// Summary computes the statistics for window over all entries. The streak
// needs the whole history, the windowed stats only the first entries.
func (s *Service) Summary(ctx context.Context, window Window) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.summary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("window", int(window)))

	if cached, ok := s.cache.Get(ctx, window); ok {
		span.SetAttributes(attribute.Bool("cached", true))
		return cached, nil
	}

	entries, err := s.repo.List(ctx, ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list progress entries: %w", err)
	}

	summary := Summarize(entries, window)
	s.cache.Set(ctx, window, &summary)
	return &summary, nil
}
