//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	"github.com/2beens/aztracker/internal/daylog"
	"github.com/2beens/aztracker/internal/photos"
	"github.com/2beens/aztracker/internal/progress"
	"github.com/2beens/aztracker/internal/schedule"

	"github.com/brianvoe/gofakeit/v6"
)

func (s *IntegrationTestSuite) do(req *http.Request, expectedStatus int, out any) {
	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().Equal(expectedStatus, resp.StatusCode, string(body))

	if out != nil {
		s.Require().NoError(json.Unmarshal(body, out))
	}
}

func (s *IntegrationTestSuite) TestVersionAndAuth() {
	ctx := context.Background()

	req := s.newRequest(ctx, http.MethodGet, "/version", nil)
	req.Header.Del("X-AZ-TOKEN")
	s.do(req, http.StatusOK, nil)

	req = s.newRequest(ctx, http.MethodGet, "/schedule/day/2024-01-01", nil)
	req.Header.Set("X-AZ-TOKEN", "wrong")
	s.do(req, http.StatusUnauthorized, nil)
}

func (s *IntegrationTestSuite) TestSchedule() {
	ctx := context.Background()

	var plan schedule.DayPlan
	s.do(s.newRequest(ctx, http.MethodGet, "/schedule/day/2024-01-01", nil), http.StatusOK, &plan)
	s.Equal("Monday", plan.Weekday)
	s.Equal(2913, plan.TargetCalories)
	s.Len(plan.Meals, schedule.MealSlots)

	var week []schedule.DayPlan
	s.do(s.newRequest(ctx, http.MethodGet, "/schedule/week/2024-01-03", nil), http.StatusOK, &week)
	s.Len(week, 7)

	s.do(s.newRequest(ctx, http.MethodGet, "/schedule/day/yesterday", nil), http.StatusBadRequest, nil)
}

func (s *IntegrationTestSuite) TestDayLog() {
	ctx := context.Background()
	const day = "2024-02-05" // monday

	var resp daylog.DayResponse
	s.do(s.newRequest(ctx, http.MethodGet, "/days/"+day, nil), http.StatusOK, &resp)
	s.False(resp.Record.CardioDone)
	s.Len(resp.Meals, schedule.MealSlots)
	s.Zero(resp.ConsumedCalories)

	s.do(s.newRequest(ctx, http.MethodPost, "/days/"+day+"/tasks/cardio/toggle", nil), http.StatusOK, &resp)
	s.True(resp.Record.CardioDone)

	s.do(s.newRequest(ctx, http.MethodPost, "/days/"+day+"/tasks/nap/toggle", nil), http.StatusBadRequest, nil)

	mealReq, err := json.Marshal(daylog.SetMealRequest{Completed: true, OptionIndex: 0})
	s.Require().NoError(err)
	s.do(s.newRequest(ctx, http.MethodPut, "/days/"+day+"/meals/1", mealReq), http.StatusOK, &resp)
	s.True(resp.Meal(1).Completed)
	s.Equal(resp.Meal(1).Calories, resp.ConsumedCalories)

	note := gofakeit.Sentence(6)
	noteReq, err := json.Marshal(daylog.SetNoteRequest{Note: note})
	s.Require().NoError(err)
	s.do(s.newRequest(ctx, http.MethodPut, "/days/"+day+"/note", noteReq), http.StatusOK, &resp)
	s.Equal(note, resp.Record.Note)

	var workout daylog.DayWorkout
	s.do(s.newRequest(ctx, http.MethodGet, "/days/"+day+"/workout", nil), http.StatusOK, &workout)
	s.Require().NotEmpty(workout.Exercises)

	var week daylog.WeekOverview
	s.do(s.newRequest(ctx, http.MethodGet, "/week/"+day, nil), http.StatusOK, &week)
	s.Len(week.Days, 7)
	s.Greater(week.CompletionRate, 0.0)
}

func (s *IntegrationTestSuite) TestProgress() {
	ctx := context.Background()

	form := progress.CheckInForm{
		Weight:         "200",
		WeightUnit:     "lbs",
		RunTime:        "24:30",
		CompletionRate: "80",
		Notes:          gofakeit.Sentence(10),
	}
	body, err := json.Marshal(form)
	s.Require().NoError(err)

	var created progress.Entry
	s.do(s.newRequest(ctx, http.MethodPost, "/progress", body), http.StatusCreated, &created)
	s.NotZero(created.ID)
	s.InDelta(90.718474, created.WeightKg, 1e-6)
	s.Equal(1470, created.RunTimeSeconds)
	s.Equal(80.0, created.CompletionRate)

	var got progress.Entry
	s.do(s.newRequest(ctx, http.MethodGet, "/progress/"+strconv.Itoa(created.ID), nil), http.StatusOK, &got)
	s.Equal(created.Notes, got.Notes)

	var latest progress.Entry
	s.do(s.newRequest(ctx, http.MethodGet, "/progress/latest", nil), http.StatusOK, &latest)
	s.Equal(created.ID, latest.ID)

	var entries []progress.Entry
	s.do(s.newRequest(ctx, http.MethodGet, "/progress?limit=10", nil), http.StatusOK, &entries)
	s.NotEmpty(entries)

	var summary progress.SummaryResponse
	s.do(s.newRequest(ctx, http.MethodGet, "/progress/summary/week", nil), http.StatusOK, &summary)
	s.Require().NotNil(summary.Summary)
	s.Equal(1, summary.EntriesCount)
	s.Equal("90.7 kg", summary.Display.LatestWeight)
	s.Equal("24:30", summary.Display.BestRunTime)

	s.do(s.newRequest(ctx, http.MethodGet, "/progress/summary/year", nil), http.StatusBadRequest, nil)

	s.do(s.newRequest(ctx, http.MethodDelete, "/progress/"+strconv.Itoa(created.ID), nil), http.StatusOK, nil)
	s.do(s.newRequest(ctx, http.MethodGet, "/progress/"+strconv.Itoa(created.ID), nil), http.StatusNotFound, nil)

	// the cached summary is gone with the deleted entry
	s.do(s.newRequest(ctx, http.MethodGet, "/progress/summary/week", nil), http.StatusOK, &summary)
	s.Zero(summary.EntriesCount)
}

func (s *IntegrationTestSuite) uploadRequest(ctx context.Context, contentType string, data []byte) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="photo"; filename="front.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	s.Require().NoError(err)
	_, err = part.Write(data)
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := s.newRequest(ctx, http.MethodPost, "/progress/photos", nil)
	req.Body = io.NopCloser(body)
	req.ContentLength = int64(body.Len())
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func (s *IntegrationTestSuite) TestPhotos_Upload() {
	ctx := context.Background()
	data := []byte(gofakeit.LetterN(2048))

	var photo photos.Photo
	s.do(s.uploadRequest(ctx, "image/jpeg", data), http.StatusCreated, &photo)
	s.NotEmpty(photo.ID)
	s.Equal(int64(len(data)), photo.Size)

	resp, err := s.httpClient.Do(s.newRequest(ctx, http.MethodGet, "/progress/photos/"+photo.ID, nil))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("image/jpeg", resp.Header.Get("Content-Type"))
	got, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal(data, got)

	s.do(s.newRequest(ctx, http.MethodGet, "/progress/photos/"+gofakeit.UUID(), nil), http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestPhotos_UploadRateLimit() {
	ctx := context.Background()

	limited := false
	for i := 0; i < 5 && !limited; i++ {
		resp, err := s.httpClient.Do(s.uploadRequest(ctx, "image/png", []byte(fmt.Sprintf("png-%d", i))))
		s.Require().NoError(err)
		resp.Body.Close()
		if resp.StatusCode == http.StatusTooManyRequests {
			limited = true
			s.NotEmpty(resp.Header.Get("Retry-After"))
		}
	}
	s.True(limited, "upload rate limit never kicked in")
}
