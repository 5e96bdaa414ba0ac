package photos

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/2beens/aztracker/internal/telemetry/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadRequest(t *testing.T, field, contentType string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="front.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/progress/photos", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func newTestRouter(t *testing.T, uploadMiddlewares ...mux.MiddlewareFunc) (*mux.Router, *Store, *metrics.Manager) {
	store := newTestStore(t)
	metricsManager := metrics.NewTestManager()
	r := mux.NewRouter()
	NewHandler(store, metricsManager).SetupRoutes(r, uploadMiddlewares...)
	return r, store, metricsManager
}

func TestHandler_UploadAndGet(t *testing.T) {
	r, _, metricsManager := newTestRouter(t)

	content := []byte("jpeg content")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, newUploadRequest(t, "photo", "image/jpeg", content))
	require.Equal(t, http.StatusCreated, rec.Code)

	var photo Photo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &photo))
	assert.NotEmpty(t, photo.ID)
	assert.Equal(t, int64(len(content)), photo.Size)
	assert.Equal(t, 1.0, testutil.ToFloat64(metricsManager.CounterPhotoUploads))

	req := httptest.NewRequest(http.MethodGet, "/progress/photos/"+photo.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestHandler_Upload_BadRequests(t *testing.T) {
	r, _, metricsManager := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, newUploadRequest(t, "file", "image/jpeg", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, newUploadRequest(t, "photo", "application/pdf", []byte("x")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/progress/photos", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Zero(t, testutil.ToFloat64(metricsManager.CounterPhotoUploads))
}

func TestHandler_Get_NotFound(t *testing.T) {
	r, _, _ := newTestRouter(t)

	for _, id := range []string{"abc", "0b3c2d1e-6f1a-4b7e-9a55-3f3d6c1b2a90"} {
		req := httptest.NewRequest(http.MethodGet, "/progress/photos/"+id, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}

func TestHandler_UploadMiddlewares(t *testing.T) {
	blocked := 0
	block := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			blocked++
			http.Error(w, "slow down", http.StatusTooEarly)
		})
	}
	r, store, _ := newTestRouter(t, block)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, newUploadRequest(t, "photo", "image/png", []byte("png")))
	assert.Equal(t, http.StatusTooEarly, rec.Code)
	assert.Equal(t, 1, blocked)

	// reads are not wrapped
	photo, err := store.Save(context.Background(), bytes.NewReader([]byte("png")), "image/png")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/progress/photos/"+photo.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, blocked)
}
