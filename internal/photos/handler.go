package photos

import (
	"errors"
	"net/http"

	"github.com/2beens/aztracker/internal/telemetry/metrics"
	"github.com/2beens/aztracker/internal/telemetry/tracing"
	"github.com/2beens/aztracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// multipart overhead on top of the photo itself
const maxUploadRequestSize = MaxPhotoSize + 1<<20

type Handler struct {
	store   *Store
	metrics *metrics.Manager
}

func NewHandler(store *Store, metrics *metrics.Manager) *Handler {
	return &Handler{
		store:   store,
		metrics: metrics,
	}
}

// SetupRoutes registers the photo routes; uploadMiddlewares wrap only the
// upload route (e.g. rate limiting).
func (handler *Handler) SetupRoutes(r *mux.Router, uploadMiddlewares ...mux.MiddlewareFunc) {
	var upload http.Handler = http.HandlerFunc(handler.HandleUpload)
	for i := len(uploadMiddlewares) - 1; i >= 0; i-- {
		upload = uploadMiddlewares[i](upload)
	}

	r.Handle("/progress/photos", upload).Methods("POST", "OPTIONS").Name("upload-photo")
	r.HandleFunc("/progress/photos/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-photo")
}

func (handler *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.upload")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadRequestSize)
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		log.Errorf("upload photo, parse multipart form: %s", err)
		http.Error(w, "invalid upload or photo too big", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Errorf("upload photo, cleanup multipart form: %s", err)
		}
	}()

	file, fileHeader, err := r.FormFile("photo")
	if err != nil {
		http.Error(w, "missing photo", http.StatusBadRequest)
		return
	}
	defer file.Close()

	log.Tracef("new photo upload: %s [%d bytes]", fileHeader.Filename, fileHeader.Size)

	photo, err := handler.store.Save(ctx, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnsupportedType), errors.Is(err, ErrEmptyPhoto):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrPhotoTooLarge):
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		default:
			log.Errorf("save photo: %s", err)
			http.Error(w, "failed to save photo", http.StatusInternalServerError)
		}
		return
	}

	handler.metrics.CounterPhotoUploads.Inc()
	pkg.WriteJSON(w, photo, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.photos.get")
	defer span.End()

	data, contentType, err := handler.store.Get(ctx, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, ErrPhotoNotFound) {
			http.Error(w, "photo not found", http.StatusNotFound)
			return
		}
		log.Errorf("get photo: %s", err)
		http.Error(w, "failed to get photo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", "private, max-age=86400")
	pkg.WriteResponseBytes(w, contentType, data, http.StatusOK)
}
