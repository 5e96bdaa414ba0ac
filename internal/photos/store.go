package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/2beens/aztracker/internal/telemetry/tracing"
	"github.com/2beens/aztracker/pkg"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	MaxPhotoSize     = 10 << 20 // 10 MiB
	DefaultCacheSize = 64 << 20

	contentTypeSuffix = ".type"
	cacheExpire       = 60 * 60 // seconds
)

var (
	ErrPhotoNotFound       = errors.New("photo not found")
	ErrUnsupportedType     = errors.New("unsupported photo type")
	ErrPhotoTooLarge       = errors.New("photo too large")
	ErrEmptyPhoto          = errors.New("photo is empty")
	allowedContentTypes    = []string{"image/jpeg", "image/png", "image/heic"}
	cachedContentSeparator = []byte{0}
)

type Photo struct {
	ID          string    `json:"id"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store keeps check-in photos on disk, one file per photo named by its id,
// with the content type in a sidecar file. Reads go through an in-memory
// cache; photos bigger than the cache's max entry size are always read
// from disk.
type Store struct {
	rootPath string
	cache    *freecache.Cache
}

func NewStore(rootPath string, cacheSize int) (*Store, error) {
	if rootPath == "" {
		return nil, errors.New("photos root path cannot be empty")
	}
	if err := pkg.EnsureDir(rootPath); err != nil {
		return nil, fmt.Errorf("ensure photos dir %s: %w", rootPath, err)
	}
	return &Store{
		rootPath: rootPath,
		cache:    freecache.NewCache(cacheSize),
	}, nil
}

// NormalizeContentType strips parameters and checks the type is allowed.
func NormalizeContentType(contentType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	for _, allowed := range allowedContentTypes {
		if mediaType == allowed {
			return mediaType, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mediaType)
}

func (s *Store) photoPath(id string) string {
	return filepath.Join(s.rootPath, id)
}

// validID guards against path traversal; only ids we generated are valid.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && !strings.ContainsAny(id, `/\.`)
}

func (s *Store) Save(ctx context.Context, r io.Reader, contentType string) (_ *Photo, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.store.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	contentType, err = NormalizeContentType(contentType)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	span.SetAttributes(attribute.String("photo.id", id))
	photoPath := s.photoPath(id)

	dst, err := os.OpenFile(photoPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return nil, fmt.Errorf("create photo file: %w", err)
	}

	size, err := io.Copy(dst, io.LimitReader(r, MaxPhotoSize+1))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err == nil && size > MaxPhotoSize {
		err = ErrPhotoTooLarge
	}
	if err == nil && size == 0 {
		err = ErrEmptyPhoto
	}
	if err != nil {
		if removeErr := os.Remove(photoPath); removeErr != nil {
			log.Errorf("remove incomplete photo %s: %s", id, removeErr)
		}
		return nil, err
	}

	if err := os.WriteFile(photoPath+contentTypeSuffix, []byte(contentType), 0o640); err != nil {
		if removeErr := os.Remove(photoPath); removeErr != nil {
			log.Errorf("remove photo %s without content type: %s", id, removeErr)
		}
		return nil, fmt.Errorf("write photo content type: %w", err)
	}

	span.SetAttributes(attribute.Int64("photo.size", size))
	log.Debugf("photos: saved %s [%s, %d bytes]", id, contentType, size)

	return &Photo{
		ID:          id,
		ContentType: contentType,
		Size:        size,
		CreatedAt:   time.Now(),
	}, nil
}

// Get returns the photo bytes and content type.
func (s *Store) Get(ctx context.Context, id string) (_ []byte, _ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.store.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("photo.id", id))

	if !validID(id) {
		return nil, "", ErrPhotoNotFound
	}

	if cached, err := s.cache.Get([]byte(id)); err == nil {
		if contentType, data, found := bytes.Cut(cached, cachedContentSeparator); found {
			span.SetAttributes(attribute.Bool("cached", true))
			return data, string(contentType), nil
		}
	}

	data, err := os.ReadFile(s.photoPath(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", ErrPhotoNotFound
		}
		return nil, "", fmt.Errorf("read photo %s: %w", id, err)
	}

	contentType := "application/octet-stream"
	if ct, err := os.ReadFile(s.photoPath(id) + contentTypeSuffix); err == nil {
		contentType = string(ct)
	} else {
		log.Warnf("photos: missing content type for %s: %s", id, err)
	}

	entry := make([]byte, 0, len(contentType)+1+len(data))
	entry = append(entry, contentType...)
	entry = append(entry, cachedContentSeparator...)
	entry = append(entry, data...)
	if err := s.cache.Set([]byte(id), entry, cacheExpire); err != nil {
		log.Tracef("photos: not caching %s: %s", id, err)
	}

	return data, contentType, nil
}

func (s *Store) Delete(ctx context.Context, id string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photos.store.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("photo.id", id))

	if !validID(id) {
		return ErrPhotoNotFound
	}

	s.cache.Del([]byte(id))

	if err := os.Remove(s.photoPath(id)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("remove photo %s: %w", id, err)
	}
	if err := os.Remove(s.photoPath(id) + contentTypeSuffix); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("photos: remove content type of %s: %s", id, err)
	}

	log.Debugf("photos: deleted %s", id)
	return nil
}
