package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/property-portal/internal/domain/audit"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/linskybing/property-portal/pkg/auth"
	"github.com/linskybing/property-portal/pkg/objectstore"
)

var ErrUploadsDisabled = errors.New("object storage is not configured")

const sniffLen = 512

// Folders images may be uploaded into. Anything else lands in "uploads".
var uploadFolders = map[string]bool{
	"uploads":    true,
	"properties": true,
	"blogs":      true,
	"avatars":    true,
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

type UploadInput struct {
	Folder   string
	Filename string
	Size     int64
	Body     io.Reader
}

type UploadResult struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type UploadService struct {
	store    objectstore.Store
	maxBytes int64
	audit    *AuditService
	now      func() time.Time
}

// NewUploadService accepts a nil store; uploads then fail with
// ErrUploadsDisabled.
func NewUploadService(store objectstore.Store, maxBytes int64, audit *AuditService) *UploadService {
	return &UploadService{
		store:    store,
		maxBytes: maxBytes,
		audit:    audit,
		now:      time.Now,
	}
}

func (s *UploadService) Enabled() bool {
	return s.store != nil
}

// Upload stores an image under <folder>/<yyyy>/<mm>/<uuid><ext> and returns
// its public URL.
func (s *UploadService) Upload(ctx context.Context, sess *auth.Session, in UploadInput) (*UploadResult, error) {
	if sess == nil {
		return nil, ErrInvalidToken
	}
	if s.store == nil {
		return nil, ErrUploadsDisabled
	}
	if in.Size <= 0 {
		return nil, apperrors.Invalid("file", "required", "file is required")
	}
	if s.maxBytes > 0 && in.Size > s.maxBytes {
		return nil, apperrors.Invalid("file", "max", fmt.Sprintf("file must be at most %d bytes", s.maxBytes))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(in.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperrors.Invalid("file", "image", "file must be an image")
	}

	key := s.objectKey(in.Folder, in.Filename, contentType)
	body := io.MultiReader(bytes.NewReader(head), in.Body)
	if err := s.store.Put(ctx, key, contentType, body, in.Size); err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	res := &UploadResult{
		Key:         key,
		URL:         s.store.PublicURL(key),
		ContentType: contentType,
		Size:        in.Size,
	}
	s.audit.Record(ctx, audit.ActionCreate, "upload", key, nil, res, "image uploaded")
	return res, nil
}

func (s *UploadService) objectKey(folder, filename, contentType string) string {
	folder = strings.ToLower(strings.Trim(folder, "/ "))
	if !uploadFolders[folder] {
		folder = "uploads"
	}

	ext := strings.ToLower(path.Ext(filename))
	if want, ok := imageExtensions[contentType]; ok && ext != want && !(want == ".jpg" && ext == ".jpeg") {
		ext = want
	}

	now := s.now().UTC()
	return fmt.Sprintf("%s/%04d/%02d/%s%s", folder, now.Year(), int(now.Month()), uuid.NewString(), ext)
}
