package application

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"sync"
	"testing"

	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *memoryStore) Put(_ context.Context, key, contentType string, r io.Reader, _ int64) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	s.types[key] = contentType
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memoryStore) PublicURL(key string) string { return "http://cdn.test/" + key }

func (s *memoryStore) Ping(context.Context) error { return nil }

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func TestUpload_StoresImage(t *testing.T) {
	repos, _ := setupMockRepos(t)
	store := newMemoryStore()
	svc := NewUploadService(store, 1024, NewAuditService(repos, zap.NewNop()))

	body := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 600)...)
	res, err := svc.Upload(context.Background(), session(1, user.RoleLandlord), UploadInput{
		Folder:   "properties",
		Filename: "front.PNG",
		Size:     int64(len(body)),
		Body:     bytes.NewReader(body),
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^properties/\d{4}/\d{2}/[0-9a-f-]{36}\.png$`), res.Key)
	assert.Equal(t, "http://cdn.test/"+res.Key, res.URL)
	assert.Equal(t, "image/png", res.ContentType)
	assert.Equal(t, body, store.objects[res.Key])
}

func TestUpload_UnknownFolderFallsBack(t *testing.T) {
	repos, _ := setupMockRepos(t)
	svc := NewUploadService(newMemoryStore(), 1024, NewAuditService(repos, zap.NewNop()))

	res, err := svc.Upload(context.Background(), session(1, user.RoleAdmin), UploadInput{
		Folder:   "../etc",
		Filename: "x",
		Size:     int64(len(pngHeader)),
		Body:     bytes.NewReader(pngHeader),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^uploads/`, res.Key)
	assert.Regexp(t, `\.png$`, res.Key)
}

func TestUpload_Rejections(t *testing.T) {
	repos, _ := setupMockRepos(t)
	svc := NewUploadService(newMemoryStore(), 16, NewAuditService(repos, zap.NewNop()))
	ctx := context.Background()
	sess := session(1, user.RoleAdmin)

	_, err := svc.Upload(ctx, sess, UploadInput{Filename: "a.txt", Size: 5, Body: bytes.NewReader([]byte("hello"))})
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "image", verr.Issues[0].Tag)

	_, err = svc.Upload(ctx, sess, UploadInput{Filename: "a.png", Size: 17, Body: bytes.NewReader(make([]byte, 17))})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "max", verr.Issues[0].Tag)

	_, err = svc.Upload(ctx, nil, UploadInput{Size: 1, Body: bytes.NewReader([]byte{1})})
	assert.Equal(t, ErrInvalidToken, err)
}

func TestUpload_Disabled(t *testing.T) {
	repos, _ := setupMockRepos(t)
	svc := NewUploadService(nil, 16, NewAuditService(repos, zap.NewNop()))

	assert.False(t, svc.Enabled())
	_, err := svc.Upload(context.Background(), session(1, user.RoleAdmin), UploadInput{Size: 1, Body: bytes.NewReader([]byte{1})})
	assert.ErrorIs(t, err, ErrUploadsDisabled)
}
