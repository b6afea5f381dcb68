package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sync"
	"time"

	"github.com/banit/househunt-backend/internal/cache"
	"github.com/banit/househunt-backend/internal/geo"
)

type fakeKVStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeKVStore() *fakeKVStore {
	return &fakeKVStore{data: make(map[string]string)}
}

func (f *fakeKVStore) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeKVStore) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data[key] = value
	return nil
}

func (f *fakeKVStore) Del(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

type fakeGeocoder struct {
	name  string
	calls int
}

func (g *fakeGeocoder) LocationName(ctx context.Context, p geo.Point) string {
	g.calls++
	return g.name
}

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendEmail(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeImageStore struct {
	uploaded []string
	deleted  []string
	err      error
}

func (f *fakeImageStore) UploadProfileImage(ctx context.Context, userID uint, file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	key := profileImageKey(userID, header.Filename)
	f.uploaded = append(f.uploaded, key)
	return &UploadResult{Key: key, URL: "https://images.test/" + key, Size: header.Size}, nil
}

func (f *fakeImageStore) DeleteImage(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

var errSMTPDown = errors.New("smtp down")
