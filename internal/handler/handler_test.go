package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"AlumniJobForm_Backend/internal/notify"
	"AlumniJobForm_Backend/internal/storage"
	"AlumniJobForm_Backend/internal/uploads"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCaptcha struct {
	ok  bool
	err error
	got []string
}

func (f *fakeCaptcha) Verify(ctx context.Context, response string) (bool, error) {
	f.got = append(f.got, response)
	return f.ok, f.err
}

type fakeNotifier struct {
	mu   sync.Mutex
	acks []notify.Acknowledgement
	err  error
}

func (f *fakeNotifier) Notify(ctx context.Context, ack notify.Acknowledgement) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acks = append(f.acks, ack)
	return f.err
}

type testEnv struct {
	router    *gin.Engine
	store     *storage.Store
	uploadDir string
	captcha   *fakeCaptcha
	notifier  *fakeNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()

	store, err := storage.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	uploadDir := filepath.Join(dir, "uploads")
	uploadStore, err := uploads.NewStore(uploadDir)
	require.NoError(t, err)

	env := &testEnv{
		router:    gin.New(),
		store:     store,
		uploadDir: uploadDir,
		captcha:   &fakeCaptcha{},
		notifier:  &fakeNotifier{},
	}
	New(store, uploadStore, env.captcha, env.notifier).RegisterRoutes(env.router, nil)
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) uploadedFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(e.uploadDir)
	require.NoError(t, err)
	var names []string
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

type upload struct {
	field, filename, content string
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, file *upload) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile(file.field, file.filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, file.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func formFields(name, email string) map[string]string {
	return map[string]string{
		"name":       name,
		"email":      email,
		"contact":    "9876543210",
		"batch":      "2019",
		"location":   "Pune",
		"skillset":   "Go, SQL",
		"company":    "Acme",
		"experience": "3",
		"ctc":        "12",
		"message":    "Looking for backend roles",
	}
}

func urlencodedRequest(target string, fields map[string]string) *http.Request {
	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

var errBoom = errors.New("boom")
