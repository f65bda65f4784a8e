package imgur_test

import (
	"context"
	"errors"
	"image/color"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/blackwell-systems/comiccards/internal/endpoint"
	"github.com/blackwell-systems/comiccards/internal/imgur"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *imgur.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	host, err := imgur.NewHost("abc123", srv.URL+"/3")
	if err != nil {
		t.Fatal(err)
	}
	return imgur.NewClient(host, endpoint.New(srv.Client()))
}

func TestUpload_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/3/image" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("ParseMultipartForm: %v", err)
		}
		if _, fh, err := r.FormFile("image"); err != nil || fh.Filename != "card.jpg" {
			t.Errorf("FormFile(image) = %v, %v", fh, err)
		}
		_, _ = io.WriteString(w, `{"data":{"id":"AbC","link":"https://i.imgur.com/AbC.jpg","deletehash":"dh123"},"success":true,"status":200}`)
	})

	var (
		mu   sync.Mutex
		last float64
	)
	res, err := client.Upload(context.Background(), testImage(32, 32, color.White), func(sent, total int64) {
		mu.Lock()
		last = endpoint.Fraction(sent, total)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if res.Link != "https://i.imgur.com/AbC.jpg" || res.DeleteHash != "dh123" {
		t.Errorf("result = %+v", res)
	}
	mu.Lock()
	defer mu.Unlock()
	if last != 1 {
		t.Errorf("final progress = %v, want 1", last)
	}
}

func TestUpload_MissingFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{}}`)
	})
	_, err := client.Upload(context.Background(), testImage(4, 4, color.White), nil)
	var de *endpoint.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want DecodeError", err)
	}
}

func TestUpload_MissingDeleteHash(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"link":"https://i.imgur.com/x.jpg"}}`)
	})
	_, err := client.Upload(context.Background(), testImage(4, 4, color.White), nil)
	if !endpoint.IsDecode(err) {
		t.Fatalf("err = %v, want DecodeError", err)
	}
}

func TestUpload_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"data":{"link":"x","deletehash":"y"}}`)
	})
	_, err := client.Upload(context.Background(), testImage(4, 4, color.White), nil)
	if !endpoint.IsTransport(err) || endpoint.IsDecode(err) {
		t.Fatalf("err = %v, want TransportError only", err)
	}
}

func TestDelete_Success(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		// Body content is irrelevant for delete.
		_, _ = io.WriteString(w, `not json`)
	})
	if err := client.Delete(context.Background(), "dh/123"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("method = %q", gotMethod)
	}
	if gotPath != "/3/image/dh%2F123" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Client-ID abc123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestDelete_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	err := client.Delete(context.Background(), "gone")
	if !errors.Is(err, endpoint.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete_EmptyTokenNotSent(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	if err := client.Delete(context.Background(), ""); !errors.Is(err, imgur.ErrMissingDeleteHash) {
		t.Errorf("err = %v, want ErrMissingDeleteHash", err)
	}
	if called {
		t.Error("server should not be called for an empty token")
	}
}
