package imgur_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/blackwell-systems/comiccards/internal/endpoint"
	"github.com/blackwell-systems/comiccards/internal/imgur"
)

func testImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func newHost(t *testing.T) *imgur.Host {
	t.Helper()
	h, err := imgur.NewHost("abc123", "")
	if err != nil {
		t.Fatal(err)
	}
	return h
}

// readSinglePart parses a multipart request body and returns its only part.
func readSinglePart(t *testing.T, req *endpoint.Request) (*multipart.Part, []byte) {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	if err != nil {
		t.Fatalf("parse content type: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mediaType)
	}
	mr := multipart.NewReader(bytes.NewReader(req.Body), params["boundary"])
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("NextPart: %v", err)
	}
	data, err := io.ReadAll(part)
	if err != nil {
		t.Fatalf("read part: %v", err)
	}
	if _, err := mr.NextPart(); err != io.EOF {
		t.Errorf("expected exactly one part, NextPart err = %v", err)
	}
	return part, data
}

func TestNewHost_MissingClientID(t *testing.T) {
	if _, err := imgur.NewHost("", ""); !errors.Is(err, imgur.ErrMissingClientID) {
		t.Errorf("err = %v, want ErrMissingClientID", err)
	}
}

func TestDescribe_Upload(t *testing.T) {
	req, err := newHost(t).Describe(imgur.Upload{Image: testImage(8, 8, color.White)})
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if req.Method != http.MethodPost {
		t.Errorf("Method = %q, want POST", req.Method)
	}
	if req.BaseURL != imgur.DefaultBaseURL || req.Path != "/image" {
		t.Errorf("URL = %s%s", req.BaseURL, req.Path)
	}
	if got := req.Header.Get("Authorization"); got != "Client-ID abc123" {
		t.Errorf("Authorization = %q", got)
	}

	part, data := readSinglePart(t, req)
	if part.FormName() != "image" {
		t.Errorf("field name = %q, want image", part.FormName())
	}
	if part.FileName() != "card.jpg" {
		t.Errorf("filename = %q, want card.jpg", part.FileName())
	}
	if ct := part.Header.Get("Content-Type"); ct != "image/jpg" {
		t.Errorf("part Content-Type = %q, want image/jpg", ct)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("part is not a JPEG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("decoded size = %v", b)
	}
}

func TestDescribe_UploadShapeIndependentOfContent(t *testing.T) {
	images := []image.Image{
		testImage(1, 1, color.Black),
		testImage(64, 16, color.RGBA{R: 255, A: 255}),
		image.NewGray(image.Rect(0, 0, 3, 7)),
	}
	for i, img := range images {
		req, err := newHost(t).Describe(imgur.Upload{Image: img})
		if err != nil {
			t.Fatalf("image %d: %v", i, err)
		}
		part, _ := readSinglePart(t, req)
		if part.FormName() != "image" || part.FileName() != "card.jpg" || part.Header.Get("Content-Type") != "image/jpg" {
			t.Errorf("image %d: part = %q %q %q", i, part.FormName(), part.FileName(), part.Header.Get("Content-Type"))
		}
	}
}

func TestDescribe_UploadNoImage(t *testing.T) {
	if _, err := newHost(t).Describe(imgur.Upload{}); !errors.Is(err, imgur.ErrNoImage) {
		t.Errorf("err = %v, want ErrNoImage", err)
	}
}

func TestDescribe_Delete(t *testing.T) {
	cases := []struct{ token, wantPath string }{
		{"a1b2c3", "/image/a1b2c3"},
		{"with space", "/image/with%20space"},
		{"slash/inside", "/image/slash%2Finside"},
		{"q?x=1#frag", "/image/q%3Fx=1%23frag"},
		{"ünï", "/image/%C3%BCn%C3%AF"},
	}
	for _, c := range cases {
		req, err := newHost(t).Describe(imgur.Delete{DeleteHash: c.token})
		if err != nil {
			t.Fatalf("Describe(%q): %v", c.token, err)
		}
		if req.Method != http.MethodDelete {
			t.Errorf("Method = %q, want DELETE", req.Method)
		}
		if req.Path != c.wantPath {
			t.Errorf("Path for %q = %q, want %q", c.token, req.Path, c.wantPath)
		}
		if req.Body != nil {
			t.Errorf("delete has a body: %q", req.Body)
		}
		if got := req.Header.Get("Authorization"); got != "Client-ID abc123" {
			t.Errorf("Authorization = %q", got)
		}
		if got := req.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
	}
}

func TestDescribe_DeleteEmptyToken(t *testing.T) {
	if _, err := newHost(t).Describe(imgur.Delete{}); !errors.Is(err, imgur.ErrMissingDeleteHash) {
		t.Errorf("err = %v, want ErrMissingDeleteHash", err)
	}
}
