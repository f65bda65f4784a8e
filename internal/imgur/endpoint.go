// Package imgur describes and executes image upload and delete requests
// against the Imgur API using an anonymous client id.
package imgur

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/blackwell-systems/comiccards/internal/endpoint"
)

// DefaultBaseURL is the Imgur API root.
const DefaultBaseURL = "https://api.imgur.com/3"

// Multipart part metadata for uploads.
const (
	FieldName = "image"
	FileName  = "card.jpg"
	MIMEType  = "image/jpg"
)

var (
	// ErrMissingClientID is returned when no client id is configured.
	ErrMissingClientID = errors.New("imgur: client id is required")
	// ErrMissingDeleteHash is returned when a delete has no token.
	ErrMissingDeleteHash = errors.New("imgur: delete hash is required")
	// ErrNoImage is returned when an upload has no image.
	ErrNoImage = errors.New("imgur: image is required")
)

// Endpoint is the closed set of image host operations: Upload or Delete.
type Endpoint interface {
	build(h *Host) (*endpoint.Request, error)
}

// Upload posts an image as a JPEG.
type Upload struct {
	Image image.Image
}

// Delete removes a previously uploaded image by its deletion token.
type Delete struct {
	DeleteHash string
}

// Host builds request descriptors for one client id.
type Host struct {
	clientID string
	baseURL  string
}

// NewHost creates a descriptor builder. An empty baseURL uses DefaultBaseURL.
func NewHost(clientID, baseURL string) (*Host, error) {
	if clientID == "" {
		return nil, ErrMissingClientID
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Host{clientID: clientID, baseURL: baseURL}, nil
}

// Describe builds the request descriptor for e.
func (h *Host) Describe(e Endpoint) (*endpoint.Request, error) {
	if e == nil {
		return nil, errors.New("imgur: nil endpoint")
	}
	return e.build(h)
}

func (h *Host) header(contentType string) http.Header {
	return http.Header{
		"Authorization": {"Client-ID " + h.clientID},
		"Content-Type":  {contentType},
	}
}

func (u Upload) build(h *Host) (*endpoint.Request, error) {
	if u.Image == nil {
		return nil, ErrNoImage
	}
	body, contentType, err := EncodeMultipart(u.Image)
	if err != nil {
		return nil, err
	}
	return &endpoint.Request{
		Method:  http.MethodPost,
		BaseURL: h.baseURL,
		Path:    "/image",
		Header:  h.header(contentType),
		Body:    body,
	}, nil
}

func (d Delete) build(h *Host) (*endpoint.Request, error) {
	if d.DeleteHash == "" {
		return nil, ErrMissingDeleteHash
	}
	return &endpoint.Request{
		Method:  http.MethodDelete,
		BaseURL: h.baseURL,
		Path:    endpoint.JoinPath("image", d.DeleteHash),
		Header:  h.header("application/json"),
	}, nil
}

// EncodeMultipart encodes img as a maximum-quality JPEG inside a single-part
// multipart form. It returns the body and its Content-Type with boundary.
func EncodeMultipart(img image.Image) ([]byte, string, error) {
	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, img, &jpeg.Options{Quality: 100}); err != nil {
		return nil, "", fmt.Errorf("encoding jpeg: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	// CreateFormFile would force application/octet-stream.
	part := make(textproto.MIMEHeader)
	part.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, FieldName, FileName))
	part.Set("Content-Type", MIMEType)
	w, err := mw.CreatePart(part)
	if err != nil {
		return nil, "", err
	}
	if _, err := w.Write(jpg.Bytes()); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}
