package imgur

import (
	"context"
	"errors"
	"image"

	"github.com/blackwell-systems/comiccards/internal/endpoint"
)

// UploadResult is the data field of a successful upload.
type UploadResult struct {
	ID         string `json:"id"`
	Link       string `json:"link"`
	DeleteHash string `json:"deletehash"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Size       int64  `json:"size"`
}

// Validate rejects results that cannot be shared or deleted later.
func (r *UploadResult) Validate() error {
	switch {
	case r.Link == "":
		return errors.New(`upload result has no "link"`)
	case r.DeleteHash == "":
		return errors.New(`upload result has no "deletehash"`)
	}
	return nil
}

// Client uploads and deletes images.
type Client struct {
	host *Host
	exec *endpoint.Client
}

// NewClient wires a descriptor builder to an executor.
func NewClient(host *Host, exec *endpoint.Client) *Client {
	return &Client{host: host, exec: exec}
}

// Upload sends img and returns its shareable link and deletion token.
// The token must be kept by the caller to delete the image later.
func (c *Client) Upload(ctx context.Context, img image.Image, onProgress endpoint.ProgressFunc) (*UploadResult, error) {
	req, err := c.host.Describe(Upload{Image: img})
	if err != nil {
		return nil, err
	}
	body, err := c.exec.Do(ctx, req, onProgress)
	if err != nil {
		return nil, err
	}
	res, err := endpoint.Decode[UploadResult](body)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete removes the image identified by deleteHash. Success is decided by
// the response status alone.
func (c *Client) Delete(ctx context.Context, deleteHash string) error {
	req, err := c.host.Describe(Delete{DeleteHash: deleteHash})
	if err != nil {
		return err
	}
	_, err = c.exec.Do(ctx, req, nil)
	return err
}
