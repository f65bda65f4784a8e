package marvel

import (
	"context"

	"github.com/blackwell-systems/comiccards/internal/endpoint"
)

// Client fetches comics from the catalog.
type Client struct {
	catalog *Catalog
	exec    *endpoint.Client
}

// NewClient wires a descriptor builder to an executor.
func NewClient(catalog *Catalog, exec *endpoint.Client) *Client {
	return &Client{catalog: catalog, exec: exec}
}

// Comics returns the most recent comics, newest first. A nil results list
// in the response comes back as an empty slice.
func (c *Client) Comics(ctx context.Context) ([]Comic, error) {
	req, err := c.catalog.Describe(Comics)
	if err != nil {
		return nil, err
	}
	body, err := c.exec.Do(ctx, req, nil)
	if err != nil {
		return nil, err
	}
	data, err := endpoint.Decode[ComicDataContainer](body)
	if err != nil {
		return nil, err
	}
	if data.Results == nil {
		return []Comic{}, nil
	}
	return data.Results, nil
}
