package marvel

import (
	"encoding/json"
	"time"
)

// dateLayout is the catalog's timestamp format, e.g. 2024-01-10T00:00:00-0500.
const dateLayout = "2006-01-02T15:04:05-0700"

// Comic is one catalog item, flattened from the API shape.
type Comic struct {
	ID           int
	Title        string
	Description  *string
	OnsaleDate   time.Time
	ThumbnailURL string
	Characters   []string
}

// ComicDataContainer is the data field of a catalog list response.
type ComicDataContainer struct {
	Offset  int     `json:"offset"`
	Limit   int     `json:"limit"`
	Total   int     `json:"total"`
	Count   int     `json:"count"`
	Results []Comic `json:"results"`
}

type wireComic struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Dates       []struct {
		Type string `json:"type"`
		Date string `json:"date"`
	} `json:"dates"`
	Thumbnail struct {
		Path      string `json:"path"`
		Extension string `json:"extension"`
	} `json:"thumbnail"`
	Characters struct {
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	} `json:"characters"`
}

// UnmarshalJSON decodes the nested API representation.
// Unparseable dates leave OnsaleDate zero; the catalog returns placeholder
// dates such as "-0001-11-30T00:00:00-0500" for unscheduled issues.
func (c *Comic) UnmarshalJSON(data []byte) error {
	var w wireComic
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	c.ID = w.ID
	c.Title = w.Title
	c.Description = w.Description
	if c.Description != nil && *c.Description == "" {
		c.Description = nil
	}

	c.OnsaleDate = time.Time{}
	for _, d := range w.Dates {
		if d.Type != "onsaleDate" {
			continue
		}
		if t, err := time.Parse(dateLayout, d.Date); err == nil {
			c.OnsaleDate = t
		}
		break
	}

	c.ThumbnailURL = ""
	if w.Thumbnail.Path != "" {
		c.ThumbnailURL = w.Thumbnail.Path + "." + w.Thumbnail.Extension
	}

	c.Characters = make([]string, 0, len(w.Characters.Items))
	for _, ch := range w.Characters.Items {
		c.Characters = append(c.Characters, ch.Name)
	}
	return nil
}
