package endpoint

import (
	"bytes"
	"io"
	"net/url"
	"testing"
)

func TestRequestURL(t *testing.T) {
	r := &Request{
		BaseURL: "https://api.example.com/3/",
		Path:    JoinPath("image", "a/b c?d"),
	}
	got, err := r.URL()
	if err != nil {
		t.Fatal(err)
	}
	const want = "https://api.example.com/3/image/a%2Fb%20c%3Fd"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestRequestURL_Query(t *testing.T) {
	r := &Request{
		BaseURL: "https://api.example.com/v1/public",
		Path:    "/comics",
		Query:   url.Values{"limit": {"50"}, "orderBy": {"-onsaleDate"}},
	}
	got, err := r.URL()
	if err != nil {
		t.Fatal(err)
	}
	const want = "https://api.example.com/v1/public/comics?limit=50&orderBy=-onsaleDate"
	if got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestFraction(t *testing.T) {
	cases := []struct {
		sent, total int64
		want        float64
	}{
		{0, 100, 0},
		{50, 100, 0.5},
		{100, 100, 1},
		{150, 100, 1},
		{10, 0, 0},
	}
	for _, c := range cases {
		if got := Fraction(c.sent, c.total); got != c.want {
			t.Errorf("Fraction(%d, %d) = %v, want %v", c.sent, c.total, got, c.want)
		}
	}
}

func TestProgressReader_NilFunc(t *testing.T) {
	data := []byte("hello")
	pr := NewProgressReader(bytes.NewReader(data), int64(len(data)), nil)
	got, err := io.ReadAll(pr)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("read %q", got)
	}
}

func TestProgressReader_ReportsCompletion(t *testing.T) {
	data := make([]byte, 10)
	var last int64
	calls := 0
	pr := NewProgressReader(bytes.NewReader(data), int64(len(data)), func(sent, total int64) {
		calls++
		last = sent
	})
	if _, err := io.ReadAll(pr); err != nil {
		t.Fatal(err)
	}
	if calls != 1 || last != 10 {
		t.Errorf("calls = %d, last = %d; want one report of 10", calls, last)
	}
}
