package endpoint

import "io"

// ProgressFunc receives upload progress as bytes sent out of total.
type ProgressFunc func(sent, total int64)

// Fraction converts a progress report to the 0..1 range.
func Fraction(sent, total int64) float64 {
	if total <= 0 {
		return 0
	}
	f := float64(sent) / float64(total)
	if f > 1 {
		return 1
	}
	return f
}

// defaultReportInterval keeps small card uploads from producing a report for
// every transport write while still giving the bar several steps.
const defaultReportInterval = 16 * 1024

// ProgressReader wraps an io.Reader and reports every interval bytes (and
// once more at the end) through fn.
type ProgressReader struct {
	reader     io.Reader
	total      int64
	read       int64
	lastReport int64
	interval   int64
	fn         ProgressFunc
}

// NewProgressReader creates a reader that reports progress to fn.
// A nil fn turns it into a plain pass-through reader.
func NewProgressReader(r io.Reader, total int64, fn ProgressFunc) *ProgressReader {
	return &ProgressReader{
		reader:   r,
		total:    total,
		interval: defaultReportInterval,
		fn:       fn,
	}
}

func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	pr.read += int64(n)

	if pr.fn != nil && n > 0 {
		sinceLast := pr.read - pr.lastReport
		isComplete := err == io.EOF || pr.read >= pr.total
		if sinceLast >= pr.interval || isComplete {
			pr.fn(pr.read, pr.total)
			pr.lastReport = pr.read
		}
	}
	return n, err
}
