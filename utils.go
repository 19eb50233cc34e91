package odp

import (
	"io"
	"strings"
)

// ProgressFunc is called as a download advances. totalBytes is -1 when the
// server did not send a Content-Length.
type ProgressFunc func(bytesWritten, totalBytes int64)

// progressReader wraps an io.Reader to track progress
type progressReader struct {
	reader     io.Reader
	total      int64
	current    int64
	progressFn ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	pr.current += int64(n)
	if pr.progressFn != nil && n > 0 {
		pr.progressFn(pr.current, pr.total)
	}
	return n, err
}

// withProgress wraps r when fn is set.
func withProgress(r io.Reader, total int64, fn ProgressFunc) io.Reader {
	if fn == nil {
		return r
	}
	return &progressReader{reader: r, total: total, progressFn: fn}
}

// lastSegment returns the part of a URL path after the final slash,
// without any query string.
func lastSegment(uri string) string {
	if i := strings.IndexAny(uri, "?#"); i >= 0 {
		uri = uri[:i]
	}
	return uri[strings.LastIndex(uri, "/")+1:]
}
