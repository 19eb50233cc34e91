package odp

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// DownloadOptions controls where and how a file is saved.
type DownloadOptions struct {
	// Destination is the target directory, created when missing. Empty means the working directory.
	Destination string
	// FileName overrides the name derived from the record.
	FileName string
	// Overwrite replaces an existing file or extraction directory.
	Overwrite bool
	// Extract unpacks .zip, .tar, .tar.gz and .tgz downloads into a sibling
	// directory named after the archive, and returns that directory.
	Extract bool
	// Progress is called as bytes are written.
	Progress ProgressFunc
}

// DownloadFile saves a bulk data file and returns the path written.
func (c *Client) DownloadFile(ctx context.Context, file FileData, opts DownloadOptions) (string, error) {
	uri := deref(file.FileDownloadURI)
	if uri == "" {
		return "", fmt.Errorf("file %q: %w", file.FileName, ErrMissingDownloadURL)
	}
	name := file.FileName
	if name == "" {
		name = lastSegment(uri)
	}
	return c.download(ctx, "DownloadFile", uri, name, opts)
}

// DownloadFileTo streams a bulk data file into dst.
func (c *Client) DownloadFileTo(ctx context.Context, file FileData, dst io.Writer, progressFn ProgressFunc) error {
	uri := deref(file.FileDownloadURI)
	if uri == "" {
		return fmt.Errorf("file %q: %w", file.FileName, ErrMissingDownloadURL)
	}
	resp, err := c.stream(ctx, "DownloadFileTo", uri)
	if err != nil {
		return err
	}
	defer resp.Close()

	_, err = io.Copy(dst, withProgress(resp.Stream, resp.ContentLength, progressFn))
	return err
}

// DownloadDocument saves one format of a file wrapper document. Without a
// FileName the name is taken from the URL, or document.<mime type> when the
// URL has no extension.
func (c *Client) DownloadDocument(ctx context.Context, format DocumentFormat, opts DownloadOptions) (string, error) {
	uri := deref(format.DownloadURL)
	if uri == "" {
		return "", fmt.Errorf("document format: %w", ErrMissingDownloadURL)
	}
	name := lastSegment(uri)
	if !strings.Contains(name, ".") {
		ext := strings.ToLower(deref(format.MimeTypeIdentifier))
		if ext == "" {
			ext = "pdf"
		}
		name = "document." + ext
	}
	return c.download(ctx, "DownloadDocument", uri, name, opts)
}

// DownloadArchive saves the full-text XML of a publication or grant. Without
// a FileName the XML file name from the metadata is used, then the URL, then
// <product identifier>.xml.
func (c *Client) DownloadArchive(ctx context.Context, meta PrintedMetaData, opts DownloadOptions) (string, error) {
	uri := deref(meta.FileLocationURI)
	if uri == "" {
		return "", fmt.Errorf("printed metadata: %w", ErrMissingDownloadURL)
	}
	name := deref(meta.XMLFileName)
	if name == "" {
		name = lastSegment(uri)
	}
	if !strings.Contains(name, ".") {
		product := deref(meta.ProductIdentifier)
		if product == "" {
			product = "patent_text"
		}
		name = product + ".xml"
	}
	return c.download(ctx, "DownloadArchive", uri, name, opts)
}

// stream issues a streaming GET. Relative URIs are resolved against the base URL.
func (c *Client) stream(ctx context.Context, op, uri string) (*RawResponse, error) {
	if !strings.Contains(uri, "://") {
		uri = c.config.BaseURL + "/" + strings.TrimLeft(uri, "/")
	}
	return c.call(ctx, op, &Request{Method: http.MethodGet, URL: uri, Stream: true})
}

func (c *Client) download(ctx context.Context, op, uri, name string, opts DownloadOptions) (string, error) {
	if opts.FileName != "" {
		name = opts.FileName
	}
	if name == "" || !filepath.IsLocal(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	dir := opts.Destination
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, name)
	if !opts.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", &AlreadyExistsError{Path: path}
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	resp, err := c.stream(ctx, op, uri)
	if err != nil {
		return "", err
	}
	defer resp.Close()

	if err := writeAtomic(path, withProgress(resp.Stream, resp.ContentLength, opts.Progress)); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	c.logger.DebugContext(ctx, "downloaded file", "op", op, "path", path)

	if !opts.Extract {
		return path, nil
	}
	kind := archiveKind(name)
	if kind == "" {
		return path, nil
	}
	target := strings.TrimSuffix(path, archiveSuffix(name))
	if !opts.Overwrite {
		if _, err := os.Stat(target); err == nil {
			return "", &AlreadyExistsError{Path: target}
		}
	}
	if err := extractArchive(path, target, kind); err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	c.logger.DebugContext(ctx, "extracted archive", "archive", path, "dir", target)
	return target, nil
}

// downloadFileMode replaces the owner-only mode os.CreateTemp gives the temporary file.
const downloadFileMode os.FileMode = 0o644

// writeAtomic copies r into a temporary file next to path and renames it into place.
func writeAtomic(path string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".odp-download-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(downloadFileMode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// archiveKind classifies name by extension. Non-archives give "".
func archiveKind(name string) FileTypeCategory {
	suffix := archiveSuffix(name)
	if suffix == "" {
		return ""
	}
	return ParseFileTypeCategory(strings.TrimPrefix(suffix, "."))
}

func archiveSuffix(name string) string {
	lower := strings.ToLower(name)
	for _, suffix := range []string{".tar.gz", ".tgz", ".tar", ".zip"} {
		if strings.HasSuffix(lower, suffix) {
			return name[len(name)-len(suffix):]
		}
	}
	return ""
}

func extractArchive(src, dst string, kind FileTypeCategory) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	if kind == FileTypeZip {
		return extractZip(src, dst)
	}

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	var r io.Reader = f
	if kind == FileTypeTarGz {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return err
		}
		defer gz.Close()
		r = gz
	}
	return extractTar(r, dst)
}

// entryPath joins an archive entry name onto dst, rejecting names that escape it.
func entryPath(dst, name string) (string, error) {
	clean := filepath.FromSlash(strings.TrimPrefix(name, "./"))
	if !filepath.IsLocal(clean) {
		return "", fmt.Errorf("archive entry %q escapes destination", name)
	}
	return filepath.Join(dst, clean), nil
}

func extractTar(r io.Reader, dst string) error {
	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if header.Name == "./" || header.Name == "." {
			continue
		}
		target, err := entryPath(dst, header.Name)
		if err != nil {
			return err
		}
		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr); err != nil {
				return err
			}
		}
	}
}

func extractZip(src, dst string) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer zr.Close()

	for _, f := range zr.File {
		target, err := entryPath(dst, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if !f.Mode().IsRegular() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeEntry(target, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func writeEntry(target string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
