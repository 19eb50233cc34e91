package odp

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zipArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func tarGzArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{Name: "./", Typeflag: tar.TypeDir, Mode: 0o755}))
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     name,
			Typeflag: tar.TypeReg,
			Mode:     0o644,
			Size:     int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

// fileServer serves fixed bodies by path and counts requests.
type fileServer struct {
	bodies   map[string][]byte
	requests atomic.Int32
}

func (s *fileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)
	body, ok := s.bodies[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Write(body)
}

func TestDownloadFile(t *testing.T) {
	srv := &fileServer{bodies: map[string][]byte{
		"/files/ipg240102.xml": []byte("<grant/>"),
		"/files/ipg240102.zip": zipArchive(t, map[string]string{"ipg240102.xml": "<grant/>", "nested/a.txt": "a"}),
		"/files/evil.zip":      zipArchive(t, map[string]string{"../evil.txt": "x"}),
		"/files/bundle.tar.gz": tarGzArchive(t, map[string]string{"./one.xml": "1", "dir/two.xml": "2"}),
	}}
	client, _ := newTestClient(t, srv)
	base := client.config.BaseURL
	ctx := context.Background()

	file := func(name string) FileData {
		uri := base + "/files/" + name
		return FileData{FileName: name, FileDownloadURI: &uri}
	}

	t.Run("Plain", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "created")
		var progress []int64
		path, err := client.DownloadFile(ctx, file("ipg240102.xml"), DownloadOptions{
			Destination: dir,
			Progress:    func(written, _ int64) { progress = append(progress, written) },
		})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "ipg240102.xml"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<grant/>", string(data))
		require.NotEmpty(t, progress)
		assert.Equal(t, int64(8), progress[len(progress)-1])

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temporary files are left behind")

		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, fs.FileMode(0o644), info.Mode().Perm())
		}
	})

	t.Run("RefusesOverwrite", func(t *testing.T) {
		dir := t.TempDir()
		existing := filepath.Join(dir, "ipg240102.xml")
		writeFile(t, existing, "old")
		before := srv.requests.Load()

		_, err := client.DownloadFile(ctx, file("ipg240102.xml"), DownloadOptions{Destination: dir})
		var exists *AlreadyExistsError
		require.ErrorAs(t, err, &exists)
		assert.ErrorIs(t, err, fs.ErrExist)
		assert.Equal(t, existing, exists.Path)
		assert.Equal(t, before, srv.requests.Load(), "nothing is fetched")

		data, _ := os.ReadFile(existing)
		assert.Equal(t, "old", string(data))

		_, err = client.DownloadFile(ctx, file("ipg240102.xml"), DownloadOptions{Destination: dir, Overwrite: true})
		require.NoError(t, err)
		data, _ = os.ReadFile(existing)
		assert.Equal(t, "<grant/>", string(data))
	})

	t.Run("FileNameOverride", func(t *testing.T) {
		dir := t.TempDir()
		path, err := client.DownloadFile(ctx, file("ipg240102.xml"), DownloadOptions{Destination: dir, FileName: "renamed.xml"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "renamed.xml"), path)

		_, err = client.DownloadFile(ctx, file("ipg240102.xml"), DownloadOptions{Destination: dir, FileName: "../escape.xml"})
		assert.ErrorContains(t, err, "invalid file name")
	})

	t.Run("MissingURL", func(t *testing.T) {
		_, err := client.DownloadFile(ctx, FileData{FileName: "x.zip"}, DownloadOptions{})
		assert.ErrorIs(t, err, ErrMissingDownloadURL)
	})

	t.Run("ExtractZip", func(t *testing.T) {
		dir := t.TempDir()
		target, err := client.DownloadFile(ctx, file("ipg240102.zip"), DownloadOptions{Destination: dir, Extract: true})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "ipg240102"), target)

		data, err := os.ReadFile(filepath.Join(target, "nested", "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, "a", string(data))
		assert.FileExists(t, filepath.Join(dir, "ipg240102.zip"))

		require.NoError(t, os.Remove(filepath.Join(dir, "ipg240102.zip")))
		_, err = client.DownloadFile(ctx, file("ipg240102.zip"), DownloadOptions{Destination: dir, Extract: true})
		var exists *AlreadyExistsError
		require.ErrorAs(t, err, &exists)
		assert.Equal(t, target, exists.Path)
	})

	t.Run("ExtractTarGz", func(t *testing.T) {
		dir := t.TempDir()
		target, err := client.DownloadFile(ctx, file("bundle.tar.gz"), DownloadOptions{Destination: dir, Extract: true})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "bundle"), target)

		for name, want := range map[string]string{"one.xml": "1", filepath.Join("dir", "two.xml"): "2"} {
			data, err := os.ReadFile(filepath.Join(target, name))
			require.NoError(t, err)
			assert.Equal(t, want, string(data))
		}
	})

	t.Run("RejectsEscapingEntries", func(t *testing.T) {
		dir := t.TempDir()
		_, err := client.DownloadFile(ctx, file("evil.zip"), DownloadOptions{Destination: dir, Extract: true})
		assert.Error(t, err)
		assert.NoFileExists(t, filepath.Join(filepath.Dir(dir), "evil.txt"))
	})

	t.Run("HTTPError", func(t *testing.T) {
		_, err := client.DownloadFile(ctx, file("absent.zip"), DownloadOptions{Destination: t.TempDir()})
		assert.True(t, IsNotFound(err))
	})
}

func TestDownloadNames(t *testing.T) {
	srv := &fileServer{bodies: map[string][]byte{
		"/docs/D1":            []byte("%PDF"),
		"/docs/D2.xml":        []byte("<doc/>"),
		"/text/ipa201105.zip": []byte("zip"),
		"/text/latest":        []byte("<xml/>"),
	}}
	client, _ := newTestClient(t, srv)
	ctx := context.Background()

	t.Run("DocumentFromMimeType", func(t *testing.T) {
		dir := t.TempDir()
		path, err := client.DownloadDocument(ctx, DocumentFormat{
			MimeTypeIdentifier: strPtr("PDF"),
			DownloadURL:        strPtr("/docs/D1"),
		}, DownloadOptions{Destination: dir})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "document.pdf"), path)
	})

	t.Run("DocumentFromURL", func(t *testing.T) {
		dir := t.TempDir()
		path, err := client.DownloadDocument(ctx, DocumentFormat{DownloadURL: strPtr(client.config.BaseURL + "/docs/D2.xml?x=1")},
			DownloadOptions{Destination: dir})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "D2.xml"), path)
	})

	t.Run("ArchiveFromXMLFileName", func(t *testing.T) {
		dir := t.TempDir()
		path, err := client.DownloadArchive(ctx, PrintedMetaData{
			FileLocationURI: strPtr("text/ipa201105.zip"),
			XMLFileName:     strPtr("ipa201105.xml"),
		}, DownloadOptions{Destination: dir})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "ipa201105.xml"), path)
	})

	t.Run("ArchiveFromProduct", func(t *testing.T) {
		dir := t.TempDir()
		path, err := client.DownloadArchive(ctx, PrintedMetaData{
			FileLocationURI:   strPtr("/text/latest"),
			ProductIdentifier: strPtr("PTGRXML"),
		}, DownloadOptions{Destination: dir})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "PTGRXML.xml"), path)
	})

	t.Run("MissingURL", func(t *testing.T) {
		_, err := client.DownloadArchive(ctx, PrintedMetaData{}, DownloadOptions{})
		assert.True(t, errors.Is(err, ErrMissingDownloadURL))
		_, err = client.DownloadDocument(ctx, DocumentFormat{}, DownloadOptions{})
		assert.True(t, errors.Is(err, ErrMissingDownloadURL))
	})
}

func TestDownloadFileTo(t *testing.T) {
	body := []byte(strings.Repeat("x", 4096))
	client, _ := newTestClient(t, &fileServer{bodies: map[string][]byte{"/f.bin": body}})

	var buf bytes.Buffer
	var last, total int64
	err := client.DownloadFileTo(context.Background(), FileData{FileDownloadURI: strPtr("/f.bin")}, &buf,
		func(written, size int64) { last, total = written, size })
	require.NoError(t, err)
	assert.Equal(t, body, buf.Bytes())
	assert.Equal(t, int64(len(body)), last)
	assert.Equal(t, int64(len(body)), total)
}

func TestEntryPath(t *testing.T) {
	dst := t.TempDir()
	got, err := entryPath(dst, "./a/b.xml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dst, "a", "b.xml"), got)

	for _, name := range []string{"../x", "a/../../x", "/etc/passwd"} {
		_, err := entryPath(dst, name)
		assert.ErrorContains(t, err, "escapes destination", name)
	}
}

func TestArchiveKind(t *testing.T) {
	assert.Equal(t, FileTypeZip, archiveKind("a.ZIP"))
	assert.Equal(t, FileTypeTarGz, archiveKind("a.tar.gz"))
	assert.Equal(t, FileTypeTarGz, archiveKind("a.tgz"))
	assert.Equal(t, FileTypeTar, archiveKind("a.tar"))
	assert.Equal(t, FileTypeCategory(""), archiveKind("a.xml"))
	assert.Equal(t, ".ZIP", archiveSuffix("a.ZIP"))
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "a.zip", lastSegment("https://x.test/p/a.zip?sig=1"))
	assert.Equal(t, "D1", lastSegment("/docs/D1#page=2"))
	assert.Equal(t, "", lastSegment("https://x.test/p/"))
}
