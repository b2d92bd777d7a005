package moonraker

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
)

// FilesClient wraps the /server/files endpoints: browsing, moving, and
// uploading files on the printer host.
type FilesClient struct {
	base string
	hc   *http.Client
}

// Roots retrieves the list of registered root directories.
func (f *FilesClient) Roots(ctx context.Context) (map[string]any, error) {
	return doJSON(ctx, f.hc, http.MethodGet, f.base+"files/roots", nil)
}

// GCodes retrieves the list of G-code files under the gcodes root.
func (f *FilesClient) GCodes(ctx context.Context) (map[string]any, error) {
	return doJSON(ctx, f.hc, http.MethodGet, f.base+"files/list", url.Values{"root": {"gcodes"}})
}

// Metadata retrieves stored metadata for a G-code file.
func (f *FilesClient) Metadata(ctx context.Context, fileName string) (map[string]any, error) {
	return doJSON(ctx, f.hc, http.MethodGet, f.base+"files/metadata", url.Values{"filename": {fileName}})
}

// MetaScan forces a metadata scan of a G-code file.
func (f *FilesClient) MetaScan(ctx context.Context, fileName string) (map[string]any, error) {
	return doJSON(ctx, f.hc, http.MethodPost, f.base+"files/metascan", url.Values{"filename": {fileName}})
}

// Thumbnails retrieves the thumbnails embedded in a G-code file.
func (f *FilesClient) Thumbnails(ctx context.Context, fileName string) (map[string]any, error) {
	return doJSON(ctx, f.hc, http.MethodGet, f.base+"files/thumbnails", url.Values{"filename": {fileName}})
}

// Directory lists the files in a directory, optionally with extended
// metadata.
func (f *FilesClient) Directory(ctx context.Context, path string, extended bool) (map[string]any, error) {
	query := url.Values{"path": {path}, "extended": {strconv.FormatBool(extended)}}
	return doJSON(ctx, f.hc, http.MethodGet, f.base+"files/directory", query)
}

// CreateDirectory creates a directory on the printer host.
func (f *FilesClient) CreateDirectory(ctx context.Context, path string) (map[string]any, error) {
	return doJSON(ctx, f.hc, http.MethodPost, f.base+"files/directory", url.Values{"path": {path}})
}

// DeleteDirectory deletes a directory, recursively when forced.
func (f *FilesClient) DeleteDirectory(ctx context.Context, path string, forced bool) (map[string]any, error) {
	query := url.Values{"path": {path}, "forced": {strconv.FormatBool(forced)}}
	return doJSON(ctx, f.hc, http.MethodDelete, f.base+"files/directory", query)
}

// Move moves a file or directory.
func (f *FilesClient) Move(ctx context.Context, source, destination string) (map[string]any, error) {
	query := url.Values{"source": {source}, "dest": {destination}}
	return doJSON(ctx, f.hc, http.MethodPost, f.base+"files/move", query)
}

// Copy copies a file or directory.
func (f *FilesClient) Copy(ctx context.Context, source, destination string) (map[string]any, error) {
	query := url.Values{"source": {source}, "dest": {destination}}
	return doJSON(ctx, f.hc, http.MethodPost, f.base+"files/copy", query)
}

// CreateZip archives the given files into dest. With storeOnly the entries
// are stored uncompressed.
func (f *FilesClient) CreateZip(ctx context.Context, dest string, files []string, storeOnly bool) (map[string]any, error) {
	query := url.Values{
		"dest":       {dest},
		"items":      files,
		"store_only": {strconv.FormatBool(storeOnly)},
	}
	return doJSON(ctx, f.hc, http.MethodPost, f.base+"files/zip", query)
}

// Download retrieves the raw contents of a file, addressed as "root/name".
func (f *FilesClient) Download(ctx context.Context, filePath string) ([]byte, error) {
	return do(ctx, f.hc, http.MethodGet, f.base+"files/"+filePath, nil)
}

// Delete removes a file from the printer host.
func (f *FilesClient) Delete(ctx context.Context, filePath string) (map[string]any, error) {
	return doJSON(ctx, f.hc, http.MethodDelete, f.base+"files/delete", url.Values{"file": {filePath}})
}

// Upload sends a local file to the printer host under the given root. An
// empty root defaults to "gcodes". A sha256 checksum accompanies the upload
// so the server can verify it; printAfter asks the printer to start the job
// once stored.
func (f *FilesClient) Upload(ctx context.Context, localPath, root, remotePath string, printAfter bool) (map[string]any, error) {
	data, err := os.ReadFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("moonraker: read upload file: %w", err)
	}
	sum := sha256.Sum256(data)

	if root == "" {
		root = "gcodes"
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return nil, fmt.Errorf("moonraker: build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("moonraker: build upload form: %w", err)
	}
	fields := map[string]string{
		"root":     root,
		"checksum": hex.EncodeToString(sum[:]),
		"print":    strconv.FormatBool(printAfter),
	}
	if remotePath != "" {
		fields["path"] = remotePath
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("moonraker: build upload form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("moonraker: build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.base+"files/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("moonraker: create upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := f.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("moonraker: upload: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("moonraker: read upload response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("moonraker: upload: http status %d: %s", resp.StatusCode, body)
	}

	var out map[string]any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("moonraker: decode upload response: %w", err)
	}
	return out, nil
}
