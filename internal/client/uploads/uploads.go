// Package uploads talks to the external image host. Files go up as
// multipart posts carrying an upload-preset identifier; the host answers
// with a public URL that is then persisted to the backend.
package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// Host is a client for the image-upload endpoint.
type Host struct {
	url    string
	preset string
	hc     *http.Client
}

func NewHost(url, preset string, timeout time.Duration) *Host {
	return &Host{url: url, preset: preset, hc: &http.Client{Timeout: timeout}}
}

// Upload posts one local file and returns the hosted URL.
func (h *Host) Upload(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("multipart file part: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if err := mw.WriteField("upload_preset", h.preset); err != nil {
		return "", fmt.Errorf("multipart preset part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, &body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := h.hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}

	var out struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if out.SecureURL == "" {
		return "", fmt.Errorf("upload of %s returned no url", path)
	}
	return out.SecureURL, nil
}

// UploadAll uploads every file concurrently and returns the hosted URLs in
// the order of paths. Failure is all-or-nothing: one rejected upload fails
// the whole batch and cancels the in-flight ones.
func (h *Host) UploadAll(ctx context.Context, paths []string) ([]string, error) {
	urls := make([]string, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			u, err := h.Upload(ctx, path)
			if err != nil {
				return err
			}
			urls[i] = u
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
