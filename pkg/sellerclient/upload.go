package sellerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// UploadFile pushes one file with its declared kind to the upload
// endpoint and returns the stored location. Remote failures are
// propagated as-is (status and body); there is no retry.
func (c *Client) UploadFile(ctx context.Context, file FileAttachment, kind FileKind) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", file.Filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(file.Content); err != nil {
		return "", err
	}
	if err := w.WriteField("type", string(kind)); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upload failed: status %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("upload response is not valid JSON: %w", err)
	}
	return out.URL, nil
}
