// Package publish uploads generated PDFs to the hosting collaborator.
package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// DefaultTimeout is the upload request timeout.
const DefaultTimeout = 2 * time.Minute

// Error represents a failed interaction with the hosting endpoint, keeping
// the upstream response body for the surfaced message.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("PDF upload failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("PDF upload failed: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Result is the hosting endpoint's reply.
type Result struct {
	OK        bool   `json:"ok"`
	URL       string `json:"url"`
	GCSURI    string `json:"gcs_uri"`
	ExpiresAt string `json:"expires_at"`
}

// Uploader publishes PDF files to the hosting endpoint with a fixed caller
// identifier and bearer token, both resolved at startup.
type Uploader struct {
	endpoint    string
	token       string
	candidateID string
	httpClient  *http.Client
}

// NewUploader creates an Uploader. The endpoint URL is validated eagerly.
func NewUploader(endpoint, token, candidateID string) (*Uploader, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{Message: fmt.Sprintf("invalid upload endpoint %q", endpoint), Cause: err}
	}

	return &Uploader{
		endpoint:    endpoint,
		token:       token,
		candidateID: candidateID,
		httpClient:  &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// Upload sends the PDF at pdfPath as a multipart form and returns the
// hosted public URL. The call is attempted exactly once.
func (u *Uploader) Upload(ctx context.Context, pdfPath string) (string, error) {
	fileName := filepath.Base(pdfPath)

	pdfData, err := os.ReadFile(pdfPath)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("PDF file not found at path: %s", pdfPath), Cause: err}
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pdf"; filename=%q`, fileName))
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", &Error{Message: "failed to build multipart body", Cause: err}
	}
	if _, err := part.Write(pdfData); err != nil {
		return "", &Error{Message: "failed to build multipart body", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return "", &Error{Message: "failed to build multipart body", Cause: err}
	}

	uploadURL, err := url.Parse(u.endpoint)
	if err != nil {
		return "", &Error{Message: "invalid upload endpoint", Cause: err}
	}
	query := uploadURL.Query()
	query.Set("candidate_id", u.candidateID)
	query.Set("file_name", fileName)
	uploadURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL.String(), &body)
	if err != nil {
		return "", &Error{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+u.token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", &Error{Message: "upload request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Message: "failed to read upload response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Message: fmt.Sprintf("HTTP status %d - %s", resp.StatusCode, string(respBody))}
	}

	var result Result
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &Error{Message: "failed to parse upload response", Cause: err}
	}

	return result.URL, nil
}
