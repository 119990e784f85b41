package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iliyamo/lesson-seat-storefront/internal/model"
)

// LessonRepo encapsulates all calls to the remote lessons API.  It
// depends on an http.Client which carries the request timeout so that a
// stalled remote call can never block the session indefinitely.
type LessonRepo struct {
	base   string       // base URL of the lessons API, without trailing slash
	client *http.Client // shared client with the configured timeout
}

// NewLessonRepo constructs a LessonRepo for the given base URL.  This
// function allows dependency injection of the endpoint in tests and at
// startup.  A non-positive timeout falls back to ten seconds.
func NewLessonRepo(base string, timeout time.Duration) *LessonRepo {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &LessonRepo{
		base:   base,
		client: &http.Client{Timeout: timeout},
	}
}

// FetchLessons retrieves the full catalog from GET /lessons.  The
// result replaces the local catalog wholesale; it is never merged.
func (r *LessonRepo) FetchLessons(ctx context.Context) ([]model.Subject, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.base+"/lessons", nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch lessons: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrCatalogUnavailable, resp.StatusCode)
	}
	var subjects []model.Subject
	if err := json.NewDecoder(resp.Body).Decode(&subjects); err != nil {
		return nil, fmt.Errorf("decode lessons: %w", err)
	}
	return subjects, nil
}

// orderResponse is the accepted-order acknowledgement from POST /order.
type orderResponse struct {
	Message string `json:"message"`
}

// SubmitOrder posts the order to POST /order and returns the optional
// confirmation message from the response body.  Any transport error or
// non-success status is a hard failure; the caller must abort the
// checkout without mutating local state.
func (r *LessonRepo) SubmitOrder(ctx context.Context, order model.Order) (string, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("encode order: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.base+"/order", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit order: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d", ErrOrderRejected, resp.StatusCode)
	}
	var ack orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		// An unreadable body on an accepted order is not a failure;
		// the caller falls back to its default confirmation message.
		return "", nil
	}
	return ack.Message, nil
}

// spacesUpdate is the body of PUT /lessons: an absolute seat count for
// one offering, which makes the update idempotent under retries.
type spacesUpdate struct {
	Subject string `json:"subject"`
	City    string `json:"city"`
	Spaces  int    `json:"spaces"`
}

// UpdateSpaces pushes the current local seat count for one offering to
// PUT /lessons.  The acknowledgement body is not inspected; only an
// outright failure is reported.
func (r *LessonRepo) UpdateSpaces(ctx context.Context, subject, city string, spaces int) error {
	body, err := json.Marshal(spacesUpdate{Subject: subject, City: city, Spaces: spaces})
	if err != nil {
		return fmt.Errorf("encode spaces update: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.base+"/lessons", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("update spaces: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	// Drain so the connection can be reused; content is irrelevant.
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d", ErrUpdateRejected, resp.StatusCode)
	}
	return nil
}
