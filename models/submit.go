package models

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// ============================================================================
// Submitter
//
// Orchestrates the one network action the form performs: a single
// best-effort POST of the current form contents to the signup service.
//
// Design decisions:
//   - The busy flag (atomic CompareAndSwap) is the sole concurrency
//     primitive; it serializes submissions to at most one in flight.
//     It is cleared via defer so every exit path — transport failure,
//     non-2xx, even a panicking notifier — releases it exactly once.
//   - The payload is a value snapshot taken at submit time; keystrokes
//     arriving mid-flight mutate the form but not the issued request.
//   - The guard on form validity is enforced here, independently of any
//     disabled submit button in the UI — disablement is advisory.
//   - No retry, no backoff: one attempt per user-initiated submit.
// ============================================================================

// Notifier displays a transient message to the user. Fire-and-forget;
// no return value is consumed.
type Notifier interface {
	Notify(message string)
}

// SubmitOutcome classifies one call to Submit.
type SubmitOutcome int

const (
	SubmitInvalid SubmitOutcome = iota // form not valid; nothing issued, nothing shown
	SubmitBusy                         // a submission is already in flight; rejected
	SubmitSuccess                      // request accepted by the service
	SubmitFailure                      // transport error or non-2xx response
)

// User-facing toast text. Failure text is deliberately identical for
// every cause — network down, rejected, server error — the user gets
// one generic message and keeps their input for retry.
const (
	successMessage = "Account created. Welcome aboard!"
	failureMessage = "Signup failed. Please try again."
)

// signupPayload is the wire shape of the signup request body.
type signupPayload struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Submitter performs signup submissions for a form.
type Submitter struct {
	cfg        *Config
	form       *FormInput
	notifier   Notifier
	httpClient *http.Client
	busy       atomic.Bool // True while a submission is in flight
}

// NewSubmitter wires a submitter to its form, notifier, and validated
// configuration. The base URL comes from cfg only — nothing here reads
// the environment.
func NewSubmitter(cfg *Config, form *FormInput, notifier Notifier) *Submitter {
	return &Submitter{
		cfg:      cfg,
		form:     form,
		notifier: notifier,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Busy reports whether a submission is currently in flight.
func (s *Submitter) Busy() bool {
	return s.busy.Load()
}

// Submit runs one submission attempt against the current form state.
//
// Gating happens in two layers: an invalid form is a silent no-op, and
// a second submit while one is in flight is rejected without touching
// the network. On success the notifier fires and the form resets to
// defaults; on failure the notifier fires and the form is preserved.
// The returned error carries detail for logging only — it never reaches
// the user, who sees just the fixed toast text.
func (s *Submitter) Submit(ctx context.Context) (SubmitOutcome, error) {
	if !FormValid(*s.form) {
		return SubmitInvalid, nil
	}

	if !s.busy.CompareAndSwap(false, true) {
		return SubmitBusy, nil
	}
	defer s.busy.Store(false)

	// Capture the payload now — the form stays live while the request
	// is in flight, but the request is sealed at this point.
	snap := s.form.Snapshot()

	if err := s.post(ctx, snap); err != nil {
		s.notifier.Notify(failureMessage)
		return SubmitFailure, serr.Wrap(err, "signup submission failed")
	}

	logger.Info("Signup accepted", "username", snap.Username)
	s.notifier.Notify(successMessage)
	s.form.Reset()
	return SubmitSuccess, nil
}

// post sends the signup request and classifies the response. The
// response body is not consumed beyond status classification.
func (s *Submitter) post(ctx context.Context, snap FormInput) error {
	url := strings.TrimRight(s.cfg.BaseURL, "/") + "/signup"

	body, err := json.Marshal(signupPayload{
		Email:    snap.Email,
		Username: snap.Username,
		Password: snap.Password,
	})
	if err != nil {
		return serr.Wrap(err, "failed to marshal signup request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return serr.Wrap(err, "failed to create signup request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return serr.Wrap(err, "signup request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return serr.New(fmt.Sprintf("signup returned status %d", resp.StatusCode))
	}
	return nil
}
