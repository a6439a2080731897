package models

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// stubNotifier records toast messages for assertions.
type stubNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *stubNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *stubNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

func testConfig(baseURL string) *Config {
	return &Config{BaseURL: baseURL, Timeout: 5 * time.Second}
}

func validForm() *FormInput {
	return &FormInput{Email: "a@b.com", Username: "bob", Password: "Sup3r$ecret"}
}

// TestSubmitSuccess walks the happy path end to end: exactly one POST
// with the exact JSON body, one success toast, and a form reset.
func TestSubmitSuccess(t *testing.T) {
	var requests atomic.Int32
	var gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	form := validForm()
	notifier := &stubNotifier{}
	sub := NewSubmitter(testConfig(srv.URL), form, notifier)

	outcome, err := sub.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}
	if outcome != SubmitSuccess {
		t.Fatalf("Submit() outcome = %v, want SubmitSuccess", outcome)
	}

	if got := requests.Load(); got != 1 {
		t.Errorf("expected exactly 1 request, got %d", got)
	}
	if gotPath != "/signup" {
		t.Errorf("expected POST to /signup, got %q", gotPath)
	}
	want := map[string]string{"email": "a@b.com", "username": "bob", "password": "Sup3r$ecret"}
	for k, v := range want {
		if gotBody[k] != v {
			t.Errorf("body[%q] = %q, want %q", k, gotBody[k], v)
		}
	}

	msgs := notifier.all()
	if len(msgs) != 1 || msgs[0] != successMessage {
		t.Errorf("expected exactly one success toast, got %v", msgs)
	}

	if *form != (FormInput{}) {
		t.Errorf("expected form reset after success, got %+v", form)
	}
	if sub.Busy() {
		t.Error("busy flag still set after success")
	}
}

// TestSubmitFailurePreservesForm verifies a non-2xx response yields one
// failure toast and leaves user input untouched for retry.
func TestSubmitFailurePreservesForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	form := validForm()
	notifier := &stubNotifier{}
	sub := NewSubmitter(testConfig(srv.URL), form, notifier)

	outcome, err := sub.Submit(context.Background())
	if outcome != SubmitFailure {
		t.Fatalf("Submit() outcome = %v, want SubmitFailure", outcome)
	}
	if err == nil {
		t.Error("expected a wrapped error for logging on failure")
	}

	msgs := notifier.all()
	if len(msgs) != 1 || msgs[0] != failureMessage {
		t.Errorf("expected exactly one failure toast, got %v", msgs)
	}

	if form.Email != "a@b.com" || form.Username != "bob" || form.Password != "Sup3r$ecret" {
		t.Errorf("expected form preserved after failure, got %+v", form)
	}
	if sub.Busy() {
		t.Error("busy flag still set after failure")
	}
}

// TestSubmitTransportError covers the unreachable-server case: same
// generic failure toast, form preserved, busy released.
func TestSubmitTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Deliberately dead endpoint

	form := validForm()
	notifier := &stubNotifier{}
	sub := NewSubmitter(testConfig(srv.URL), form, notifier)

	outcome, err := sub.Submit(context.Background())
	if outcome != SubmitFailure {
		t.Fatalf("Submit() outcome = %v, want SubmitFailure", outcome)
	}
	if err == nil {
		t.Error("expected an error for logging on transport failure")
	}
	if msgs := notifier.all(); len(msgs) != 1 || msgs[0] != failureMessage {
		t.Errorf("expected exactly one failure toast, got %v", msgs)
	}
	if sub.Busy() {
		t.Error("busy flag still set after transport failure")
	}
}

// TestSubmitInvalidFormIsSilentNoop verifies the guard holds even
// though the UI also disables the button — no request, no toast.
func TestSubmitInvalidFormIsSilentNoop(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	form := &FormInput{Email: "a@b.com", Username: "   ", Password: "Sup3r$ecret"}
	notifier := &stubNotifier{}
	sub := NewSubmitter(testConfig(srv.URL), form, notifier)

	outcome, err := sub.Submit(context.Background())
	if outcome != SubmitInvalid || err != nil {
		t.Fatalf("Submit() = (%v, %v), want (SubmitInvalid, nil)", outcome, err)
	}
	if got := requests.Load(); got != 0 {
		t.Errorf("expected no network traffic for invalid form, got %d requests", got)
	}
	if len(notifier.all()) != 0 {
		t.Errorf("expected no toast for invalid form, got %v", notifier.all())
	}
}

// TestSubmitWhileBusyIsRejected holds the first request open on the
// server side and confirms a second submit is rejected without issuing
// a second network call.
func TestSubmitWhileBusyIsRejected(t *testing.T) {
	var requests atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		close(entered)
		<-release
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	form := validForm()
	notifier := &stubNotifier{}
	sub := NewSubmitter(testConfig(srv.URL), form, notifier)

	done := make(chan SubmitOutcome, 1)
	go func() {
		outcome, _ := sub.Submit(context.Background())
		done <- outcome
	}()

	// Wait until the first request is in flight
	<-entered

	outcome, err := sub.Submit(context.Background())
	if outcome != SubmitBusy || err != nil {
		t.Errorf("second Submit() = (%v, %v), want (SubmitBusy, nil)", outcome, err)
	}

	close(release)
	if first := <-done; first != SubmitSuccess {
		t.Errorf("first Submit() outcome = %v, want SubmitSuccess", first)
	}

	if got := requests.Load(); got != 1 {
		t.Errorf("expected exactly 1 network call, got %d", got)
	}
	if sub.Busy() {
		t.Error("busy flag still set after in-flight submission drained")
	}
}

// TestSubmitPayloadIsSnapshot verifies keystrokes arriving mid-flight
// do not alter the already-issued request body.
func TestSubmitPayloadIsSnapshot(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		close(entered)
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	form := validForm()
	notifier := &stubNotifier{}
	sub := NewSubmitter(testConfig(srv.URL), form, notifier)

	done := make(chan struct{})
	go func() {
		sub.Submit(context.Background())
		close(done)
	}()

	<-entered
	form.SetEmail("typed@mid.flight") // UI stays live while submitting
	close(release)
	<-done

	if gotBody["email"] != "a@b.com" {
		t.Errorf("in-flight edit leaked into payload: %v", gotBody)
	}
}
