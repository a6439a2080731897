package models

import "testing"

// TestMutatorsTouchOnlyTheirField verifies each setter replaces exactly
// one field and preserves the rest.
func TestMutatorsTouchOnlyTheirField(t *testing.T) {
	f := NewFormInput()

	f.SetEmail("a@b.com")
	f.SetUsername("bob")
	f.SetPassword("Sup3r$ecret")

	if f.Email != "a@b.com" || f.Username != "bob" || f.Password != "Sup3r$ecret" {
		t.Fatalf("unexpected form contents: %+v", f)
	}

	f.SetEmail("c@d.org")
	if f.Username != "bob" || f.Password != "Sup3r$ecret" {
		t.Errorf("SetEmail disturbed other fields: %+v", f)
	}

	f.TogglePasswordVisible()
	if !f.PasswordVisible {
		t.Error("expected visibility toggle to flip to true")
	}
	if f.Email != "c@d.org" || f.Password != "Sup3r$ecret" {
		t.Errorf("TogglePasswordVisible disturbed other fields: %+v", f)
	}
	f.TogglePasswordVisible()
	if f.PasswordVisible {
		t.Error("expected second toggle to flip back to false")
	}
}

// TestSnapshotIsAValueCopy verifies mutations after a snapshot do not
// leak into the captured payload.
func TestSnapshotIsAValueCopy(t *testing.T) {
	f := NewFormInput()
	f.SetEmail("a@b.com")
	f.SetPassword("Sup3r$ecret")

	snap := f.Snapshot()

	// Keystrokes arriving after capture must not alter the snapshot
	f.SetEmail("changed@later.com")
	f.SetPassword("different")

	if snap.Email != "a@b.com" || snap.Password != "Sup3r$ecret" {
		t.Errorf("snapshot mutated by later edits: %+v", snap)
	}
}

// TestReset restores the all-empty defaults.
func TestReset(t *testing.T) {
	f := NewFormInput()
	f.SetEmail("a@b.com")
	f.SetUsername("bob")
	f.SetPassword("Sup3r$ecret")
	f.TogglePasswordVisible()

	f.Reset()

	if *f != (FormInput{}) {
		t.Errorf("Reset left residue: %+v", f)
	}
}
