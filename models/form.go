package models

// FormInput holds the current contents of the registration form.
// Design choices:
// - Fields store raw user-entered text; trimming happens only at
//   validity-check time, never at storage time
// - PasswordVisible is presentation-only (it controls input echo in the
//   UI) and never participates in validity
// - Mutators replace exactly one field each; all mutation happens on the
//   UI event loop, so no locking is needed
type FormInput struct {
	Email           string
	Username        string
	Password        string
	PasswordVisible bool
}

// NewFormInput returns a form with all-empty defaults, the state a
// freshly mounted form starts in and returns to after a successful
// submission.
func NewFormInput() *FormInput {
	return &FormInput{}
}

// SetEmail replaces the email value, preserving all other fields.
func (f *FormInput) SetEmail(email string) {
	f.Email = email
}

// SetUsername replaces the username value, preserving all other fields.
func (f *FormInput) SetUsername(username string) {
	f.Username = username
}

// SetPassword replaces the password value, preserving all other fields.
func (f *FormInput) SetPassword(password string) {
	f.Password = password
}

// TogglePasswordVisible flips the echo toggle. No security meaning —
// it only changes how the password field is rendered.
func (f *FormInput) TogglePasswordVisible() {
	f.PasswordVisible = !f.PasswordVisible
}

// Snapshot returns a value copy of the current form contents.
// The submitter captures its payload from a snapshot taken at submit
// time, so keystrokes arriving while a request is in flight cannot
// alter the already-issued payload.
func (f *FormInput) Snapshot() FormInput {
	return *f
}

// Reset restores the all-empty defaults. Called only after a successful
// submission; failures preserve user input for retry.
func (f *FormInput) Reset() {
	*f = FormInput{}
}
