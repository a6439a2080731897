package devserver

import (
	"fmt"

	"github.com/rohanthewiz/element"
)

// renderIndex generates a small debugging page listing the accounts
// registered during this run of the stub.
func (svc *Service) renderIndex() string {
	usernames := svc.Store.Usernames()
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Title().T("Signup Stub"),
		),
		b.Body("style", "font-family: sans-serif; max-width: 40rem; margin: 2rem auto;").R(
			b.H1().T("Signup Stub"),
			b.P().T(fmt.Sprintf("%d account(s) registered this run. POST /signup to add one.", len(usernames))),
			b.Ul().R(
				func() (x any) {
					if len(usernames) == 0 {
						b.Li().T("No accounts yet")
					} else {
						for _, name := range usernames {
							b.Li().T(name)
						}
					}
					return
				}(),
			),
		),
	)

	return "<!DOCTYPE html>" + b.String()
}
