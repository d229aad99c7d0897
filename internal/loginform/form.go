// Package loginform drives a login form: it submits the entered credentials
// to the login endpoint and updates the page with the outcome.
package loginform

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-admin-status/internal/models"
)

//go:generate mockgen -source=form.go -destination=form_mock.go -package=loginform

// Messages shown to the user and the page opened after a successful login.
const (
	MessageInProgress    = "Logging in..."
	MessageNetworkError  = "Network error"
	MessageLoginFailed   = "Login failed"
	RedirectAfterLoginTo = "/admin.html"
)

// Form exposes the two input fields of the login form.
type Form interface {
	Username() string
	Password() string
}

// View is the part of the page the controller writes to.
type View interface {
	SetMessage(msg string)
	Navigate(path string)
}

// SubmitEvent is the form submission being handled.
type SubmitEvent interface {
	PreventDefault()
}

// Authenticator sends credentials to the login endpoint.
type Authenticator interface {
	Login(ctx context.Context, creds models.LoginRequest) (*models.LoginResponse, error)
}

// Controller handles submissions of one login form.
// Submissions are not serialized: a second submit while one is in flight
// sends a second request.
type Controller struct {
	form Form
	view View
	auth Authenticator
}

// NewController wires a form and its view to an Authenticator.
func NewController(form Form, view View, auth Authenticator) *Controller {
	return &Controller{form: form, view: view, auth: auth}
}

// HandleSubmit runs one login attempt for ev.
func (c *Controller) HandleSubmit(ctx context.Context, ev SubmitEvent) {
	ev.PreventDefault()
	c.view.SetMessage(MessageInProgress)

	creds := models.LoginRequest{
		Username: strings.TrimSpace(c.form.Username()),
		Password: c.form.Password(),
	}

	resp, err := c.auth.Login(ctx, creds)
	if err != nil {
		c.view.SetMessage(MessageNetworkError)
		return
	}

	if !resp.OK {
		msg := resp.Error
		if msg == "" {
			msg = MessageLoginFailed
		}
		c.view.SetMessage(msg)
		return
	}

	c.view.Navigate(RedirectAfterLoginTo)
}
