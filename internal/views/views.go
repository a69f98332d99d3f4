// Package views renders the HTML pages from templates embedded at build time.
package views

import (
	"embed"
	"html/template"
	"io"

	"github.com/sbilibin2017/account-pages/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Pages renders the application's HTML pages.
type Pages struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Pages, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Pages{tmpl: tmpl}, nil
}

type formData struct {
	Message string
}

type profileData struct {
	Username string
	Email    string
}

// Login renders the login form. A non-empty message is shown above the form.
func (p *Pages) Login(w io.Writer, message string) error {
	return p.tmpl.ExecuteTemplate(w, "login.html", formData{Message: message})
}

// Signup renders the signup form. A non-empty message is shown above the form.
func (p *Pages) Signup(w io.Writer, message string) error {
	return p.tmpl.ExecuteTemplate(w, "signup.html", formData{Message: message})
}

// Home renders the profile page for the authenticated user.
func (p *Pages) Home(w io.Writer, user *models.User) error {
	return p.tmpl.ExecuteTemplate(w, "home.html", profileData{
		Username: user.Username,
		Email:    user.Email,
	})
}

// Edit renders the edit form pre-filled with the user's current data.
func (p *Pages) Edit(w io.Writer, user *models.User) error {
	return p.tmpl.ExecuteTemplate(w, "edit.html", profileData{
		Username: user.Username,
		Email:    user.Email,
	})
}
