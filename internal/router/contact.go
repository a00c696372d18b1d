package router

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/drewhx/portfolio-web/internal/mailer"
)

func (r *Router) contactForm(c *fiber.Ctx) error {
	data := r.baseMap(c, "Contact")
	data["Sent"] = c.Query("sent") == "1"
	return r.renderPage(c, "contact", data)
}

// contactSubmit validates the form and sends it on. Invalid input re-renders
// the form with the fields kept, so nothing typed gets lost.
func (r *Router) contactSubmit(c *fiber.Ctx) error {
	msg := &mailer.ContactMessage{
		Name:    strings.TrimSpace(c.FormValue("name")),
		Address: strings.TrimSpace(c.FormValue("email")),
		Subject: strings.TrimSpace(c.FormValue("subject")),
		Body:    strings.TrimSpace(c.FormValue("message")),
	}

	formError := ""
	switch {
	case msg.Name == "" || msg.Subject == "" || msg.Body == "":
		formError = "all fields are required"
	case r.validate.Var(msg.Address, "required,email") != nil:
		formError = "that email address does not look right"
	}

	if formError != "" {
		data := r.baseMap(c, "Contact")
		data["Error"] = formError
		data["Form"] = msg
		c.Status(fiber.StatusBadRequest)
		return r.renderPage(c, "contact", data)
	}

	if err := r.mailer.SendContact(msg); err != nil {
		return err
	}

	return c.Redirect("/contact?sent=1", fiber.StatusSeeOther)
}
