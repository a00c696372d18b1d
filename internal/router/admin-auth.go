package router

import (
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

func (r *Router) adminLogin(c *fiber.Ctx) error {
	if r.isAuthenticated(c) {
		return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
	}
	return r.renderPage(c, "admin-login", r.baseMap(c, "Admin Login"))
}

// adminLoginSubmit checks the shared admin password. Failed attempts count
// against the client address; past the limit the endpoint answers 429 until
// the window expires.
func (r *Router) adminLoginSubmit(c *fiber.Ctx) error {
	addr := c.IP()
	if r.throttle.Blocked(addr) {
		return fiber.NewError(fiber.StatusTooManyRequests, "too many failed login attempts, try again later")
	}

	password := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(password), []byte(r.cfg.Admin.Password)) != 1 {
		r.throttle.Fail(addr)
		slog.Warn("failed admin login attempt", slog.String("path", c.Path()))

		data := r.baseMap(c, "Admin Login")
		data["Error"] = "invalid password"
		c.Status(fiber.StatusUnauthorized)
		return r.renderPage(c, "admin-login", data)
	}

	r.throttle.Reset(addr)

	sess, err := r.sessions.Get(c)
	if err != nil {
		return fmt.Errorf("fail to open session: %w", err)
	}
	sess.Set("authenticated", true)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("fail to save session: %w", err)
	}

	return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
}

func (r *Router) adminLogout(c *fiber.Ctx) error {
	sess, err := r.sessions.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			slog.Warn("fail to destroy session on logout", slog.String("error", err.Error()))
		}
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
