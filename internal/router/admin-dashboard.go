package router

import (
	"github.com/gofiber/fiber/v2"
)

// adminDashboard lists all content including drafts.
func (r *Router) adminDashboard(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	posts, err := r.store.Posts(true)
	if err != nil {
		return err
	}
	projects, err := r.store.Projects()
	if err != nil {
		return err
	}

	data := r.baseMap(c, "Dashboard")
	data["Posts"] = posts
	data["Projects"] = projects
	return r.renderPage(c, "admin-dashboard", data)
}
