package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/drewhx/portfolio-web/internal/content"
)

func (r *Router) projectsIndex(c *fiber.Ctx) error {
	projects, err := r.store.Projects()
	if err != nil {
		return err
	}

	data := r.baseMap(c, "Projects")
	data["Projects"] = projects
	return r.renderPage(c, "projects", data)
}

func (r *Router) projectShow(c *fiber.Ctx) error {
	slug, err := content.SanitizeSlug(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "project not found")
	}

	rec, found, err := r.store.Project(slug)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "project not found")
	}

	data := r.baseMap(c, rec.Title)
	data["Project"] = rec
	return r.renderPage(c, "project", data)
}

// resume renders the single resume document. A missing file renders the page
// shell with a placeholder instead of failing.
func (r *Router) resume(c *fiber.Ctx) error {
	rec, found, err := r.store.Resume()
	if err != nil {
		return err
	}

	data := r.baseMap(c, "Resume")
	if found {
		data["Resume"] = rec
	}
	return r.renderPage(c, "resume", data)
}
