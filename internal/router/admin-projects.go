package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/drewhx/portfolio-web/internal/content"
)

func (r *Router) adminNewProject(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	data := r.baseMap(c, "New Project")
	data["Kind"] = "project"
	data["Action"] = "/admin/projects/new"
	data["Record"] = &content.Record{Published: true}
	return r.renderPage(c, "admin-editor", data)
}

func (r *Router) adminCreateProject(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	in := projectInputFromForm(c)
	slug, err := resolveSlug(c.FormValue("slug"), in.Title)
	if in.Title == "" || err != nil {
		data := r.baseMap(c, "New Project")
		data["Kind"] = "project"
		data["Action"] = "/admin/projects/new"
		data["Record"] = recordFromInput(c.FormValue("slug"), in)
		data["Error"] = "a title and a usable slug are required"
		c.Status(fiber.StatusBadRequest)
		return r.renderPage(c, "admin-editor", data)
	}

	if err := r.store.SaveProject(slug, in); err != nil {
		return err
	}
	return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
}

func (r *Router) adminEditProject(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

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

	data := r.baseMap(c, "Edit Project")
	data["Kind"] = "project"
	data["Action"] = "/admin/projects/" + slug + "/edit"
	data["Record"] = rec
	return r.renderPage(c, "admin-editor", data)
}

func (r *Router) adminUpdateProject(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	oldSlug, err := content.SanitizeSlug(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "project not found")
	}
	existing, found, err := r.store.Project(oldSlug)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "project not found")
	}

	in := projectInputFromForm(c)
	in.Extra = existing.Extra
	newSlug, err := resolveSlug(c.FormValue("slug"), in.Title)
	if in.Title == "" || err != nil {
		data := r.baseMap(c, "Edit Project")
		data["Kind"] = "project"
		data["Action"] = "/admin/projects/" + oldSlug + "/edit"
		data["Record"] = recordFromInput(oldSlug, in)
		data["Error"] = "a title and a usable slug are required"
		c.Status(fiber.StatusBadRequest)
		return r.renderPage(c, "admin-editor", data)
	}

	if err := r.store.SaveProject(newSlug, in); err != nil {
		return err
	}
	if newSlug != oldSlug {
		if _, err := r.store.DeleteProject(oldSlug); err != nil {
			return err
		}
	}
	return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
}

func (r *Router) adminDeleteProject(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	slug, err := content.SanitizeSlug(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "project not found")
	}
	existed, err := r.store.DeleteProject(slug)
	if err != nil {
		return err
	}
	if !existed {
		return fiber.NewError(fiber.StatusNotFound, "project not found")
	}
	return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
}
