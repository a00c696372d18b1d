package router

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/drewhx/portfolio-web/internal/content"
)

func (r *Router) adminNewPost(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	data := r.baseMap(c, "New Post")
	data["Kind"] = "post"
	data["Action"] = "/admin/posts/new"
	data["Record"] = &content.Record{Published: true}
	return r.renderPage(c, "admin-editor", data)
}

func (r *Router) adminCreatePost(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	in := postInputFromForm(c)
	slug, err := resolveSlug(c.FormValue("slug"), in.Title)
	if in.Title == "" || err != nil {
		data := r.baseMap(c, "New Post")
		data["Kind"] = "post"
		data["Action"] = "/admin/posts/new"
		data["Record"] = recordFromInput(c.FormValue("slug"), in)
		data["Error"] = "a title and a usable slug are required"
		c.Status(fiber.StatusBadRequest)
		return r.renderPage(c, "admin-editor", data)
	}

	if err := r.store.SavePost(slug, in); err != nil {
		return err
	}
	return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
}

func (r *Router) adminEditPost(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	slug, err := content.SanitizeSlug(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	rec, found, err := r.store.Post(slug)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	data := r.baseMap(c, "Edit Post")
	data["Kind"] = "post"
	data["Action"] = "/admin/posts/" + slug + "/edit"
	data["Record"] = rec
	return r.renderPage(c, "admin-editor", data)
}

// adminUpdatePost writes the edited document. Changing the slug renames the
// post: the new file is written first, then the old one removed. Unknown
// front matter keys of the existing file ride along untouched.
func (r *Router) adminUpdatePost(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	oldSlug, err := content.SanitizeSlug(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	existing, found, err := r.store.Post(oldSlug)
	if err != nil {
		return err
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	in := postInputFromForm(c)
	in.Extra = existing.Extra
	newSlug, err := resolveSlug(c.FormValue("slug"), in.Title)
	if in.Title == "" || err != nil {
		data := r.baseMap(c, "Edit Post")
		data["Kind"] = "post"
		data["Action"] = "/admin/posts/" + oldSlug + "/edit"
		data["Record"] = recordFromInput(oldSlug, in)
		data["Error"] = "a title and a usable slug are required"
		c.Status(fiber.StatusBadRequest)
		return r.renderPage(c, "admin-editor", data)
	}

	if err := r.store.SavePost(newSlug, in); err != nil {
		return err
	}
	if newSlug != oldSlug {
		if _, err := r.store.DeletePost(oldSlug); err != nil {
			return err
		}
	}
	return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
}

func (r *Router) adminDeletePost(c *fiber.Ctx) error {
	if !r.isAuthenticated(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}

	slug, err := content.SanitizeSlug(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	existed, err := r.store.DeletePost(slug)
	if err != nil {
		return err
	}
	if !existed {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}
	return c.Redirect("/admin/dashboard", fiber.StatusSeeOther)
}

func postInputFromForm(c *fiber.Ctx) content.SaveInput {
	published := c.FormValue("published") == "on"
	return content.SaveInput{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Body:        c.FormValue("content"),
		Description: strings.TrimSpace(c.FormValue("description")),
		Tags:        parseTags(c.FormValue("tags")),
		Published:   &published,
	}
}

func projectInputFromForm(c *fiber.Ctx) content.SaveInput {
	order, _ := strconv.Atoi(c.FormValue("order"))
	return content.SaveInput{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Body:        c.FormValue("content"),
		Description: strings.TrimSpace(c.FormValue("description")),
		Tags:        parseTags(c.FormValue("tags")),
		GithubURL:   strings.TrimSpace(c.FormValue("github_url")),
		LiveURL:     strings.TrimSpace(c.FormValue("live_url")),
		Order:       order,
	}
}

// parseTags splits a comma separated field into clean tags.
func parseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// resolveSlug prefers the submitted slug and falls back to one derived from
// the title.
func resolveSlug(raw, title string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		candidate = strings.ReplaceAll(strings.ToLower(title), " ", "-")
	}
	return content.SanitizeSlug(candidate)
}

// recordFromInput rebuilds a record for redisplaying the editor after a
// rejected submission.
func recordFromInput(slug string, in content.SaveInput) *content.Record {
	rec := &content.Record{
		Slug:        slug,
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		GithubURL:   in.GithubURL,
		LiveURL:     in.LiveURL,
		Order:       in.Order,
		RawContent:  in.Body,
	}
	if in.Published != nil {
		rec.Published = *in.Published
	}
	return rec
}
