package router

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/drewhx/portfolio-web/internal/content"
)

func (r *Router) home(c *fiber.Ctx) error {
	posts, err := r.store.Posts(false)
	if err != nil {
		return err
	}
	if len(posts) > 5 {
		posts = posts[:5]
	}

	projects, err := r.store.Projects()
	if err != nil {
		return err
	}
	if len(projects) > 3 {
		projects = projects[:3]
	}

	data := r.baseMap(c, r.cfg.Site.Name)
	data["Posts"] = posts
	data["Projects"] = projects
	return r.renderPage(c, "index", data)
}

// blogIndex lists published posts with free-text search, tag filtering and
// pagination. Out-of-range pages clamp instead of erroring.
func (r *Router) blogIndex(c *fiber.Ctx) error {
	all, err := r.store.Posts(false)
	if err != nil {
		return err
	}

	query := strings.TrimSpace(c.Query("q"))
	tag := c.Query("tag")

	posts := all
	if query != "" {
		posts = filterByQuery(posts, query)
	}
	if tag != "" {
		posts = filterByTag(posts, tag)
	}

	perPage := r.cfg.Site.PostsPerPage
	totalPages := (len(posts) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := min(start+perPage, len(posts))

	data := r.baseMap(c, "Blog")
	data["Posts"] = posts[start:end]
	data["Page"] = page
	data["TotalPages"] = totalPages
	data["Query"] = query
	data["ActiveTag"] = tag
	data["AllTags"] = collectTags(all)
	return r.renderPage(c, "blog", data)
}

func (r *Router) blogShow(c *fiber.Ctx) error {
	slug, err := content.SanitizeSlug(c.Params("slug"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	rec, found, err := r.store.Post(slug)
	if err != nil {
		return err
	}
	if !found || !rec.Published {
		return fiber.NewError(fiber.StatusNotFound, "post not found")
	}

	data := r.baseMap(c, rec.Title)
	data["Post"] = rec
	return r.renderPage(c, "blog-post", data)
}

// filterByQuery keeps posts whose title, description or raw body contains the
// query, case-insensitively.
func filterByQuery(posts []*content.Record, query string) []*content.Record {
	needle := strings.ToLower(query)
	matched := make([]*content.Record, 0, len(posts))
	for _, post := range posts {
		if strings.Contains(strings.ToLower(post.Title), needle) ||
			strings.Contains(strings.ToLower(post.Description), needle) ||
			strings.Contains(strings.ToLower(post.RawContent), needle) {
			matched = append(matched, post)
		}
	}
	return matched
}

func filterByTag(posts []*content.Record, tag string) []*content.Record {
	matched := make([]*content.Record, 0, len(posts))
	for _, post := range posts {
		if slices.Contains(post.Tags, tag) {
			matched = append(matched, post)
		}
	}
	return matched
}

// collectTags returns the distinct tags across posts, sorted for a stable
// filter list.
func collectTags(posts []*content.Record) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, post := range posts {
		for _, tag := range post.Tags {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	slices.Sort(tags)
	return tags
}
