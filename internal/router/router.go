package router

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/drewhx/portfolio-web/config"
	"github.com/drewhx/portfolio-web/internal/content"
	"github.com/drewhx/portfolio-web/internal/contentaudit"
	"github.com/drewhx/portfolio-web/internal/mailer"
	"github.com/drewhx/portfolio-web/internal/mediastore"
	"github.com/drewhx/portfolio-web/internal/templatemanager"
)

// pages lists every template set the site renders. Each page file fills the
// blocks of the shared layout.
var pages = []string{
	"index", "blog", "blog-post", "projects", "project", "resume", "contact",
	"error", "admin-login", "admin-dashboard", "admin-editor",
}

type Router struct {
	cfg      *config.Config
	app      *fiber.App
	store    *content.Store
	tm       *templatemanager.TemplateManager
	sessions *session.Store
	throttle *LoginThrottle
	mirror   mediastore.Store
	mailer   *mailer.Mailer
	auditor  *contentaudit.Auditor
	validate *validator.Validate
}

func NewRouter(cfg *config.Config) (*Router, error) {
	r := &Router{cfg: cfg, store: content.NewStore(&cfg.Content)}

	var err error

	sets := make([]templatemanager.TemplateSet, 0, len(pages))
	for _, page := range pages {
		sets = append(sets, templatemanager.TemplateSet{
			Name:  page,
			Files: []string{"views/layouts/main.html", "views/pages/" + page + ".html"},
		})
	}
	r.tm, err = templatemanager.NewTemplateManager(sets...)
	if err != nil {
		return nil, fmt.Errorf("fail to initialize template manager: %w", err)
	}

	r.throttle, err = NewLoginThrottle([]byte(cfg.Admin.Salt))
	if err != nil {
		return nil, fmt.Errorf("fail to initialize login throttle: %w", err)
	}

	r.mirror, err = mediastore.New(&cfg.Uploads.Mirror)
	if err != nil {
		return nil, fmt.Errorf("fail to initialize media mirror: %w", err)
	}

	if cfg.Mail != nil {
		r.mailer, err = mailer.NewMailer(cfg.Mail)
		if err != nil {
			return nil, fmt.Errorf("fail to initialize mailer: %w", err)
		}
	}

	if cfg.Audit.Schedule != "" {
		r.auditor, err = contentaudit.NewAuditor(r.store, cfg.Audit.Schedule, r.publishNotice)
		if err != nil {
			return nil, fmt.Errorf("fail to initialize content auditor: %w", err)
		}
	}

	r.validate = validator.New(validator.WithRequiredStructEnabled())

	enablePrintRoutes := false
	if cfg.LogLevel <= slog.LevelDebug {
		enablePrintRoutes = true
	}

	r.app = fiber.New(fiber.Config{
		AppName:           cfg.Site.Name,
		EnablePrintRoutes: enablePrintRoutes,
		ProxyHeader:       "X-Forwarded-For",
		ErrorHandler:      r.errorHandler,
	})

	r.app.Use(encryptcookie.New(encryptcookie.Config{
		Key: deriveCookieKey(cfg.Admin.Secret),
	}))

	r.sessions = session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:admin_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})

	r.initRoutes()

	return r, nil
}

func (r *Router) initRoutes() {
	r.app.Get("/", r.home)
	r.app.Get("/blog", r.blogIndex)
	r.app.Get("/blog/:slug", r.blogShow)
	r.app.Get("/projects", r.projectsIndex)
	r.app.Get("/projects/:slug", r.projectShow)
	r.app.Get("/resume", r.resume)
	r.app.Get("/feed.xml", r.feed)

	if r.mailer != nil {
		r.app.Get("/contact", r.contactForm)
		r.app.Post("/contact", r.contactSubmit)
	}

	r.app.Get("/admin", r.adminLogin)
	r.app.Post("/admin/login", r.adminLoginSubmit)
	r.app.Get("/admin/logout", r.adminLogout)
	r.app.Get("/admin/dashboard", r.adminDashboard)
	r.app.Get("/admin/posts/new", r.adminNewPost)
	r.app.Post("/admin/posts/new", r.adminCreatePost)
	r.app.Get("/admin/posts/:slug/edit", r.adminEditPost)
	r.app.Post("/admin/posts/:slug/edit", r.adminUpdatePost)
	r.app.Post("/admin/posts/:slug/delete", r.adminDeletePost)
	r.app.Get("/admin/projects/new", r.adminNewProject)
	r.app.Post("/admin/projects/new", r.adminCreateProject)
	r.app.Get("/admin/projects/:slug/edit", r.adminEditProject)
	r.app.Post("/admin/projects/:slug/edit", r.adminUpdateProject)
	r.app.Post("/admin/projects/:slug/delete", r.adminDeleteProject)
	r.app.Post("/admin/upload-image", r.adminUploadImage)

	r.app.Static("/static", "./static")
	r.app.Static(r.cfg.Uploads.PublicBase, r.cfg.Uploads.Dir)
}

func (r *Router) Listen(endpoint string) error {
	if err := r.app.Listen(endpoint); err != nil {
		return fmt.Errorf("error while running fiber server: %w", err)
	}
	return nil
}

func (r *Router) Close() (err error) {
	allErrors := make([]error, 0)
	if r.auditor != nil {
		if err = r.auditor.Close(); err != nil {
			allErrors = append(allErrors, fmt.Errorf("fail to shutdown content auditor: %w", err))
		}
	}
	if err = r.app.Shutdown(); err != nil {
		allErrors = append(allErrors, fmt.Errorf("fail to shutdown fiber server: %w", err))
	}
	r.throttle.Close()
	return errors.Join(allErrors...)
}

// publishNotice forwards audit findings to the owner's inbox when mail is
// configured.
func (r *Router) publishNotice(records []*content.Record) error {
	if r.mailer == nil {
		return nil
	}
	titles := make([]string, 0, len(records))
	for _, rec := range records {
		titles = append(titles, rec.Title)
	}
	return r.mailer.SendPublishNotice(titles)
}

// errorHandler renders the shared error page for every failed request.
// fiber.Error codes pass through; anything else is a plain 500.
func (r *Router) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code >= 500 {
		slog.Error("request failed",
			slog.String("method", c.Method()), slog.String("path", c.Path()),
			slog.Int("status_code", code), slog.String("error", err.Error()))
	} else {
		slog.Debug("request rejected",
			slog.String("method", c.Method()), slog.String("path", c.Path()),
			slog.Int("status_code", code), slog.String("error", err.Error()))
	}

	data := r.baseMap(c, fmt.Sprintf("%d", code))
	data["Code"] = code
	data["Message"] = message

	page, renderErr := r.tm.Render("error", data)
	if renderErr != nil {
		slog.Error("fail to render error page", slog.String("error", renderErr.Error()))
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(code).SendString(message)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(code).Send(page)
}

// baseMap carries the fields every page template expects.
func (r *Router) baseMap(c *fiber.Ctx, title string) fiber.Map {
	return fiber.Map{
		"Site":       r.cfg.Site,
		"Title":      title,
		"Path":       c.Path(),
		"LoggedIn":   r.isAuthenticated(c),
		"HasContact": r.mailer != nil,
	}
}

func (r *Router) renderPage(c *fiber.Ctx, name string, data fiber.Map) error {
	page, err := r.tm.Render(name, data)
	if err != nil {
		return fmt.Errorf("fail to render %s page: %w", name, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}

func (r *Router) isAuthenticated(c *fiber.Ctx) bool {
	sess, err := r.sessions.Get(c)
	if err != nil {
		return false
	}
	authed, _ := sess.Get("authenticated").(bool)
	return authed
}

// deriveCookieKey turns the configured admin secret into the 32-byte base64
// key the cookie encryption middleware expects.
func deriveCookieKey(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return base64.StdEncoding.EncodeToString(sum[:])
}
