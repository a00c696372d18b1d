package router

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/feeds"
)

const feedItemLimit = 20

// feed serves the RSS 2.0 feed of the latest published posts. Full rendered
// bodies ride along in content:encoded.
func (r *Router) feed(c *fiber.Ctx) error {
	posts, err := r.store.Posts(false)
	if err != nil {
		return err
	}
	if len(posts) > feedItemLimit {
		posts = posts[:feedItemLimit]
	}

	feed := &feeds.Feed{
		Title:       r.cfg.Site.Name,
		Link:        &feeds.Link{Href: r.cfg.Site.BaseURL},
		Description: r.cfg.Site.Description,
		Author:      &feeds.Author{Name: r.cfg.Site.Author},
		Created:     time.Now(),
	}

	for _, post := range posts {
		link := fmt.Sprintf("%s/blog/%s", r.cfg.Site.BaseURL, post.Slug)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          link,
			Title:       post.Title,
			Link:        &feeds.Link{Href: link},
			Description: post.Description,
			Content:     string(post.ContentHTML),
			Created:     post.Date,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		return fmt.Errorf("fail to build rss feed: %w", err)
	}

	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.SendString(rss)
}
