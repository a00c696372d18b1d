// Package contentaudit periodically re-scans the content directories. The
// sweep surfaces files that stopped parsing cleanly through the store's
// warnings and reports posts that turned published since the last pass, so
// content edited on disk behind the server's back still gets noticed.
package contentaudit

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-co-op/gocron/v2"

	"github.com/drewhx/portfolio-web/internal/content"
)

type Auditor struct {
	s          gocron.Scheduler
	store      *content.Store
	onPublish  func([]*content.Record) error
	mu         sync.Mutex
	knownPosts map[string]struct{}
}

// NewAuditor schedules a sweep on the given cron expression and runs one
// immediately to prime the known set, so only posts published after startup
// count as new. onPublish may be nil.
func NewAuditor(store *content.Store, cron string, onPublish func([]*content.Record) error) (*Auditor, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create new scheduler: %w", err)
	}

	a := &Auditor{s: s, store: store, onPublish: onPublish, knownPosts: make(map[string]struct{})}

	_, err = a.s.NewJob(gocron.CronJob(cron, false), gocron.NewTask(func(a *Auditor) {
		fresh, err := a.sweep()
		if err != nil {
			slog.Error("failed to execute content audit sweep", slog.String("error", err.Error()))
			return
		}
		if len(fresh) == 0 || a.onPublish == nil {
			return
		}
		if err = a.onPublish(fresh); err != nil {
			slog.Error("error happened on callback after content audit sweep", slog.String("error", err.Error()))
		}
	}, a))
	if err != nil {
		return nil, fmt.Errorf("failed to schedule content audit job: %w", err)
	}

	if _, err = a.sweep(); err != nil {
		return nil, fmt.Errorf("failed to run initial content audit sweep: %w", err)
	}

	a.s.Start()
	return a, nil
}

func (a *Auditor) Close() error {
	return a.s.Shutdown()
}

// sweep re-reads both collections and returns published posts not seen before.
func (a *Auditor) sweep() ([]*content.Record, error) {
	posts, err := a.store.Posts(true)
	if err != nil {
		return nil, fmt.Errorf("failed to scan posts during audit sweep: %w", err)
	}
	projects, err := a.store.Projects()
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects during audit sweep: %w", err)
	}

	a.mu.Lock()
	fresh := make([]*content.Record, 0)
	for _, post := range posts {
		if !post.Published {
			continue
		}
		if _, ok := a.knownPosts[post.Slug]; !ok {
			fresh = append(fresh, post)
			a.knownPosts[post.Slug] = struct{}{}
		}
	}
	a.mu.Unlock()

	slog.Debug("content audit sweep finished",
		slog.Int("posts", len(posts)), slog.Int("projects", len(projects)), slog.Int("new_published", len(fresh)))
	return fresh, nil
}
