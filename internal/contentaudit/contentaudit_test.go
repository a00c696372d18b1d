package contentaudit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drewhx/portfolio-web/config"
	"github.com/drewhx/portfolio-web/internal/content"
)

func newAuditorFixture(t *testing.T) (*Auditor, string) {
	t.Helper()
	root := t.TempDir()
	postsDir := filepath.Join(root, "posts")
	if err := os.MkdirAll(postsDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(postsDir, "existing.md"),
		[]byte("---\ntitle: Existing\npublished: true\n---\n\nx\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := content.NewStore(&config.ContentConfig{
		PostsDir:    postsDir,
		ProjectsDir: filepath.Join(root, "projects"),
		ResumePath:  filepath.Join(root, "resume.md"),
	})

	auditor, err := NewAuditor(store, "*/5 * * * *", nil)
	if err != nil {
		t.Fatalf("new auditor: %v", err)
	}
	t.Cleanup(func() { auditor.Close() })
	return auditor, postsDir
}

func TestSweepPrimesKnownSetAtStartup(t *testing.T) {
	auditor, _ := newAuditorFixture(t)

	fresh, err := auditor.sweep()
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(fresh) != 0 {
		t.Fatalf("posts present at startup are not new, got %d", len(fresh))
	}
}

func TestSweepDetectsNewlyPublishedPost(t *testing.T) {
	auditor, postsDir := newAuditorFixture(t)

	if err := os.WriteFile(filepath.Join(postsDir, "surprise.md"),
		[]byte("---\ntitle: Surprise\npublished: true\n---\n\nx\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fresh, err := auditor.sweep()
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(fresh) != 1 || fresh[0].Slug != "surprise" {
		t.Fatalf("expected the new post to be reported, got %+v", fresh)
	}

	fresh, err = auditor.sweep()
	if err != nil {
		t.Fatalf("second sweep: %v", err)
	}
	if len(fresh) != 0 {
		t.Fatalf("a post is only new once, got %+v", fresh)
	}
}

func TestSweepIgnoresDrafts(t *testing.T) {
	auditor, postsDir := newAuditorFixture(t)

	if err := os.WriteFile(filepath.Join(postsDir, "draft.md"),
		[]byte("---\ntitle: Draft\npublished: false\n---\n\nx\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fresh, err := auditor.sweep()
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(fresh) != 0 {
		t.Fatalf("drafts are not publish events, got %+v", fresh)
	}
}
