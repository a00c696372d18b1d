package content

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/drewhx/portfolio-web/config"
)

// Store reads and writes content files under the configured directories.
// The filesystem is the source of truth: every call re-reads from disk.
type Store struct {
	postsDir    string
	projectsDir string
	resumePath  string
}

// SaveInput carries the caller-controlled fields of a content file write.
// Nil Published means the key is left out of the document entirely.
type SaveInput struct {
	Title       string
	Body        string
	Description string
	Tags        []string
	Published   *bool
	GithubURL   string
	LiveURL     string
	Order       int
	Extra       map[string]any
}

var slugStripRe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func NewStore(cfg *config.ContentConfig) *Store {
	return &Store{
		postsDir:    cfg.PostsDir,
		projectsDir: cfg.ProjectsDir,
		resumePath:  cfg.ResumePath,
	}
}

// SanitizeSlug reduces a requested slug to [A-Za-z0-9_-] so it can never
// escape the content directory. A slug with nothing left after stripping is
// rejected.
func SanitizeSlug(slug string) (string, error) {
	clean := slugStripRe.ReplaceAllString(slug, "")
	if clean == "" {
		return "", fmt.Errorf("slug %q contains no usable characters", slug)
	}
	return clean, nil
}

// Posts lists blog posts sorted newest first, ties broken by slug. Drafts are
// filtered out unless includeDrafts is set.
func (s *Store) Posts(includeDrafts bool) ([]*Record, error) {
	records, err := s.scanDir(s.postsDir)
	if err != nil {
		return nil, err
	}
	if !includeDrafts {
		records = slices.DeleteFunc(records, func(r *Record) bool { return !r.Published })
	}
	slices.SortFunc(records, func(a, b *Record) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	return records, nil
}

// Projects lists projects sorted by ascending order field, ties broken by slug.
func (s *Store) Projects() ([]*Record, error) {
	records, err := s.scanDir(s.projectsDir)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(records, func(a, b *Record) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return strings.Compare(a.Slug, b.Slug)
	})
	return records, nil
}

func (s *Store) Post(slug string) (*Record, bool, error) {
	path, err := s.postPath(slug)
	if err != nil {
		return nil, false, err
	}
	return LoadRecord(path)
}

func (s *Store) Project(slug string) (*Record, bool, error) {
	path, err := s.projectPath(slug)
	if err != nil {
		return nil, false, err
	}
	return LoadRecord(path)
}

func (s *Store) Resume() (*Record, bool, error) {
	return LoadRecord(s.resumePath)
}

func (s *Store) SavePost(slug string, in SaveInput) error {
	path, err := s.postPath(slug)
	if err != nil {
		return err
	}
	return writeDocument(path, postFrontmatter(in), in.Body)
}

func (s *Store) SaveProject(slug string, in SaveInput) error {
	path, err := s.projectPath(slug)
	if err != nil {
		return err
	}
	return writeDocument(path, projectFrontmatter(in), in.Body)
}

// DeletePost removes a post file, reporting whether it existed.
func (s *Store) DeletePost(slug string) (bool, error) {
	path, err := s.postPath(slug)
	if err != nil {
		return false, err
	}
	return removeFile(path)
}

// DeleteProject removes a project file, reporting whether it existed.
func (s *Store) DeleteProject(slug string) (bool, error) {
	path, err := s.projectPath(slug)
	if err != nil {
		return false, err
	}
	return removeFile(path)
}

func (s *Store) postPath(slug string) (string, error) {
	clean, err := SanitizeSlug(slug)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.postsDir, clean+".md"), nil
}

func (s *Store) projectPath(slug string) (string, error) {
	clean, err := SanitizeSlug(slug)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.projectsDir, clean+".md"), nil
}

// scanDir assembles every .md file in dir. A missing directory is an empty
// result, a failing directory read propagates, and a file that cannot be
// assembled is logged and skipped so one corrupt file never hides the rest.
func (s *Store) scanDir(dir string) ([]*Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Record{}, nil
		}
		return nil, fmt.Errorf("fail to read content directory %s: %w", dir, err)
	}

	records := make([]*Record, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		rec, found, err := LoadRecord(path)
		if err != nil {
			slog.Warn("fail to assemble content file, skipping", slog.String("path", path), slog.String("error", err.Error()))
			continue
		}
		if !found {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func postFrontmatter(in SaveInput) Frontmatter {
	return Frontmatter{
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		Published:   in.Published,
		Extra:       in.Extra,
	}
}

func projectFrontmatter(in SaveInput) Frontmatter {
	return Frontmatter{
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		GithubURL:   in.GithubURL,
		LiveURL:     in.LiveURL,
		Order:       in.Order,
		Extra:       in.Extra,
	}
}

func writeDocument(path string, fm Frontmatter, body string) error {
	doc, err := SerializeDocument(fm, []byte(body))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("fail to create content directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, doc, 0644); err != nil {
		return fmt.Errorf("fail to write %s: %w", path, err)
	}
	return nil
}

func removeFile(path string) (bool, error) {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("fail to delete %s: %w", path, err)
	}
	return true, nil
}
