package content

import (
	"fmt"
	"html/template"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record is a fully assembled piece of content: parsed metadata, rendered
// HTML, and the derived fields the site renders from.
type Record struct {
	Slug        string
	Title       string
	Date        time.Time
	Tags        []string
	Published   bool
	Description string
	GithubURL   string
	LiveURL     string
	Order       int
	Extra       map[string]any
	RawContent  string
	ContentHTML template.HTML
	TOC         []Heading
	ReadingTime int
}

const wordsPerMinute = 200

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

var titleCaser = cases.Title(language.English)

// Date layouts accepted in front matter, tried in order. Anything else falls
// back to the file's modification time.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// LoadRecord reads and assembles a single content file. A missing file
// reports found=false with no error; any other I/O failure is returned.
// Metadata problems degrade: a bad block becomes an empty one, a bad date
// falls back to the file's modification time.
func LoadRecord(path string) (*Record, bool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("fail to read %s: %w", path, err)
	}

	fm, body := ParseDocument(raw)
	rendered, err := RenderMarkdown(body)
	if err != nil {
		return nil, false, fmt.Errorf("fail to render %s: %w", path, err)
	}
	rendered, toc := ExtractHeadings(rendered)

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	rec := &Record{
		Slug:        slug,
		Title:       fm.Title,
		Description: fm.Description,
		Tags:        fm.Tags,
		Published:   true,
		GithubURL:   fm.GithubURL,
		LiveURL:     fm.LiveURL,
		Order:       fm.Order,
		Extra:       fm.Extra,
		RawContent:  string(body),
		ContentHTML: template.HTML(rendered),
		TOC:         toc,
		ReadingTime: ReadingTime(string(body)),
	}
	if rec.Title == "" {
		rec.Title = titleCaser.String(strings.ReplaceAll(slug, "-", " "))
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	if fm.Published != nil {
		rec.Published = *fm.Published
	}

	rec.Date, err = resolveDate(fm.Date, path)
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

// ReadingTime estimates minutes to read a markdown body at 200 words per
// minute, never reporting less than one minute.
func ReadingTime(body string) int {
	words := len(wordRe.FindAllString(body, -1))
	minutes := int(math.Round(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// resolveDate parses the front matter date string, falling back to the file's
// modification time when the field is absent or unparsable.
func resolveDate(value, path string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	if value != "" {
		slog.Warn("fail to parse date in front matter, falling back to file modification time",
			slog.String("path", path), slog.String("date", value))
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("fail to stat %s: %w", path, err)
	}
	return info.ModTime(), nil
}
