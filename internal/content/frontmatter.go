package content

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML metadata block at the top of a content file.
// Unknown keys survive a parse/serialize round trip through Extra.
type Frontmatter struct {
	Title       string         `yaml:"title,omitempty"`
	Date        string         `yaml:"date,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Tags        []string       `yaml:"tags"`
	Published   *bool          `yaml:"published,omitempty"`
	GithubURL   string         `yaml:"github_url,omitempty"`
	LiveURL     string         `yaml:"live_url,omitempty"`
	Order       int            `yaml:"order,omitempty"`
	Extra       map[string]any `yaml:",inline"`
}

// ParseDocument splits a raw document into its metadata block and markdown body.
// Documents without a leading '---' block, and documents whose block fails to
// decode, degrade to an empty Frontmatter with the whole input as body.
func ParseDocument(raw []byte) (Frontmatter, []byte) {
	var fm Frontmatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return Frontmatter{}, raw
	}
	return fm, body
}

// SerializeDocument renders a metadata block plus body back into file form:
// '---', YAML, '---', blank line, body. The date field is always restamped
// with the current time; other caller-supplied values win over defaults.
func SerializeDocument(fm Frontmatter, body []byte) ([]byte, error) {
	fm.Date = time.Now().Format(time.RFC3339)
	liftKnownExtras(&fm)
	meta, err := yaml.Marshal(&fm)
	if err != nil {
		return nil, fmt.Errorf("fail to marshal front matter: %w", err)
	}
	return []byte(fmt.Sprintf("---\n%s---\n\n%s", meta, body)), nil
}

// liftKnownExtras moves well-known keys out of the passthrough map into their
// typed fields so a document never carries the same key twice. The date key is
// dropped outright since serialization restamps it.
func liftKnownExtras(fm *Frontmatter) {
	if fm.Extra == nil {
		return
	}
	for key, val := range fm.Extra {
		switch key {
		case "title":
			if s, ok := val.(string); ok {
				fm.Title = s
			}
		case "date":
		case "description":
			if s, ok := val.(string); ok {
				fm.Description = s
			}
		case "tags":
			if tags, ok := toStringSlice(val); ok {
				fm.Tags = tags
			}
		case "published":
			if b, ok := val.(bool); ok {
				fm.Published = &b
			}
		case "github_url":
			if s, ok := val.(string); ok {
				fm.GithubURL = s
			}
		case "live_url":
			if s, ok := val.(string); ok {
				fm.LiveURL = s
			}
		case "order":
			if n, ok := val.(int); ok {
				fm.Order = n
			}
		default:
			continue
		}
		delete(fm.Extra, key)
	}
	if len(fm.Extra) == 0 {
		fm.Extra = nil
	}
}

func toStringSlice(val any) ([]string, bool) {
	items, ok := val.([]any)
	if !ok {
		return nil, false
	}
	tags := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		tags = append(tags, s)
	}
	return tags, true
}
