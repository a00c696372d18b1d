package templatemanager

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"
)

// TemplateManager holds one parsed template set per page. Each set is a
// layout plus the page file that fills its blocks; the layout is always the
// first file and is the one executed.
type TemplateManager struct {
	templates map[string]managedTemplate
}

type managedTemplate struct {
	Main string
	Tmpl *template.Template
}

type TemplateSet struct {
	Name  string
	Files []string
}

var templateFuncMap = template.FuncMap{
	"formatDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
	"year": func() int {
		return time.Now().Year()
	},
	"iterate": func(count int) []int {
		items := make([]int, count)
		for i := range count {
			items[i] = i
		}
		return items
	},
	"inc": func(i int) int {
		return i + 1
	},
	"join": strings.Join,
}

func NewTemplateManager(sets ...TemplateSet) (*TemplateManager, error) {
	templateMap := make(map[string]managedTemplate)

	for _, set := range sets {
		if len(set.Files) == 0 {
			return nil, fmt.Errorf("template set %s has no files", set.Name)
		}
		tmpl := template.New(set.Name).Funcs(templateFuncMap)
		tmpl, err := tmpl.ParseFiles(set.Files...)
		if err != nil {
			return nil, fmt.Errorf("fail to parse template set %s: %w", set.Name, err)
		}
		templateMap[set.Name] = managedTemplate{
			Main: filepath.Base(set.Files[0]),
			Tmpl: tmpl,
		}
	}

	return &TemplateManager{
		templates: templateMap,
	}, nil
}

func (tm *TemplateManager) Render(name string, data any) ([]byte, error) {
	tmpl, exists := tm.templates[name]
	if !exists {
		return nil, fmt.Errorf("template %s is not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Tmpl.ExecuteTemplate(&buf, tmpl.Main, data); err != nil {
		return nil, fmt.Errorf("fail to execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
