package email

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Template is a single status-change notification template. Subject and
// Body are text/template strings over StatusChangedEvent fields; Body is
// markdown.
type Template struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

type templateFile struct {
	Default  Template            `yaml:"default"`
	Statuses map[string]Template `yaml:"statuses"`
}

// TemplateStore holds the seed templates loaded at startup. Company
// settings may override the body per status; the subject always comes
// from the seed file.
type TemplateStore struct {
	defaults Template
	byStatus map[string]Template
}

// LoadTemplateStore reads status_templates.yaml from dir. A missing file
// is an error: the dispatcher cannot run without a default template.
func LoadTemplateStore(dir string) (*TemplateStore, error) {
	path := filepath.Join(dir, "status_templates.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read notification templates %s: %w", path, err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse notification templates %s: %w", path, err)
	}
	if file.Default.Subject == "" || file.Default.Body == "" {
		return nil, fmt.Errorf("notification templates %s: default subject and body are required", path)
	}

	byStatus := file.Statuses
	if byStatus == nil {
		byStatus = map[string]Template{}
	}
	return &TemplateStore{defaults: file.Default, byStatus: byStatus}, nil
}

// Resolve picks the template for a target status. bodyOverride, when
// non-empty, replaces the body while keeping the seed subject.
func (s *TemplateStore) Resolve(status, bodyOverride string) Template {
	tmpl, ok := s.byStatus[status]
	if !ok {
		tmpl = s.defaults
	}
	if tmpl.Subject == "" {
		tmpl.Subject = s.defaults.Subject
	}
	if tmpl.Body == "" {
		tmpl.Body = s.defaults.Body
	}
	if bodyOverride != "" {
		tmpl.Body = bodyOverride
	}
	return tmpl
}

// Render executes a template string with the event as data.
func renderTemplate(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return buf.String(), nil
}
