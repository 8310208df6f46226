package email

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Template names used by the account workflows.
const (
	TemplateModeratorNewApplication = "notify_moderators_of_new_application"
	TemplateInvitation              = "invitation"
)

// Built-in fallbacks so the workflows keep functioning when no template
// directory is configured.
var builtinTemplates = map[string]string{
	TemplateModeratorNewApplication: `<p>A new account application is waiting at {{.SiteName}}.</p>
<p><a href="{{.URL}}">Review applications</a></p>`,
	TemplateInvitation: `<p>You have been invited to join {{.SiteName}}.</p>
<p><a href="{{.URL}}">Activate your account</a></p>`,
}

// TemplateManager renders named HTML email templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager builds a manager preloaded with the built-in templates.
// When dirPath is non-empty, .html files found there override the built-ins.
func NewTemplateManager(dirPath string) (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	for name, body := range builtinTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
	}

	if dirPath != "" {
		if err := tm.LoadTemplates(dirPath); err != nil {
			return nil, err
		}
	}

	return tm, nil
}

// Render renders a template with data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// AddTemplate parses and registers a template body under a name.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}

// LoadTemplates registers every .html file in dirPath by its base name.
func (tm *TemplateManager) LoadTemplates(dirPath string) error {
	return filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".html" {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), ".html")
		return tm.AddTemplate(name, string(body))
	})
}
