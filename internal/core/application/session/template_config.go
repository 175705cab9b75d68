package session

import (
	"sync"

	"servis/internal/core/domain/model/template"
)

// TemplateConfig is the session's view of the notification templates and the
// company name, resolved once at startup with the precedence
// built-in defaults < persisted rows < in-session edits.
type TemplateConfig struct {
	mu  sync.RWMutex
	set *template.Set
}

// NewTemplateConfig starts from the built-in defaults.
func NewTemplateConfig() *TemplateConfig {
	return &TemplateConfig{set: template.NewSet()}
}

// Apply overlays entries (persisted rows at startup, or an in-session edit)
// onto the configuration.
func (c *TemplateConfig) Apply(entries []template.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set.Apply(entries)
}

// Resolve returns the message bound to the status, or "" when none is bound.
func (c *TemplateConfig) Resolve(status string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Resolve(status)
}

// Company returns the shop's display name.
func (c *TemplateConfig) Company() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Company()
}

// Entries returns all template rows plus the company row.
func (c *TemplateConfig) Entries() []template.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.set.Entries()
}
