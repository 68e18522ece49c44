// Package iconfetch resolves (collection, name) pairs to URLs and fetches
// icon documents through a persistent byte store, hitting the network only
// on a store miss or a forced reload.
package iconfetch

import (
	"fmt"
	"strings"
	"sync"

	"github.com/illmade-knight/go-svgicon/pkg/icon"
)

// DefaultCollections maps well-known icon collection names to their URL
// templates. Each template carries exactly one %s substitution site for the
// icon name.
var DefaultCollections = map[string]string{
	"bootstrap": "https://raw.githubusercontent.com/twbs/icons/main/icons/%s.svg",
	"boxicons":  "https://raw.githubusercontent.com/atisawd/boxicons/master/svg/regular/bx-%s.svg",
	"material":  "https://raw.githubusercontent.com/Templarian/MaterialDesign/master/svg/%s.svg",
	"octicons":  "https://raw.githubusercontent.com/primer/octicons/main/icons/%s-24.svg",
	"vscode":    "https://raw.githubusercontent.com/microsoft/vscode-icons/main/icons/dark/%s.svg",
}

// Registry holds the collection name to URL template mapping. It starts from
// DefaultCollections and is extensible via Register; resolution is otherwise
// read-only.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]string
}

// NewRegistry creates a registry seeded with DefaultCollections.
func NewRegistry() *Registry {
	templates := make(map[string]string, len(DefaultCollections))
	for name, template := range DefaultCollections {
		templates[name] = template
	}
	return &Registry{templates: templates}
}

// NewEmptyRegistry creates a registry with no collections.
func NewEmptyRegistry() *Registry {
	return &Registry{templates: make(map[string]string)}
}

// Register adds or replaces a collection. The template must contain exactly
// one %s substitution site and no other format directives.
func (r *Registry) Register(collection, template string) error {
	if collection == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if strings.Count(template, "%s") != 1 {
		return fmt.Errorf("template %q must contain exactly one %%s substitution site", template)
	}
	if strings.Count(strings.ReplaceAll(template, "%s", ""), "%") != 0 {
		return fmt.Errorf("template %q contains format directives other than %%s", template)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[collection] = template
	return nil
}

// Resolve returns the URL for an icon. It is a pure deterministic function
// of (collection, name): identical inputs always address the same cache
// slot. An unregistered collection returns icon.ErrUnknownCollection.
func (r *Registry) Resolve(collection, name string) (string, error) {
	r.mu.RLock()
	template, ok := r.templates[collection]
	r.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("%w: %q", icon.ErrUnknownCollection, collection)
	}
	return fmt.Sprintf(template, name), nil
}

// Collections returns the registered collection names.
func (r *Registry) Collections() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	return names
}
