package catalog

import (
	"sort"
	"sync"

	"github.com/IgorSondors/Vicuna/internal/conversation"
	"github.com/IgorSondors/Vicuna/internal/logger"
)

// Catalog is a name-addressed set of conversation templates. Stored entries
// are never handed out directly; Get always returns a private copy.
type Catalog struct {
	mu        sync.RWMutex
	templates map[string]*conversation.Template
	log       logger.Logger
}

// New returns an empty catalog. A nil logger discards registration events.
func New(log logger.Logger) *Catalog {
	if log == nil {
		log = logger.Discard()
	}
	return &Catalog{
		templates: make(map[string]*conversation.Template),
		log:       log,
	}
}

// Register validates tpl and stores a copy of it under tpl.Name. Without
// override an existing name fails with *DuplicateNameError.
func (c *Catalog) Register(tpl conversation.Template, override bool) error {
	if err := tpl.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.templates[tpl.Name]
	if exists && !override {
		return &DuplicateNameError{Name: tpl.Name}
	}
	c.templates[tpl.Name] = tpl.Clone()
	if exists {
		c.log.Debug("template overridden", "name", tpl.Name, "style", tpl.Style.String())
	} else {
		c.log.Debug("template registered", "name", tpl.Name, "style", tpl.Style.String())
	}
	return nil
}

// Get returns a deep copy of the named template.
func (c *Catalog) Get(name string) (*conversation.Template, error) {
	c.mu.RLock()
	tpl, ok := c.templates[name]
	c.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return tpl.Clone(), nil
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.templates))
	for name := range c.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}
