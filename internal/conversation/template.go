package conversation

// Template is a named prompt format together with the turns of one
// conversation. Instances handed out by the catalog are private copies and
// may be mutated freely.
type Template struct {
	Name   string    `yaml:"name" json:"name"`
	System string    `yaml:"system" json:"system"`
	Roles  [2]string `yaml:"roles" json:"roles"`
	// Messages holds the turns in order. The first Offset turns are few-shot
	// examples and are skipped by PairedView and StructuredMessages.
	Messages []Turn         `yaml:"messages,omitempty" json:"messages,omitempty"`
	Offset   int            `yaml:"offset" json:"offset"`
	Style    SeparatorStyle `yaml:"sep_style,omitempty" json:"sep_style,omitempty"`
	Sep      string         `yaml:"sep,omitempty" json:"sep,omitempty"`
	Sep2     string         `yaml:"sep2,omitempty" json:"sep2,omitempty"`

	// Stop criteria for the generator. Never interpreted here.
	StopStr      string `yaml:"stop_str,omitempty" json:"stop_str,omitempty"`
	StopTokenIDs []int  `yaml:"stop_token_ids,omitempty" json:"stop_token_ids,omitempty"`
}

// StopHints carries the generation stop criteria of a template.
type StopHints struct {
	StopStr      string `json:"stop_str,omitempty"`
	StopTokenIDs []int  `json:"stop_token_ids,omitempty"`
}

// Snapshot is the summary view of a template: identity, preamble, roles and
// turns without any formatting details.
type Snapshot struct {
	Name     string    `yaml:"name" json:"name"`
	System   string    `yaml:"system" json:"system"`
	Roles    [2]string `yaml:"roles" json:"roles"`
	Messages []Turn    `yaml:"messages" json:"messages"`
	Offset   int       `yaml:"offset" json:"offset"`
}

// UserRole is the first role label.
func (t *Template) UserRole() string { return t.Roles[0] }

// AssistantRole is the second role label.
func (t *Template) AssistantRole() string { return t.Roles[1] }

// AppendTurn adds a turn. The role is not checked against Roles.
func (t *Template) AppendTurn(role string, msg Message) {
	t.Messages = append(t.Messages, Turn{Role: role, Message: msg})
}

// Clone returns a deep copy that shares no mutable state with t.
func (t *Template) Clone() *Template {
	c := *t
	if t.Messages != nil {
		c.Messages = make([]Turn, len(t.Messages))
		copy(c.Messages, t.Messages)
	}
	if t.StopTokenIDs != nil {
		c.StopTokenIDs = make([]int, len(t.StopTokenIDs))
		copy(c.StopTokenIDs, t.StopTokenIDs)
	}
	return &c
}

// Validate checks that the fields are consistent with the style.
func (t *Template) Validate() error {
	if t.Name == "" {
		return &ConfigurationError{Template: t.Name, Reason: "name is required"}
	}
	if _, ok := styleNames[t.Style]; !ok {
		return &ConfigurationError{Template: t.Name, Reason: "unknown separator style " + t.Style.String()}
	}
	if t.Style.TwoSeparators() && t.Sep2 == "" {
		return &ConfigurationError{Template: t.Name, Reason: "style " + t.Style.String() + " requires sep2"}
	}
	if t.Offset < 0 {
		return &ConfigurationError{Template: t.Name, Reason: "offset must not be negative"}
	}
	return nil
}

// StopHints returns a copy of the stop criteria for the generator.
func (t *Template) StopHints() StopHints {
	h := StopHints{StopStr: t.StopStr}
	if len(t.StopTokenIDs) > 0 {
		h.StopTokenIDs = append([]int(nil), t.StopTokenIDs...)
	}
	return h
}

// Snapshot returns the summary view with a private copy of the turns.
func (t *Template) Snapshot() Snapshot {
	msgs := make([]Turn, len(t.Messages))
	copy(msgs, t.Messages)
	return Snapshot{
		Name:     t.Name,
		System:   t.System,
		Roles:    t.Roles,
		Messages: msgs,
		Offset:   t.Offset,
	}
}
