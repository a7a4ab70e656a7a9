package conversation

import "fmt"

// SeparatorStyle selects the algorithm Render uses to join turns.
// The zero value, StyleNone, marks templates that are only consumed through
// StructuredMessages.
type SeparatorStyle int

const (
	StyleNone SeparatorStyle = iota
	AddColonSingle
	AddColonTwo
	AddColonSpaceSingle
	NoColonSingle
	AddNewlineSingle
	Dolly
	Rwkv
	Phoenix
)

var styleNames = map[SeparatorStyle]string{
	StyleNone:           "",
	AddColonSingle:      "add_colon_single",
	AddColonTwo:         "add_colon_two",
	AddColonSpaceSingle: "add_colon_space_single",
	NoColonSingle:       "no_colon_single",
	AddNewlineSingle:    "add_newline_single",
	Dolly:               "dolly",
	Rwkv:                "rwkv",
	Phoenix:             "phoenix",
}

func (s SeparatorStyle) String() string {
	if name, ok := styleNames[s]; ok {
		if name == "" {
			return "none"
		}
		return name
	}
	return fmt.Sprintf("SeparatorStyle(%d)", int(s))
}

// TwoSeparators reports whether the style alternates Sep and Sep2.
func (s SeparatorStyle) TwoSeparators() bool {
	return s == AddColonTwo || s == Dolly
}

// ParseSeparatorStyle maps a style name back to its value. The empty string
// and "none" both map to StyleNone.
func ParseSeparatorStyle(name string) (SeparatorStyle, error) {
	if name == "none" {
		return StyleNone, nil
	}
	for style, n := range styleNames {
		if n == name {
			return style, nil
		}
	}
	return StyleNone, fmt.Errorf("unknown separator style %q", name)
}

func (s SeparatorStyle) MarshalText() ([]byte, error) {
	name, ok := styleNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown separator style %d", int(s))
	}
	return []byte(name), nil
}

func (s *SeparatorStyle) UnmarshalText(b []byte) error {
	style, err := ParseSeparatorStyle(string(b))
	if err != nil {
		return err
	}
	*s = style
	return nil
}
