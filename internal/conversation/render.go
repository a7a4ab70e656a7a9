package conversation

import "strings"

// Render returns the prompt for the current turns. Templates without a style
// fail with *UnsupportedStyleError; a two-separator style without Sep2 fails
// with *ConfigurationError.
func (t *Template) Render() (string, error) {
	if t.Style.TwoSeparators() && t.Sep2 == "" {
		return "", &ConfigurationError{Template: t.Name, Reason: "style " + t.Style.String() + " requires sep2"}
	}

	var b strings.Builder
	switch t.Style {
	case AddColonSingle:
		renderAddColon(&b, t, ":")
	case AddColonTwo:
		renderAddColonTwo(&b, t)
	case AddColonSpaceSingle:
		renderAddColon(&b, t, ": ")
	case NoColonSingle:
		renderNoColon(&b, t)
	case AddNewlineSingle:
		renderAddNewline(&b, t)
	case Dolly:
		renderDolly(&b, t)
	case Rwkv:
		renderRwkv(&b, t)
	case Phoenix:
		renderPhoenix(&b, t)
	default:
		return "", &UnsupportedStyleError{Template: t.Name, Style: t.Style}
	}
	return b.String(), nil
}

// renderAddColon covers both single-separator colon styles; they differ only
// in what an absent turn leaves behind.
func renderAddColon(b *strings.Builder, t *Template, absentSuffix string) {
	b.WriteString(t.System)
	b.WriteString(t.Sep)
	for _, turn := range t.Messages {
		b.WriteString(turn.Role)
		if !turn.Message.Valid {
			b.WriteString(absentSuffix)
			continue
		}
		b.WriteString(": ")
		b.WriteString(turn.Message.Text)
		b.WriteString(t.Sep)
	}
}

func renderAddColonTwo(b *strings.Builder, t *Template) {
	seps := [2]string{t.Sep, t.Sep2}
	b.WriteString(t.System)
	b.WriteString(seps[0])
	for i, turn := range t.Messages {
		b.WriteString(turn.Role)
		if !turn.Message.Valid {
			b.WriteString(":")
			continue
		}
		b.WriteString(": ")
		b.WriteString(turn.Message.Text)
		b.WriteString(seps[i%2])
	}
}

func renderNoColon(b *strings.Builder, t *Template) {
	b.WriteString(t.System)
	for _, turn := range t.Messages {
		b.WriteString(turn.Role)
		if !turn.Message.Valid {
			continue
		}
		b.WriteString(turn.Message.Text)
		b.WriteString(t.Sep)
	}
}

func renderAddNewline(b *strings.Builder, t *Template) {
	b.WriteString(t.System)
	b.WriteString(t.Sep)
	for _, turn := range t.Messages {
		b.WriteString(turn.Role)
		b.WriteString("\n")
		if !turn.Message.Valid {
			continue
		}
		b.WriteString(turn.Message.Text)
		b.WriteString(t.Sep)
	}
}

func renderDolly(b *strings.Builder, t *Template) {
	seps := [2]string{t.Sep, t.Sep2}
	b.WriteString(t.System)
	for i, turn := range t.Messages {
		b.WriteString(turn.Role)
		b.WriteString(":\n")
		if !turn.Message.Valid {
			continue
		}
		b.WriteString(turn.Message.Text)
		b.WriteString(seps[i%2])
		if i%2 == 1 {
			b.WriteString("\n\n")
		}
	}
}

func renderRwkv(b *strings.Builder, t *Template) {
	b.WriteString(t.System)
	for _, turn := range t.Messages {
		b.WriteString(turn.Role)
		if !turn.Message.Valid {
			b.WriteString(":")
			continue
		}
		b.WriteString(": ")
		b.WriteString(normalizeRwkv(turn.Message.Text))
		b.WriteString("\n\n")
	}
}

// normalizeRwkv runs two sequential passes, so "\r\n\r\n" collapses to a
// single "\n".
func normalizeRwkv(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n\n", "\n")
}

func renderPhoenix(b *strings.Builder, t *Template) {
	b.WriteString(t.System)
	for _, turn := range t.Messages {
		b.WriteString(turn.Role)
		b.WriteString(": <s>")
		if !turn.Message.Valid {
			continue
		}
		b.WriteString(turn.Message.Text)
		b.WriteString("</s>")
	}
}
