package i18n

import "gopkg.in/yaml.v3"

// Text is a string resolved per locale at the data-loading boundary.
type Text map[Locale]string

// Resolve picks the locale, then Arabic, then any non-empty value.
func (t Text) Resolve(l Locale) string {
	if s := t[l]; s != "" {
		return s
	}
	if s := t[DefaultLocale]; s != "" {
		return s
	}
	for _, k := range []Locale{French, English} {
		if s := t[k]; s != "" {
			return s
		}
	}
	return ""
}

// TextList is a list of strings per locale (causes, actions).
type TextList map[Locale][]string

// Resolve follows the same fallback order as Text.Resolve.
func (t TextList) Resolve(l Locale) []string {
	if v := t[l]; len(v) > 0 {
		return v
	}
	if v := t[DefaultLocale]; len(v) > 0 {
		return v
	}
	for _, k := range []Locale{French, English} {
		if v := t[k]; len(v) > 0 {
			return v
		}
	}
	return nil
}

// UnmarshalYAML accepts a bare string (legacy single-language data, stored as
// Arabic) or a per-locale mapping.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = Text{DefaultLocale: node.Value}
		return nil
	}
	m := map[Locale]string{}
	if err := node.Decode(&m); err != nil {
		return err
	}
	*t = m
	return nil
}

// UnmarshalYAML accepts a bare sequence (legacy, stored as Arabic) or a
// per-locale mapping of sequences.
func (t *TextList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var v []string
		if err := node.Decode(&v); err != nil {
			return err
		}
		*t = TextList{DefaultLocale: v}
		return nil
	}
	m := map[Locale][]string{}
	if err := node.Decode(&m); err != nil {
		return err
	}
	*t = m
	return nil
}
