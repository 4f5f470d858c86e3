package runner

import "strings"

// sections accumulates rendered entries per label for one release block.
type sections struct {
	declared []string
	entries  map[string][]string
}

func newSections(declared []string) *sections {
	return &sections{
		declared: declared,
		entries:  make(map[string][]string),
	}
}

func (s *sections) add(label, entry string) {
	s.entries[label] = append(s.entries[label], entry)
}

func (s *sections) empty() bool {
	return len(s.entries) == 0
}

// renderOrder returns the labels with entries, in declared order, with
// uncategorized entries last.
func (s *sections) renderOrder() []string {
	var order []string
	declaredUncategorized := false
	for _, label := range s.declared {
		if label == "" {
			declaredUncategorized = true
		}
		if _, ok := s.entries[label]; ok {
			order = append(order, label)
		}
	}
	if _, ok := s.entries[""]; ok && !declaredUncategorized {
		order = append(order, "")
	}
	return order
}

// render writes the block: underlined title, then each present section with
// its sub-heading and entries. A block with no entries renders as nothing.
// The "Other" sub-heading is dropped when it is the only one.
func (s *sections) render(title string) string {
	if s.empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(underlined(strings.TrimSpace(title), '-'))

	sole := len(s.entries) == 1
	for _, label := range s.renderOrder() {
		display := label
		if display == "" {
			display = "Other"
		}
		if !(display == "Other" && sole) {
			b.WriteString(underlined(display, '~'))
		}
		for _, entry := range s.entries[label] {
			b.WriteString(entry)
		}
	}
	return b.String()
}
