// Package textutil contains text layout helpers for rendering changelog
// entries: indentation, word wrapping and sentence normalization.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WrapWidth is the column at which Wrap breaks lines.
const WrapWidth = 70

// UcFirst upper-cases the first rune of s.
func UcFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// FinalDot appends a terminal period when s ends with an alphanumeric rune.
// An empty subject becomes a placeholder message.
func FinalDot(s string) string {
	if s == "" {
		return "No commit message."
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return s + "."
	}
	return s
}

// Indent prefixes every line of text, including empty ones, with prefix.
func Indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// IndentFirst prefixes the first line of text with first, and aligns all
// following lines under it with spaces.
func IndentFirst(text, first string) string {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		return first + lines[0]
	}
	rest := Indent(strings.Join(lines[1:], "\n"), strings.Repeat(" ", len(first)))
	return first + lines[0] + "\n" + rest
}

// Wrap greedily wraps s at WrapWidth columns. Words are never split, so a
// single word longer than the width overflows its line. Whitespace runs
// inside a line are preserved; breaks swallow the run they replace.
func Wrap(s string) string {
	s = strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s))

	var b strings.Builder
	lineLen := 0
	rest := s
	for rest != "" {
		sp := 0
		for sp < len(rest) && rest[sp] == ' ' {
			sp++
		}
		end := sp
		for end < len(rest) && rest[end] != ' ' {
			end++
		}
		spaces, word := rest[:sp], rest[sp:end]
		rest = rest[end:]

		wordLen := utf8.RuneCountInString(word)
		if lineLen == 0 {
			b.WriteString(word)
			lineLen = wordLen
		} else if lineLen+len(spaces)+wordLen <= WrapWidth {
			b.WriteString(spaces)
			b.WriteString(word)
			lineLen += len(spaces) + wordLen
		} else {
			b.WriteByte('\n')
			b.WriteString(word)
			lineLen = wordLen
		}
	}
	return b.String()
}

// ParagraphWrap splits text into paragraphs on sep, wraps each one
// independently, and rejoins them with single newlines.
func ParagraphWrap(text string, sep *regexp.Regexp) string {
	paragraphs := sep.Split(text, -1)
	wrapped := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		wrapped[i] = Wrap(strings.TrimSpace(p))
	}
	return strings.TrimSpace(strings.Join(wrapped, "\n"))
}
