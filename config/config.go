// Package config holds chlog's typed configuration: the rule sets driving
// commit filtering, rewriting and sectioning, plus terminal IO.
package config

import (
	"github.com/imdario/mergo"
)

type Config struct {
	Verbose bool `json:"verbose,omitempty"`
	Quiet   bool `json:"quiet,omitempty"`

	// Ignore drops commits whose subject matches any of these patterns.
	Ignore []string `json:"ignore,omitempty"`
	// Replace rewrites commit subjects, in declaration order.
	Replace []Replacement `json:"replace,omitempty"`
	// Sections assigns commits to changelog categories. The first rule
	// with a matching pattern wins; a rule with no patterns matches
	// everything.
	Sections []Section `json:"sections,omitempty"`

	UnreleasedLabel string `json:"unreleased_label,omitempty"`
	// TagFilter decides which tags count as release boundaries. It is
	// matched against the start of the tag name.
	TagFilter string `json:"tag_filter,omitempty"`
	// BodySplit separates commit bodies into paragraphs for reflowing.
	BodySplit string `json:"body_split,omitempty"`

	Term TerminalIO `json:"-"`
}

// Replacement is one ordered find/replace rule. With uses the expansion
// syntax of regexp.ReplaceAllString, so "$1" refers to the first group.
type Replacement struct {
	Pattern string `json:"pattern"`
	With    string `json:"with"`
}

// Section is one ordered classification rule. Nil Patterns is a catch-all;
// an empty Label renders under the "Other" heading.
type Section struct {
	Label    string   `json:"label,omitempty"`
	Patterns []string `json:"patterns,omitempty"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

// Validate compiles every rule so malformed patterns fail at load time, not
// in the middle of a run.
func (c Config) Validate() error {
	_, err := c.Rules()
	return err
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	c.Term.Printf(msg, args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	c.Term.Errorf(msg, args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	c.Printf(msg, args...)
}
