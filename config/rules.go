package config

import (
	"fmt"
	"regexp"
)

// Rules is the compiled form of a Config's rule sets. All patterns compile
// at load time so misconfiguration fails before the first commit is read.
type Rules struct {
	Ignore          []*regexp.Regexp
	Replace         []ReplaceRule
	Sections        []SectionRule
	TagFilter       *regexp.Regexp
	BodySplit       *regexp.Regexp
	UnreleasedLabel string
}

type ReplaceRule struct {
	RE   *regexp.Regexp
	With string
}

type SectionRule struct {
	Label    string
	REs      []*regexp.Regexp
	CatchAll bool
}

// Labels returns the declared section labels in rule order.
func (r *Rules) Labels() []string {
	labels := make([]string, len(r.Sections))
	for i, sec := range r.Sections {
		labels[i] = sec.Label
	}
	return labels
}

// Rules compiles the configured rule sets.
func (c Config) Rules() (*Rules, error) {
	rules := &Rules{UnreleasedLabel: c.UnreleasedLabel}
	if rules.UnreleasedLabel == "" {
		rules.UnreleasedLabel = "unreleased"
	}

	for _, pat := range c.Ignore {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("config: bad ignore pattern %q: %w", pat, err)
		}
		rules.Ignore = append(rules.Ignore, re)
	}

	for _, rep := range c.Replace {
		re, err := regexp.Compile(rep.Pattern)
		if err != nil {
			return nil, fmt.Errorf("config: bad replace pattern %q: %w", rep.Pattern, err)
		}
		rules.Replace = append(rules.Replace, ReplaceRule{RE: re, With: rep.With})
	}

	for _, sec := range c.Sections {
		rule := SectionRule{Label: sec.Label, CatchAll: sec.Patterns == nil}
		for _, pat := range sec.Patterns {
			re, err := regexp.Compile(pat)
			if err != nil {
				return nil, fmt.Errorf("config: bad section pattern %q: %w", pat, err)
			}
			rule.REs = append(rule.REs, re)
		}
		rules.Sections = append(rules.Sections, rule)
	}

	tagFilter := c.TagFilter
	if tagFilter == "" {
		tagFilter = GetDefault().TagFilter
	}
	// anchored at the start only
	re, err := regexp.Compile(`\A(?:` + tagFilter + `)`)
	if err != nil {
		return nil, fmt.Errorf("config: bad tag filter %q: %w", tagFilter, err)
	}
	rules.TagFilter = re

	bodySplit := c.BodySplit
	if bodySplit == "" {
		bodySplit = GetDefault().BodySplit
	}
	re, err = regexp.Compile(`(?m)` + bodySplit)
	if err != nil {
		return nil, fmt.Errorf("config: bad body split %q: %w", bodySplit, err)
	}
	rules.BodySplit = re

	return rules, nil
}
