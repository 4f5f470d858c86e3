// Package commit contains code for classifying commits into changelog
// sections.
package commit

import (
	"github.com/jeffrom/chlog/config"
	"github.com/jeffrom/chlog/model"
	"github.com/jeffrom/chlog/textutil"
)

// Classifier applies a compiled rule set to commit subjects. It carries no
// other state, so classification is a pure function of the rules and the
// commit.
type Classifier struct {
	rules *config.Rules
}

func NewClassifier(rules *config.Rules) *Classifier {
	return &Classifier{rules: rules}
}

// ClassifiedCommit is the result of running one commit through the rules.
// Subject is the finalized entry line; Section is the label it files under,
// empty for uncategorized.
type ClassifiedCommit struct {
	*model.Commit
	Section string
	Subject string
	Ignored bool
}

// Ignores reports whether any ignore pattern matches the subject.
func (cl *Classifier) Ignores(subject string) bool {
	for _, re := range cl.rules.Ignore {
		if re.MatchString(subject) {
			return true
		}
	}
	return false
}

// Section returns the label of the first section rule matching the subject.
// Matching runs against the raw subject, before any rewriting.
func (cl *Classifier) Section(subject string) string {
	for _, rule := range cl.rules.Sections {
		if rule.CatchAll {
			return rule.Label
		}
		for _, re := range rule.REs {
			if re.MatchString(subject) {
				return rule.Label
			}
		}
	}
	return ""
}

// Rewrite applies every replacement to the subject, in declaration order.
func (cl *Classifier) Rewrite(subject string) string {
	for _, rep := range cl.rules.Replace {
		subject = rep.RE.ReplaceAllString(subject, rep.With)
	}
	return subject
}

// Classify runs the full pipeline: ignore test, section assignment,
// rewriting, then normalization into a finished entry line.
func (cl *Classifier) Classify(c *model.Commit) *ClassifiedCommit {
	if cl.Ignores(c.Subject) {
		return &ClassifiedCommit{Commit: c, Ignored: true}
	}

	section := cl.Section(c.Subject)
	subject := cl.Rewrite(c.Subject)
	subject = textutil.FinalDot(subject)
	subject += " [" + c.Author + "]"
	subject = textutil.UcFirst(subject)

	return &ClassifiedCommit{
		Commit:  c,
		Section: section,
		Subject: subject,
	}
}
