// Package runner assembles the changelog document: it partitions the commit
// history at release tag boundaries and renders one block per release.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jeffrom/chlog/commit"
	"github.com/jeffrom/chlog/config"
	"github.com/jeffrom/chlog/model"
	"github.com/jeffrom/chlog/textutil"
	"github.com/jeffrom/chlog/vcs"
)

type Runner struct {
	cfg        config.Config
	vcs        vcs.Interface
	rules      *config.Rules
	classifier *commit.Classifier
}

func New(cfg config.Config, vcs vcs.Interface) (*Runner, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}
	return &Runner{
		cfg:        cfg,
		vcs:        vcs,
		rules:      rules,
		classifier: commit.NewClassifier(rules),
	}, nil
}

// Changelog writes the full document to w: a top-level heading, then one
// block per release, newest first, preceded by the unreleased block when it
// has entries.
func (r *Runner) Changelog(ctx context.Context, w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(underlined("Changelog", '='))

	boundaries, err := r.releaseTags(ctx)
	if err != nil {
		return err
	}
	commits, err := r.vcs.ReadCommits(ctx, vcs.Earliest, vcs.Head)
	if err != nil {
		return err
	}
	r.cfg.Debugf("%d commits, %d release tags", len(commits), len(boundaries))

	title := r.rules.UnreleasedLabel
	block := newSections(r.rules.Labels())

	// Walk newest to oldest. A commit carrying a release tag ends the
	// block above it and opens the tag's own block, which it belongs to.
	for i := len(commits) - 1; i >= 0; i-- {
		c := commits[i]
		if tag, ok := boundaries[c.ShortID]; ok {
			bw.WriteString(block.render(title))
			title = fmt.Sprintf("%s (%s)", tag.Name, tag.Date())
			block = newSections(r.rules.Labels())
		}

		cc := r.classifier.Classify(c)
		if cc.Ignored {
			continue
		}
		block.add(cc.Section, r.renderEntry(cc))
	}
	bw.WriteString(block.render(title))

	return bw.Flush()
}

// releaseTags returns the qualifying tags keyed by commit. When several
// tags point at one commit, the latest one wins.
func (r *Runner) releaseTags(ctx context.Context) (map[string]*model.Tag, error) {
	tags, err := r.vcs.ReadTags(ctx)
	if err != nil {
		return nil, err
	}
	tags = commit.FilterTags(tags, r.rules.TagFilter)
	commit.SortTags(tags)

	byCommit := make(map[string]*model.Tag, len(tags))
	for _, tag := range tags {
		byCommit[tag.ShortID] = tag
	}
	return byCommit, nil
}

// renderEntry lays out one classified commit: the subject as a wrapped list
// item, then the body reflowed and indented beneath it.
func (r *Runner) renderEntry(cc *commit.ClassifiedCommit) string {
	entry := textutil.IndentFirst(textutil.Wrap(cc.Subject), "- ")
	entry = strings.TrimSpace(entry) + "\n\n"

	if cc.Body != "" {
		entry += textutil.Indent(textutil.ParagraphWrap(cc.Body, r.rules.BodySplit), "  ")
		entry += "\n\n"
	}
	return entry
}
