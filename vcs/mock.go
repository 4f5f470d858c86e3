package vcs

import (
	"context"
	"time"

	"github.com/jeffrom/chlog/model"
)

// Mock is an in-memory Interface for tests. Commits are provided oldest
// first; any missing timestamps are filled in one minute apart so tag
// ordering is stable.
type Mock struct {
	t       time.Time
	commits []*model.Commit
	tags    []*mockTag
	config  map[string]interface{}
}

type mockTag struct {
	name     string
	commitID string
}

func NewMock() *Mock {
	return &Mock{
		t: time.Date(2020, 8, 17, 16, 26, 0, 0, time.UTC),
	}
}

// SetCommits replaces the mock history, oldest first.
func (m *Mock) SetCommits(commits ...*model.Commit) *Mock {
	finalCommits := make([]*model.Commit, len(commits))
	for i, commit := range commits {
		c := *commit
		if c.AuthorDate.IsZero() {
			c.AuthorDate = m.t
		}
		if c.CommitterDate.IsZero() {
			c.CommitterDate = m.t
		}
		m.t = m.t.Add(time.Minute)
		finalCommits[i] = &c
	}
	m.commits = finalCommits
	return m
}

// Tag names a commit in the mock history as a release tag.
func (m *Mock) Tag(name, commitID string) *Mock {
	m.tags = append(m.tags, &mockTag{name: name, commitID: commitID})
	return m
}

func (m *Mock) SetConfig(config map[string]interface{}) *Mock {
	m.config = config
	return m
}

func (m *Mock) ResolveCommit(ctx context.Context, ref string) (*model.Commit, error) {
	if len(m.commits) == 0 {
		return nil, NotFoundError{Ref: ref}
	}
	switch ref {
	case Head:
		return m.commits[len(m.commits)-1], nil
	case Earliest:
		return m.commits[0], nil
	}
	for _, tag := range m.tags {
		if tag.name == ref {
			return m.ResolveCommit(ctx, tag.commitID)
		}
	}
	for _, c := range m.commits {
		if c.ShortID == ref {
			return c, nil
		}
	}
	return nil, NotFoundError{Ref: ref}
}

func (m *Mock) ReadCommits(ctx context.Context, older, newer string) ([]*model.Commit, error) {
	olderC, err := m.ResolveCommit(ctx, older)
	if err != nil {
		return nil, err
	}
	newerC, err := m.ResolveCommit(ctx, newer)
	if err != nil {
		return nil, err
	}
	if olderC.Equal(newerC) {
		return nil, nil
	}

	olderIdx, newerIdx := -1, -1
	for i, c := range m.commits {
		if c.Equal(olderC) {
			olderIdx = i
		}
		if c.Equal(newerC) {
			newerIdx = i
		}
	}
	if newerIdx <= olderIdx {
		return nil, OrderingError{Older: older, Newer: newer}
	}
	return m.commits[olderIdx+1 : newerIdx+1], nil
}

func (m *Mock) ReadTags(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag
	for _, tag := range m.tags {
		c, err := m.ResolveCommit(ctx, tag.commitID)
		if err != nil {
			return nil, err
		}
		tags = append(tags, &model.Tag{Commit: *c, Name: tag.name})
	}
	return tags, nil
}

func (m *Mock) ReadConfig(ctx context.Context) (map[string]interface{}, error) {
	return m.config, nil
}
