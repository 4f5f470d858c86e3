// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"
	"fmt"

	"github.com/jeffrom/chlog/model"
)

// Ref sentinels understood by ResolveCommit and ReadCommits.
const (
	// Head is the current branch tip.
	Head = "HEAD"
	// Earliest is the oldest commit reachable from the current branch tip.
	Earliest = "EARLIEST"
)

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

// OrderingError is returned by ReadCommits when the "newer" endpoint is not
// a descendant of the "older" one.
type OrderingError struct {
	Older string
	Newer string
}

func (e OrderingError) Error() string {
	return fmt.Sprintf("vcs: %q is not a descendant of %q", e.Newer, e.Older)
}

type Interface interface {
	// ResolveCommit looks up a single commit by identifier, which can be a
	// hash, a symbolic ref, a tag name, or one of the sentinels Head and
	// Earliest.
	ResolveCommit(ctx context.Context, ref string) (*model.Commit, error)
	// ReadCommits returns the commits reachable from newer but not older,
	// oldest first. The older endpoint itself is excluded. The result is
	// empty when both refs name the same commit.
	ReadCommits(ctx context.Context, older, newer string) ([]*model.Commit, error)
	// ReadTags returns all tags resolved to their commits, in no
	// particular order.
	ReadTags(ctx context.Context) ([]*model.Tag, error)
	// ReadConfig returns the repository configuration as a nested mapping
	// inflated from flat dotted keys.
	ReadConfig(ctx context.Context) (map[string]interface{}, error)
}
