// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jeffrom/chlog/config"
	"github.com/jeffrom/chlog/model"
	"github.com/jeffrom/chlog/vcs"
)

// commitFormat is the fixed field list for commit lookups: short hash,
// subject, author name, author date, author timestamp, committer name,
// committer timestamp, raw message, body. NUL-joined since NUL cannot
// appear in commit text.
var commitFormat = strings.Join([]string{
	"%h", "%s", "%an", "%ad", "%at", "%cn", "%ct", "%B", "%b",
}, "%x00")

const expectedLogFields = 9

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg      config.Config
	dir      string
	bare     bool
	toplevel string
	gitdir   string
}

// Open associates a Git with a repository directory and resolves its
// identity facts once up front.
func Open(ctx context.Context, cfg config.Config, dir string) (*Git, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	g := &Git{cfg: cfg, dir: abs}

	bare, err := g.callString(ctx, []string{"rev-parse", "--is-bare-repository"})
	if err != nil {
		return nil, err
	}
	g.bare = bare == "true"

	if !g.bare {
		toplevel, err := g.callString(ctx, []string{"rev-parse", "--show-toplevel"})
		if err != nil {
			return nil, err
		}
		g.toplevel = toplevel
	}

	gitdir, err := g.callString(ctx, []string{"rev-parse", "--git-dir"})
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(gitdir) {
		gitdir = filepath.Join(abs, gitdir)
	}
	g.gitdir = filepath.Clean(gitdir)
	return g, nil
}

func (g *Git) Bare() bool       { return g.bare }
func (g *Git) Toplevel() string { return g.toplevel }
func (g *Git) GitDir() string   { return g.gitdir }

func (g *Git) ResolveCommit(ctx context.Context, ref string) (*model.Commit, error) {
	target := ref
	if ref == vcs.Earliest {
		earliest, err := g.earliestCommit(ctx)
		if err != nil {
			return nil, err
		}
		target = earliest
	}

	b, err := g.call(ctx, []string{"log", "-1", "--pretty=format:" + commitFormat, target, "--"})
	if err != nil {
		g.cfg.Debugf("resolve %q: %v", ref, err)
		return nil, vcs.NotFoundError{Ref: ref}
	}
	return parseCommit(ref, string(b))
}

// earliestCommit finds the oldest commit reachable from the branch tip.
func (g *Git) earliestCommit(ctx context.Context) (string, error) {
	b, err := g.call(ctx, []string{"log", "--format=%H"})
	if err != nil {
		return "", err
	}
	var last string
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			last = s
		}
	}
	if last == "" {
		return "", vcs.NotFoundError{Ref: vcs.Earliest}
	}
	return last, nil
}

func parseCommit(ref, raw string) (*model.Commit, error) {
	parts := strings.Split(raw, "\x00")
	if len(parts) != expectedLogFields {
		return nil, fmt.Errorf("gitcli: expected %d fields from git log, got %d", expectedLogFields, len(parts))
	}
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	authorDate, err := parseUnixTimestamp(parts[4])
	if err != nil {
		return nil, err
	}
	committerDate, err := parseUnixTimestamp(parts[6])
	if err != nil {
		return nil, err
	}

	return &model.Commit{
		Ref:           ref,
		ShortID:       parts[0],
		Subject:       parts[1],
		Author:        parts[2],
		AuthorDate:    authorDate,
		Committer:     parts[5],
		CommitterDate: committerDate,
		RawBody:       parts[7],
		Body:          parts[8],
	}, nil
}

func (g *Git) ReadCommits(ctx context.Context, older, newer string) ([]*model.Commit, error) {
	olderC, err := g.ResolveCommit(ctx, older)
	if err != nil {
		return nil, err
	}
	newerC, err := g.ResolveCommit(ctx, newer)
	if err != nil {
		return nil, err
	}
	if olderC.Equal(newerC) {
		return nil, nil
	}

	b, err := g.call(ctx, []string{"rev-list", olderC.ShortID + ".." + newerC.ShortID})
	if err != nil {
		return nil, err
	}
	var ids []string
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		if s := strings.TrimSpace(scanner.Text()); s != "" {
			ids = append(ids, s)
		}
	}
	if len(ids) == 0 {
		return nil, vcs.OrderingError{Older: older, Newer: newer}
	}

	// rev-list prints newest first
	commits := make([]*model.Commit, len(ids))
	for i, id := range ids {
		c, err := g.ResolveCommit(ctx, id)
		if err != nil {
			return nil, err
		}
		commits[len(ids)-1-i] = c
	}
	return commits, nil
}

func (g *Git) ReadTags(ctx context.Context) ([]*model.Tag, error) {
	b, err := g.call(ctx, []string{"tag", "-l"})
	if err != nil {
		return nil, err
	}

	var tags []*model.Tag
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		c, err := g.ResolveCommit(ctx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, &model.Tag{Commit: *c, Name: name})
	}
	return tags, nil
}

func (g *Git) ReadConfig(ctx context.Context) (map[string]interface{}, error) {
	b, err := g.call(ctx, []string{"config", "-l"})
	if err != nil {
		return nil, err
	}

	flat := make(map[string]string)
	var lastKey string
	scanner := bufio.NewScanner(bytes.NewBuffer(b))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		i := strings.Index(line, "=")
		if i < 0 {
			// continuation of a multi-line value
			if lastKey != "" {
				flat[lastKey] += "\n" + line
			}
			continue
		}
		key, val := line[:i], line[i+1:]
		flat[key] = val
		lastKey = key
	}
	return vcs.Inflate(flat, ".")
}
