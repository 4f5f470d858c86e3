// Package model contains abstract data models.
package model

import "time"

// Commit is one revision read from the repository. It is immutable once
// constructed; identity is defined by ShortID alone, independent of the
// identifier used to look it up.
type Commit struct {
	Ref           string `json:"ref,omitempty"`
	ShortID       string `json:"commit"`
	Subject       string
	Author        string
	AuthorDate    time.Time
	Committer     string
	CommitterDate time.Time
	RawBody       string
	Body          string
}

// Date returns the calendar date of the author timestamp, in UTC.
func (c *Commit) Date() string {
	return c.AuthorDate.UTC().Format("2006-01-02")
}

func (c *Commit) Equal(other *Commit) bool {
	if other == nil {
		return false
	}
	return c.ShortID == other.ShortID
}

// Tag is a commit additionally known by a release tag name.
type Tag struct {
	Commit
	Name string
}
