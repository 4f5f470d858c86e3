// Package chlog generates release-grouped changelogs from git commit
// history.
//
// Related packages: config, commit, runner, model, vcs, vcs/gitcli
package chlog

import "github.com/jeffrom/chlog/config"

// Config holds most of the configuration variables for chlog. This struct is
// intended for command-line use, so not all of its attributes are applicable
// to every operation.
//
// See "go doc github.com/jeffrom/chlog/config Config" for more information.
type Config = config.Config
