package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/jeffrom/chlog/config"
	"github.com/jeffrom/chlog/runner"
	"github.com/jeffrom/chlog/vcs/gitcli"
)

// Version is overridden by go build -X.
var Version string

func main() {
	if err := run(os.Args, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string, termio *config.TerminalIO) error {
	cfg := config.NewWithTerminalIO(nil, termio)

	var help bool
	var version bool
	var cfgFile string
	var printConfig bool
	var readStats bool
	var explains []string
	flags := pflag.NewFlagSet("chlog", pflag.ExitOnError)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "Print default configuration and exit")
	flags.BoolVarP(&readStats, "stats", "S", false, "print rule classification stats and exit")
	flags.StringArrayVar(&explains, "explain", nil, "explain how a commit `subject` classifies (\"-\" reads stdin)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}
	args := flags.Args()[1:]

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}
	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cfg.Printf("%s", string(b))
		return nil
	}

	repoDir := "."
	if len(args) > 1 {
		return errors.New("usage: chlog [flags] [REPOS]")
	}
	if len(args) == 1 {
		repoDir = args[0]
	}

	ctx := context.Background()
	git, err := gitcli.Open(ctx, cfg, repoDir)
	if err != nil {
		return err
	}

	fileCfg, rcPath, err := readChlogYAML(ctx, git, cfgFile)
	if err != nil {
		return err
	}
	if fileCfg != nil {
		cfg.Debugf("config file: %s", rcPath)
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return err
		}

		// explicitly empty lists in the file win over the defaults
		if fileCfg.Ignore != nil && len(fileCfg.Ignore) == 0 {
			cfg.Ignore = fileCfg.Ignore
		}
		if fileCfg.Replace != nil && len(fileCfg.Replace) == 0 {
			cfg.Replace = fileCfg.Replace
		}
		if fileCfg.Sections != nil && len(fileCfg.Sections) == 0 {
			cfg.Sections = fileCfg.Sections
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rnr, err := runner.New(cfg, git)
	if err != nil {
		return err
	}

	if readStats {
		stats, err := rnr.Stats(ctx)
		if err != nil {
			return err
		}
		return stats.TextSummary(cfg.Term.Stdout)
	}

	if len(explains) > 0 {
		subjects := explains
		if len(explains) == 1 && explains[0] == "-" {
			hasPipe := !isatty.IsTerminal(os.Stdin.Fd())
			if !hasPipe {
				return errors.New(`chlog: --explain - requires piped stdin`)
			}
			subjects = nil
			scanner := bufio.NewScanner(cfg.Term.Stdin)
			for scanner.Scan() {
				if s := scanner.Text(); s != "" {
					subjects = append(subjects, s)
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}
		}
		return rnr.Explain(ctx, cfg.Term.Stdout, subjects)
	}

	return rnr.Changelog(ctx, cfg.Term.Stdout)
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s [REPOS]

Run this command in a git repository to get a ReST changelog on stdout.

chlog uses a config file to filter meaningful commits and do some
formatting in commit messages.

Config file location is resolved in this order:

  - in shell environment variable CHLOG_CONFIG_FILENAME
  - in git configuration: git config chlog.rc-path
  - as .chlog.yml in the root of the current git repository
  - as ~/.chlog.yml
  - as /etc/chlog.yml

FLAGS
%s

EXAMPLES

# write the changelog to stdout
$ chlog

# preview how a commit subject would be classified
$ chlog --explain "fix: something"

# see how the configured rules cover the repository's history
$ chlog -S
`, os.Args[0], flags.FlagUsages())
}

func die(err error) {
	if err != nil {
		panic(err)
	}
}
