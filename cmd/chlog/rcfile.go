package main

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"

	"github.com/jeffrom/chlog/config"
	"github.com/jeffrom/chlog/vcs/gitcli"
)

const configEnv = "CHLOG_CONFIG_FILENAME"
const configName = ".chlog.yml"

// readChlogYAML resolves and reads the config file. An explicitly named
// file (flag, environment, repository configuration) must exist; the
// well-known locations are optional. A nil result means no file anywhere,
// and the built-in defaults apply.
func readChlogYAML(ctx context.Context, git *gitcli.Git, flagPath string) (*config.Config, string, error) {
	type candidate struct {
		path     string
		required bool
	}

	var cands []candidate
	if flagPath != "" {
		cands = append(cands, candidate{path: flagPath, required: true})
	}
	if env := os.Getenv(configEnv); env != "" {
		cands = append(cands, candidate{path: env, required: true})
	}

	rcPath, err := configuredRCPath(ctx, git)
	if err != nil {
		return nil, "", err
	}
	if rcPath != "" {
		cands = append(cands, candidate{path: rcPath, required: true})
	}

	if !git.Bare() {
		cands = append(cands, candidate{path: filepath.Join(git.Toplevel(), configName)})
	}
	if home, err := os.UserHomeDir(); err == nil {
		cands = append(cands, candidate{path: filepath.Join(home, configName)})
	}
	cands = append(cands, candidate{path: filepath.Join("/etc", "chlog.yml")})

	for _, cand := range cands {
		b, err := ioutil.ReadFile(cand.path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && !cand.required {
				continue
			}
			return nil, "", err
		}
		cfg := &config.Config{}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, "", fmt.Errorf("%s: %w", cand.path, err)
		}
		return cfg, cand.path, nil
	}
	return nil, "", nil
}

// configuredRCPath reads "git config chlog.rc-path". Relative paths are
// resolved against the repository toplevel.
func configuredRCPath(ctx context.Context, git *gitcli.Git) (string, error) {
	repoCfg, err := git.ReadConfig(ctx)
	if err != nil {
		return "", err
	}
	section, ok := repoCfg["chlog"].(map[string]interface{})
	if !ok {
		return "", nil
	}
	p, ok := section["rc-path"].(string)
	if !ok || p == "" {
		return "", nil
	}
	if !filepath.IsAbs(p) && !git.Bare() {
		p = filepath.Join(git.Toplevel(), p)
	}
	return p, nil
}
