package main

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeffrom/chlog/config"
)

// pin commit timestamps so titles and dates are reproducible
var testEnviron = []string{
	"GIT_AUTHOR_DATE=1597681570 +0000",
	"GIT_COMMITTER_DATE=1597681570 +0000",
}

func call(ctx context.Context, t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), testEnviron...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("%q failed: %v\n%s", args, err, string(out))
	}
}

func callChlog(t *testing.T, args ...string) string {
	t.Helper()
	out := &bytes.Buffer{}
	tio := &config.TerminalIO{Stdin: strings.NewReader(""), Stdout: out, Stderr: out}
	if err := run(append([]string{"chlog"}, args...), tio); err != nil {
		t.Fatalf("chlog %q failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func initTestRepo(ctx context.Context, t *testing.T) string {
	t.Helper()
	tmpDir, err := ioutil.TempDir("", "chlog-test")
	die(err)
	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("Test failed. Leaving temp dir: %s", tmpDir)
			return
		}
		os.RemoveAll(tmpDir)
	})

	t.Setenv("HOME", tmpDir)
	call(ctx, t, tmpDir, "git", "init")
	call(ctx, t, tmpDir, "git", "config", "--local", "user.email", "chlog-test@example.com")
	call(ctx, t, tmpDir, "git", "config", "--local", "user.name", "chlog-test")
	return tmpDir
}

func TestChlog(t *testing.T) {
	if testing.Short() {
		t.Skip("-short")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Fatal(err)
	}
	t.Setenv(configEnv, "")

	ctx := context.Background()
	dir := initTestRepo(ctx, t)

	rc := "unreleased_label: current\n"
	die(ioutil.WriteFile(filepath.Join(dir, configName), []byte(rc), 0644))

	for _, subject := range []string{
		"initial commit",
		"new: cool feature",
		"fix: cool fix",
	} {
		call(ctx, t, dir, "git", "commit", "--allow-empty", "-m", subject)
	}
	call(ctx, t, dir, "git", "tag", "1.0.0")
	for _, subject := range []string{
		"chg: rework",
		"treat me as other",
	} {
		call(ctx, t, dir, "git", "commit", "--allow-empty", "-m", subject)
	}

	got := callChlog(t, dir)
	expect := strings.Join([]string{
		"Changelog",
		"=========",
		"",
		"current",
		"-------",
		"",
		"Changes",
		"~~~~~~~",
		"",
		"- Rework. [chlog-test]",
		"",
		"Other",
		"~~~~~",
		"",
		"- Treat me as other. [chlog-test]",
		"",
		"1.0.0 (2020-08-17)",
		"------------------",
		"",
		"New",
		"~~~",
		"",
		"- Cool feature. [chlog-test]",
		"",
		"Fix",
		"~~~",
		"",
		"- Cool fix. [chlog-test]",
		"",
		"",
	}, "\n")
	if got != expect {
		t.Fatalf("expected:\n%q\n\ngot:\n%q", expect, got)
	}
}

func TestChlogRCPathConfig(t *testing.T) {
	if testing.Short() {
		t.Skip("-short")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Fatal(err)
	}
	t.Setenv(configEnv, "")

	ctx := context.Background()
	dir := initTestRepo(ctx, t)

	rc := "ignore:\n  - hidden\n"
	die(ioutil.WriteFile(filepath.Join(dir, "rules.yml"), []byte(rc), 0644))
	call(ctx, t, dir, "git", "config", "--local", "chlog.rc-path", "rules.yml")

	call(ctx, t, dir, "git", "commit", "--allow-empty", "-m", "initial commit")
	call(ctx, t, dir, "git", "commit", "--allow-empty", "-m", "a hidden commit")
	call(ctx, t, dir, "git", "commit", "--allow-empty", "-m", "a visible commit")

	got := callChlog(t, dir)
	if strings.Contains(got, "hidden") {
		t.Fatalf("expected rc-path rules to apply:\n%s", got)
	}
	if !strings.Contains(got, "- A visible commit. [chlog-test]") {
		t.Fatalf("expected visible entry:\n%s", got)
	}
}

func TestChlogExplain(t *testing.T) {
	if testing.Short() {
		t.Skip("-short")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Fatal(err)
	}
	t.Setenv(configEnv, "")

	ctx := context.Background()
	dir := initTestRepo(ctx, t)
	call(ctx, t, dir, "git", "commit", "--allow-empty", "-m", "initial commit")

	got := callChlog(t, "--explain", "fix: a crash", dir)
	for _, expect := range []string{"section: Fix", "entry: A crash."} {
		if !strings.Contains(got, expect) {
			t.Fatalf("expected explain output to contain %q:\n%s", expect, got)
		}
	}
}

func TestChlogUsageErrors(t *testing.T) {
	tio := &config.TerminalIO{Stdin: strings.NewReader(""), Stdout: ioutil.Discard, Stderr: ioutil.Discard}
	if err := run([]string{"chlog", "one", "two"}, tio); err == nil {
		t.Fatal("expected too many arguments to be an error")
	}
}

func TestChlogNotARepo(t *testing.T) {
	if testing.Short() {
		t.Skip("-short")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Fatal(err)
	}

	tmpDir, err := ioutil.TempDir("", "chlog-notarepo")
	die(err)
	defer os.RemoveAll(tmpDir)

	tio := &config.TerminalIO{Stdin: strings.NewReader(""), Stdout: ioutil.Discard, Stderr: ioutil.Discard}
	if err := run([]string{"chlog", tmpDir}, tio); err == nil {
		t.Fatal("expected error outside a git repository")
	}
}
