package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"net"
	"net/http/httptest"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/sosedoff/gitkit"
)

func TestChlogClonedRepo(t *testing.T) {
	if testing.Short() {
		t.Skip("-short")
	}
	if runtime.GOOS == "windows" {
		t.Skip("windows not supported (gitkit uses syscall.Kill)")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Fatal(err)
	}
	t.Setenv(configEnv, "")

	ctx := context.Background()
	srv := newGitServer()
	addr := srv.start(t)
	defer srv.stop(t)

	cloneDir, err := ioutil.TempDir("", "chlog-clone")
	die(err)
	t.Setenv("HOME", cloneDir)
	t.Logf("Clone dir: %s", cloneDir)
	defer func() {
		if t.Failed() {
			t.Logf("Test failed. Leaving clone dir: %s", cloneDir)
			return
		}
		os.RemoveAll(cloneDir)
	}()

	cloneURL := fmt.Sprintf("http://%s/myrepo.git", addr)
	call(ctx, t, cloneDir, "git", "clone", cloneURL, ".")
	call(ctx, t, cloneDir, "git", "config", "--local", "user.email", "chlog-test@example.com")
	call(ctx, t, cloneDir, "git", "config", "--local", "user.name", "chlog-test")
	call(ctx, t, cloneDir, "git", "checkout", "-b", "master")

	call(ctx, t, cloneDir, "git", "commit", "--allow-empty", "-m", "initial commit")
	call(ctx, t, cloneDir, "git", "commit", "--allow-empty", "-m", "new: served feature")
	call(ctx, t, cloneDir, "git", "tag", "v0.1.0")
	call(ctx, t, cloneDir, "git", "push", "origin", "master", "--tags")

	got := callChlog(t, cloneDir)
	expect := strings.Join([]string{
		"Changelog",
		"=========",
		"",
		"v0.1.0 (2020-08-17)",
		"-------------------",
		"",
		"New",
		"~~~",
		"",
		"- Served feature. [chlog-test]",
		"",
		"",
	}, "\n")
	if got != expect {
		t.Fatalf("expected:\n%q\n\ngot:\n%q", expect, got)
	}
}

type gitServer struct {
	cfg  gitkit.Config
	dir  string
	svc  *gitkit.Server
	http *httptest.Server
}

func newGitServer() *gitServer {
	dir, err := ioutil.TempDir("", "chlog-server")
	if err != nil {
		panic(err)
	}

	cfg := gitkit.Config{
		Dir:        dir,
		AutoCreate: true,
	}
	return &gitServer{
		dir: dir,
		cfg: cfg,
		svc: gitkit.New(cfg),
	}
}

func (g *gitServer) start(t *testing.T) net.Addr {
	t.Helper()
	if err := g.svc.Setup(); err != nil {
		t.Fatal(err)
	}
	g.http = httptest.NewUnstartedServer(g.svc)
	g.http.Start()
	addr := g.http.Listener.Addr()
	t.Logf("Test git server listening: %s", addr)
	return addr
}

func (g *gitServer) stop(t *testing.T) {
	t.Logf("Stopping git server and removing tmpdir %s", g.dir)
	g.http.Close()
	if t.Failed() {
		t.Logf("Test failed so leaving tmpdir in place: %s", g.dir)
		return
	}
	os.RemoveAll(g.dir)
}
