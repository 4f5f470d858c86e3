package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jeffrom/chlog/config"
	"github.com/jeffrom/chlog/vcs"
)

func TestExplain(t *testing.T) {
	cfg := newTestConfig(t, &config.Config{Ignore: []string{`^wip`}})
	rnr, err := New(cfg, vcs.NewMock())
	if err != nil {
		t.Fatal(err)
	}

	b := &bytes.Buffer{}
	subjects := []string{"fix: a crash", "wip stuff", "no prefix here"}
	if err := rnr.Explain(context.Background(), b, subjects); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	for _, expect := range []string{
		"fix: a crash\n  section: Fix\n  entry: A crash.\n",
		"wip stuff\n  ignored\n",
		"no prefix here\n  section: Other\n  entry: No prefix here.\n",
	} {
		if !strings.Contains(out, expect) {
			t.Errorf("expected output to contain %q, got:\n%s", expect, out)
		}
	}
}
