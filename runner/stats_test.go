package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jeffrom/chlog/config"
	"github.com/jeffrom/chlog/model"
	"github.com/jeffrom/chlog/vcs"
)

func TestStats(t *testing.T) {
	cfg := newTestConfig(t, &config.Config{Ignore: []string{`^wip`}})
	m := vcs.NewMock().SetCommits(
		&model.Commit{ShortID: "c0", Subject: "initial commit", Author: "x"},
		&model.Commit{ShortID: "c1", Subject: "fix: one", Author: "x"},
		&model.Commit{ShortID: "c2", Subject: "fix: two", Author: "y"},
		&model.Commit{ShortID: "c3", Subject: "new: three", Author: "x"},
		&model.Commit{ShortID: "c4", Subject: "wip", Author: "y"},
	)

	rnr, err := New(cfg, m)
	if err != nil {
		t.Fatal(err)
	}
	stats, err := rnr.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if stats.Commits != 4 {
		t.Errorf("expected 4 commits, got %d", stats.Commits)
	}
	expectCounters := []string{"section", "author", "ignored"}
	for _, expect := range expectCounters {
		counts, ok := stats.Counts[expect]
		if !ok {
			t.Errorf("expected %q counter", expect)
		} else if len(counts) == 0 {
			t.Errorf("expected %q counter not to be empty", expect)
		}
	}

	b := &bytes.Buffer{}
	if err := stats.TextSummary(b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.HasPrefix(out, "4 commits\n") {
		t.Errorf("unexpected summary prefix:\n%s", out)
	}
	for _, expect := range []string{"Section:", "Author:", "Ignored:", "Fix", "New"} {
		if !strings.Contains(out, expect) {
			t.Errorf("expected summary to contain %q:\n%s", expect, out)
		}
	}
}
