package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/jeffrom/chlog/vcs"
)

// Stats summarizes how the configured rules classify a repository's
// history: entries per section, ignored commits, and per-author counts.
type Stats struct {
	Commits int64
	Counts  map[string][]*statCount
}

func (s *Stats) Add(bucket, name string, n int64) {
	counts := s.Counts[bucket]
	count, found := s.findCount(name, counts)
	if !found {
		counts = append(counts, count)
	}
	count.Add(n)

	s.Counts[bucket] = counts
}

func (s *Stats) findCount(name string, counts []*statCount) (*statCount, bool) {
	for _, c := range counts {
		if c.label == name {
			return c, true
		}
	}
	return &statCount{label: name}, false
}

func (s *Stats) sortedBuckets() []string {
	buckets := make([]string, len(s.Counts))
	i := 0
	for name := range s.Counts {
		buckets[i] = name
		i++
	}
	sort.Strings(buckets)
	return buckets
}

type statCount struct {
	label string
	n     int64
}

func (c *statCount) Add(n int64) {
	c.n += n
}

func (s *Stats) TextSummary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(fmt.Sprintf("%d commits\n\n", s.Commits))

	buckets := s.sortedBuckets()
	for _, name := range buckets {
		counts := s.Counts[name]
		sort.Slice(counts, func(i, j int) bool {
			if counts[i].n == counts[j].n {
				return counts[i].label < counts[j].label
			}
			return counts[i].n > counts[j].n
		})
		bw.WriteString(fmt.Sprintf("%s:\n", toTitle(name)))
		for _, count := range counts {
			label := count.label
			if label == "" {
				label = "n/a"
			}
			bw.WriteString(fmt.Sprintf("  %20s\t\t%d\n", label, count.n))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// Stats classifies the full history without rendering anything.
func (r *Runner) Stats(ctx context.Context) (*Stats, error) {
	commits, err := r.vcs.ReadCommits(ctx, vcs.Earliest, vcs.Head)
	if err != nil {
		return nil, err
	}
	stats := &Stats{
		Commits: int64(len(commits)),
		Counts:  make(map[string][]*statCount),
	}

	for _, c := range commits {
		cc := r.classifier.Classify(c)
		if cc.Ignored {
			stats.Add("ignored", "ignored", 1)
			continue
		}
		section := cc.Section
		if section == "" {
			section = "Other"
		}
		stats.Add("section", section, 1)
		stats.Add("author", c.Author, 1)
	}
	return stats, nil
}

var nonAlphaRE = regexp.MustCompile(`[^A-Za-z]`)

func toTitle(s string) string {
	s = nonAlphaRE.ReplaceAllLiteralString(s, " ")
	return strings.Title(s)
}
