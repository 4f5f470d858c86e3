package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/jeffrom/chlog/textutil"
)

// Explain reports how each subject would classify under the configured
// rules: whether it is ignored, the section it files under, and the
// rewritten entry text. Useful for debugging a rule set without generating
// the whole document.
func (r *Runner) Explain(ctx context.Context, w io.Writer, subjects []string) error {
	bw := bufio.NewWriter(w)
	for _, subject := range subjects {
		fmt.Fprintf(bw, "%s\n", subject)
		if r.classifier.Ignores(subject) {
			fmt.Fprintf(bw, "  ignored\n")
			continue
		}

		section := r.classifier.Section(subject)
		if section == "" {
			section = "Other"
		}
		entry := textutil.UcFirst(textutil.FinalDot(r.classifier.Rewrite(subject)))
		fmt.Fprintf(bw, "  section: %s\n", section)
		fmt.Fprintf(bw, "  entry: %s\n", entry)
	}
	return bw.Flush()
}
