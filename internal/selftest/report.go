package selftest

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

type Result struct {
	Name     string
	Failures []string
	Duration time.Duration
}

func (r Result) Passed() bool { return len(r.Failures) == 0 }

type Report struct {
	Results []Result
}

func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed() {
			n++
		}
	}
	return n
}

// Err returns an error marked ErrFailed if any case failed.
func (r *Report) Err() error {
	if n := r.Failed(); n > 0 {
		return errors.Wrapf(ErrFailed, "%d of %d", n, len(r.Results))
	}
	return nil
}

// Write prints one line per case, the failure messages of failed cases, and a
// summary line. It returns Err() unless writing fails.
func (r *Report) Write(w io.Writer, colored bool) error {
	pass := color.New(color.FgGreen, color.Bold)
	fail := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)
	for _, c := range []*color.Color{pass, fail, dim} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, res := range r.Results {
		status := pass.Sprint("PASS")
		if !res.Passed() {
			status = fail.Sprint("FAIL")
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", status, res.Name, dim.Sprintf("(%s)", res.Duration.Round(time.Microsecond))); err != nil {
			return err
		}
		for _, f := range res.Failures {
			if _, err := fmt.Fprintf(w, "    %s\n", strings.ReplaceAll(f, "\n", "\n    ")); err != nil {
				return err
			}
		}
	}

	summary := pass.Sprintf("ok: %d cases passed", len(r.Results))
	if n := r.Failed(); n > 0 {
		summary = fail.Sprintf("FAILED: %d of %d cases", n, len(r.Results))
	}
	if _, err := fmt.Fprintln(w, summary); err != nil {
		return err
	}
	return r.Err()
}
