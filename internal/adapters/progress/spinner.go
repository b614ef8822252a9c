package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/kleek-protocol/kleek-deploy/internal/usecase"
)

// SpinnerSink shows a spinner while transactions wait for confirmation
type SpinnerSink struct {
	spinner   *spinner.Spinner
	out       io.Writer
	startedAt time.Time
}

// NewSpinnerSink creates a spinner writing to stderr so stdout stays parseable
func NewSpinnerSink() *SpinnerSink {
	return newSpinnerSink(os.Stderr)
}

func newSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false
	return &SpinnerSink{spinner: s, out: out}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		if !r.spinner.Active() {
			r.startedAt = time.Now()
			r.spinner.Start()
		}
		r.spinner.Suffix = " " + event.Message
		return
	}

	if r.spinner.Active() {
		r.spinner.Stop()
		if event.Stage != "" {
			fmt.Fprintf(r.out, "%s %s (%s)\n", color.GreenString("✓"), event.Stage, time.Since(r.startedAt).Round(time.Millisecond))
		}
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.pause(func() {
		fmt.Fprintln(r.out, color.New(color.FgCyan).Sprint(message))
	})
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.pause(func() {
		fmt.Fprintln(r.out, color.New(color.FgRed).Sprint(message))
	})
}

// pause stops the spinner around a print and restarts it if it was running
func (r *SpinnerSink) pause(print func()) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	print()

	if wasActive {
		r.spinner.Start()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
