package utils

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Spinner descriptions
const (
	DescFetching = "Fetching manifest"
)

const spinnerInterval = 100 * time.Millisecond

// NewSpinner creates an indeterminate spinner for operations with no known
// size, such as waiting on the manifest request. A nil writer means stderr
// so the spinner never mixes with rendered output on stdout.
//
// Example:
//
//	spin := utils.NewSpinner(os.Stderr, utils.DescFetching)
//	defer spin.Finish()
func NewSpinner(w io.Writer, description string) *progressbar.ProgressBar {
	if w == nil {
		w = os.Stderr
	}
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
	)
}

// StartSpinner shows a spinner on w and keeps it moving until the returned
// stop func is called. Stop clears the spinner and may be called more than once.
func StartSpinner(w io.Writer, description string) (stop func()) {
	bar := NewSpinner(w, description)
	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(quit)
			<-done
			_ = bar.Finish()
		})
	}
}
