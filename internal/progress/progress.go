package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Options configures progress reporting behavior.
type Options struct {
	Quiet   bool
	Verbose bool
	Out     io.Writer // defaults to os.Stdout
}

// Manager handles the file-creation progress bar and trace output.
type Manager struct {
	options Options
	bar     *progressbar.ProgressBar
}

// NewManager creates a new progress manager.
func NewManager(options Options) *Manager {
	if options.Out == nil {
		options.Out = os.Stdout
	}
	return &Manager{options: options}
}

// InitProgress initializes the progress bar over the total file count.
func (pm *Manager) InitProgress(totalFiles int64, description string) {
	if pm.options.Quiet || totalFiles == 0 {
		return
	}

	pm.bar = progressbar.NewOptions64(totalFiles,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(65),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			// #nosec G104 - progress bar completion message is not critical
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSpinnerType(14),
	)
}

// Step advances the progress bar by one created file.
func (pm *Manager) Step() {
	if pm.options.Quiet || pm.bar == nil {
		return
	}
	// #nosec G104 - progress bar errors are not critical for functionality
	pm.bar.Add(1)
}

// Finish marks the progress as complete.
func (pm *Manager) Finish() {
	if pm.options.Quiet || pm.bar == nil {
		return
	}
	// #nosec G104 - progress bar errors are not critical for functionality
	pm.bar.Finish()
}

// PrintInfo prints trace messages (unless quiet mode).
func (pm *Manager) PrintInfo(format string, args ...interface{}) {
	if pm.options.Quiet {
		return
	}
	// Clear the progress bar before printing to avoid line breaks
	if pm.bar != nil {
		// #nosec G104 - progress bar clear is not critical for functionality
		pm.bar.Clear()
	}
	// #nosec G104 - trace output errors are not critical for functionality
	fmt.Fprintf(pm.options.Out, format, args...)
}

// PrintVerbose prints additional detail if verbose mode is enabled.
func (pm *Manager) PrintVerbose(format string, args ...interface{}) {
	if !pm.options.Verbose || pm.options.Quiet {
		return
	}
	if pm.bar != nil {
		// #nosec G104 - progress bar clear is not critical for functionality
		pm.bar.Clear()
	}
	// #nosec G104 - verbose output errors are not critical for functionality
	fmt.Fprintf(pm.options.Out, format, args...)
}
