// Package workers runs the housekeeping steps that surround a CLI command,
// such as pulling from and pushing to the sync archive.
//
// A failing worker is logged and skipped; it never fails the command it
// surrounds.
package workers

import "context"

// Worker is one housekeeping step.
//
// Example implementation:
//
//	type touchWorker struct{ path string }
//
//	func (w *touchWorker) Name() string { return "touch" }
//
//	func (w *touchWorker) Run(ctx context.Context) error {
//	    return os.WriteFile(w.path, nil, 0o600)
//	}
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
