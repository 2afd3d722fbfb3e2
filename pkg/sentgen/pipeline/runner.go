package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"
)

// Runner executes stages sequentially, in the order given. One stage
// runs to completion before the next starts; a failure aborts the rest
// of the run.
type Runner struct {
	// Force runs every stage even when its output looks fresh.
	Force bool
}

// Run executes the stages. Stages whose outputs are all newer than their
// inputs are skipped unless Force is set. The freshness check is
// advisory; authoritative scheduling belongs to the enclosing pipeline.
func (r *Runner) Run(ctx context.Context, stages []Stage) error {
	for _, st := range stages {
		if !r.Force && Fresh(st) {
			log.Printf("stage %s: output up to date, skipping", st.Name())
			continue
		}
		log.Printf("stage %s: running", st.Name())
		if err := st.Run(ctx); err != nil {
			return fmt.Errorf("stage %s: %w", st.Name(), err)
		}
	}
	return nil
}

// Fresh reports whether every output of the stage exists, carries no
// in-progress marker, and is at least as new as every input.
func Fresh(st Stage) bool {
	oldestOutput := time.Time{}
	for i, out := range st.Outputs() {
		info, err := os.Stat(out)
		if err != nil {
			return false
		}
		if _, err := os.Stat(MarkerPath(out)); err == nil {
			// A leftover marker means the last run died mid-write.
			return false
		}
		if i == 0 || info.ModTime().Before(oldestOutput) {
			oldestOutput = info.ModTime()
		}
	}

	for _, in := range st.Inputs() {
		info, err := os.Stat(in)
		if err != nil {
			// Missing inputs surface as I/O errors when the stage
			// runs; not our call to make here.
			continue
		}
		if info.ModTime().After(oldestOutput) {
			return false
		}
	}
	return true
}
