// Package pipeline adapts sentence producers into schedulable stages:
// declared inputs and outputs for dependency tracking, an in-progress
// marker for crash detection, and a small sequential runner.
package pipeline

import (
	"context"
	"crypto/rand"
	"fmt"
	mathrand "math/rand"
	"os"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/sentgen/pkg/sentgen/config"
	"github.com/cognicore/sentgen/pkg/sentgen/output"
	"github.com/cognicore/sentgen/pkg/sentgen/producer"
)

// Stage is the unit the surrounding scheduler works with.
type Stage interface {
	Name() string

	// Inputs are the paths the stage reads; an external scheduler uses
	// them for staleness decisions.
	Inputs() []string

	// Outputs are the paths the stage writes.
	Outputs() []string

	// Run executes the stage to completion. Synchronous: it either
	// fully completes or fails outright.
	Run(ctx context.Context) error
}

// NewStage builds the stage described by cfg. Manual stages bypass
// production entirely; every other kind wraps a producer and an output
// writer. A non-zero seed makes both sampling and corruption
// reproducible.
func NewStage(cfg config.Stage, deps producer.Deps) (Stage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Producer == config.KindManual {
		return &ManualStage{name: cfg.Name, filename: cfg.Filename}, nil
	}

	if deps.Rand == nil && cfg.Seed != 0 {
		deps.Rand = mathrand.New(mathrand.NewSource(cfg.Seed))
	}

	p, err := producer.New(cfg, deps)
	if err != nil {
		return nil, err
	}

	writer := &output.Writer{
		Path: cfg.Output,
		Options: output.Options{
			CreateSentenceIndices: cfg.CreateSentenceIndices,
			MaxSentences:          cfg.MaxSentences,
		},
		Rand: deps.Rand,
	}

	return &ProducerStage{
		name:     cfg.Name,
		producer: p,
		writer:   writer,
		inputs:   stageInputs(cfg),
	}, nil
}

func stageInputs(cfg config.Stage) []string {
	var in []string
	add := func(paths ...string) {
		for _, p := range paths {
			if p != "" {
				in = append(in, p)
			}
		}
	}

	switch cfg.Producer {
	case config.KindSelector:
		add(cfg.CorpusDB, cfg.Stopwords)
	case config.KindCorruptor:
		add(cfg.Source, cfg.Vocabulary)
	case config.KindCorpusCorruptor:
		add(cfg.Source, cfg.CorpusDB)
	case config.KindQuestionInterpreter:
		add(cfg.Questions)
	}
	return in
}

// ProducerStage runs a producer and hands its candidates to the output
// writer.
type ProducerStage struct {
	name     string
	producer producer.Producer
	writer   *output.Writer
	inputs   []string
}

func (s *ProducerStage) Name() string      { return s.name }
func (s *ProducerStage) Inputs() []string  { return s.inputs }
func (s *ProducerStage) Outputs() []string { return []string{s.writer.Path} }

// Run produces candidates and rewrites the output file in full. A marker
// file tagged with a fresh run id exists for exactly the duration of the
// run; a marker left behind tells the scheduler the previous run died
// mid-way and the output cannot be trusted.
func (s *ProducerStage) Run(ctx context.Context) error {
	marker := MarkerPath(s.writer.Path)
	runID := ulid.MustNew(ulid.Now(), ulid.Monotonic(rand.Reader, 0)).String()
	if err := os.WriteFile(marker, []byte(runID+"\n"), 0644); err != nil {
		return fmt.Errorf("write marker %s: %w", marker, err)
	}

	candidates, err := s.producer.Sentences(ctx)
	if err != nil {
		return fmt.Errorf("produce: %w", err)
	}
	if err := s.writer.Write(candidates); err != nil {
		return err
	}

	if err := os.Remove(marker); err != nil {
		return fmt.Errorf("remove marker %s: %w", marker, err)
	}
	return nil
}

// MarkerPath is the in-progress marker next to an output file.
func MarkerPath(outputPath string) string {
	return outputPath + ".inprogress"
}

// ManualStage wraps a hand-supplied, pre-formatted file. The file is
// declared as both the stage's output and its own input, so generating
// it is a no-op for any scheduler comparing timestamps.
type ManualStage struct {
	name     string
	filename string
}

func (s *ManualStage) Name() string      { return s.name }
func (s *ManualStage) Inputs() []string  { return []string{s.filename} }
func (s *ManualStage) Outputs() []string { return []string{s.filename} }

// Run performs no work; the artifact is assumed to already exist in the
// correct format. If it does not, downstream readers fail with an I/O
// error of their own.
func (s *ManualStage) Run(ctx context.Context) error { return nil }
