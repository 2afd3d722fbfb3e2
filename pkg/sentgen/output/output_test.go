package output

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatPlain(t *testing.T) {
	candidates := []string{"the cat sat", "dogs bark", "fish swim"}

	lines := Format(candidates, Options{})

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if line != candidates[i] {
			t.Errorf("line %d = %q, want %q", i, line, candidates[i])
		}
		if strings.Contains(line, "\t") {
			t.Errorf("line %d contains an injected tab: %q", i, line)
		}
	}
}

func TestFormatWithIndices(t *testing.T) {
	candidates := []string{"the cat sat", "dogs bark", "fish swim"}

	lines := Format(candidates, Options{CreateSentenceIndices: true})

	want := []string{"0\tthe cat sat", "1\tdogs bark", "2\tfish swim"}
	for i, line := range lines {
		if line != want[i] {
			t.Errorf("line %d = %q, want %q", i, line, want[i])
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, Options{CreateSentenceIndices: true}); len(got) != 0 {
		t.Errorf("empty input should produce no lines, got %v", got)
	}
}

func TestSampleSubset(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}
	rng := rand.New(rand.NewSource(7))

	got := Sample(lines, 3, rng)

	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	seen := make(map[string]bool)
	valid := make(map[string]bool)
	for _, l := range lines {
		valid[l] = true
	}
	for _, l := range got {
		if !valid[l] {
			t.Errorf("sampled line %q not in input", l)
		}
		if seen[l] {
			t.Errorf("sampled line %q appears twice", l)
		}
		seen[l] = true
	}
}

func TestSampleCapLargerThanInput(t *testing.T) {
	lines := []string{"a", "b", "c"}
	rng := rand.New(rand.NewSource(1))

	got := Sample(lines, 10, rng)

	if len(got) != 3 {
		t.Fatalf("cap beyond input should return all lines, got %d", len(got))
	}
	counts := make(map[string]int)
	for _, l := range got {
		counts[l]++
	}
	for _, l := range lines {
		if counts[l] != 1 {
			t.Errorf("line %q appears %d times, want 1", l, counts[l])
		}
	}
}

func TestSampleDoesNotModifyInput(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}
	rng := rand.New(rand.NewSource(42))

	Sample(lines, 2, rng)

	want := []string{"a", "b", "c", "d"}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("input mutated: %v", lines)
		}
	}
}

func TestSampleReproducibleWithSeed(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e", "f"}

	first := Sample(lines, 3, rand.New(rand.NewSource(99)))
	second := Sample(lines, 3, rand.New(rand.NewSource(99)))

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different samples: %v vs %v", first, second)
		}
	}
}

func TestWriterIndexedCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w := &Writer{
		Path: path,
		Options: Options{
			CreateSentenceIndices: true,
			MaxSentences:          2,
		},
		Rand: rand.New(rand.NewSource(3)),
	}

	if err := w.Write([]string{"the cat sat", "dogs bark", "fish swim"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}

	valid := map[string]bool{
		"0\tthe cat sat": true,
		"1\tdogs bark":   true,
		"2\tfish swim":   true,
	}
	if lines[0] == lines[1] {
		t.Errorf("duplicate line in output: %q", lines[0])
	}
	for _, l := range lines {
		if !valid[l] {
			t.Errorf("unexpected output line %q", l)
		}
	}
}

func TestWriterPreservesOrderWithoutCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w := &Writer{Path: path}

	candidates := []string{"one", "two", "three"}
	if err := w.Write(candidates); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "one\ntwo\nthree\n" {
		t.Errorf("unexpected file content: %q", string(data))
	}
}

func TestWriterEmptyInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	w := &Writer{Path: path, Options: Options{CreateSentenceIndices: true, MaxSentences: 5}, Rand: rand.New(rand.NewSource(1))}

	if err := w.Write(nil); err != nil {
		t.Fatalf("empty input should not error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file should exist: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty file, got %q", string(data))
	}
}

func TestWriterOverwritesPriorContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("stale line one\nstale line two\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w := &Writer{Path: path}
	if err := w.Write([]string{"fresh"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "fresh\n" {
		t.Errorf("prior content not fully replaced: %q", string(data))
	}
}

func TestWriterPropagatesIOError(t *testing.T) {
	w := &Writer{Path: filepath.Join(t.TempDir(), "missing", "out.txt")}
	if err := w.Write([]string{"x"}); err == nil {
		t.Fatal("expected an error writing to a missing directory")
	}
}
