package producer

import "context"

// Manual stands in for a pre-existing, hand-supplied file. It computes
// nothing and never goes through the output contract: the file is
// assumed to already be formatted and sampled by whoever supplied it.
// The pipeline stage built around it declares the filename as both its
// output and its own input, so the scheduler treats generation as a
// no-op. A missing file surfaces later, as an I/O error in whatever
// stage reads it.
type Manual struct {
	Filename string
}

// Sentences implements Producer. It always returns nothing; Manual's
// artifact is the file itself.
func (m *Manual) Sentences(ctx context.Context) ([]string, error) {
	return nil, nil
}
