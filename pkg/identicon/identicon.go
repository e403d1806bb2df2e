// Package identicon composes digest preprocessors and a pixel generator
// into a deterministic avatar pipeline: the same input always produces the
// same image, different inputs produce visually distinct images with high
// probability.
//
// A pipeline is an ordered chain of preprocessors (each consuming the
// previous stage's output) feeding exactly one generator. Before any work
// happens, an entropy gate compares the bit-length declared by the last
// preprocessor against the bit-length the generator requires; a chain that
// cannot supply enough digest bits is rejected up front rather than
// producing a truncated grid.
package identicon

import (
	"github.com/pixfall/identicon/pkg/hasher"
	"github.com/pixfall/identicon/pkg/pixel"
)

// Preprocessor transforms input data for a downstream stage and declares
// the entropy (digest bit-length) it supplies.
type Preprocessor interface {
	Entropy() int
	Process(data string) (string, error)
}

// Generator renders an avatar from the final preprocessed string and
// declares the entropy it requires.
type Generator interface {
	RequiredEntropy() int
	Generate(data string, spec pixel.RenderSpec) ([]byte, error)
}

// Identicon is a configured generation pipeline. It holds no per-call
// state, so one instance may be used from multiple goroutines.
type Identicon struct {
	preprocessors []Preprocessor
	generator     Generator
	checkEntropy  bool
}

// Option configures an Identicon under construction.
type Option func(*Identicon)

// WithPreprocessors replaces the preprocessor chain. Passing no arguments
// clears it; the raw input is then handed to the generator directly, which
// requires the caller to supply digest-shaped (hex) input.
func WithPreprocessors(ps ...Preprocessor) Option {
	return func(ic *Identicon) { ic.preprocessors = ps }
}

// WithGenerator replaces the generator.
func WithGenerator(g Generator) Option {
	return func(ic *Identicon) { ic.generator = g }
}

// WithEntropyCheck enables or disables the entropy gate. Enabled by
// default; disable only when the caller guarantees digest length some
// other way.
func WithEntropyCheck(enabled bool) Option {
	return func(ic *Identicon) { ic.checkEntropy = enabled }
}

// New builds a pipeline. Without options it is an MD5 hasher feeding a
// 5x5 pixel generator with the default palette; both defaults are
// constructed fresh per call, never shared between pipelines. New fails
// with ErrNoGenerator when the generator was explicitly cleared.
func New(opts ...Option) (*Identicon, error) {
	ic := &Identicon{
		preprocessors: []Preprocessor{hasher.NewMD5()},
		generator:     pixel.New(pixel.Config{}),
		checkEntropy:  true,
	}
	for _, opt := range opts {
		opt(ic)
	}
	if ic.generator == nil {
		return nil, ErrNoGenerator
	}
	return ic, nil
}

// Generate runs data through the preprocessor chain and renders the result
// with the generator. spec may be the zero value to use the generator's
// defaults.
//
// Only the last preprocessor's entropy is gated: stages are composed
// sequentially and only the final output feeds the generator. The gate is
// an accounting comparison of declared bit-lengths; it never inspects the
// processed data itself.
func (ic *Identicon) Generate(data string, spec pixel.RenderSpec) ([]byte, error) {
	if len(ic.preprocessors) > 0 {
		last := ic.preprocessors[len(ic.preprocessors)-1]
		if ic.checkEntropy && !sufficient(ic.generator.RequiredEntropy(), last.Entropy()) {
			return nil, &InsufficientEntropyError{
				Preprocessor: typeName(last),
				Provided:     last.Entropy(),
				Required:     ic.generator.RequiredEntropy(),
			}
		}
		for _, p := range ic.preprocessors {
			var err error
			data, err = p.Process(data)
			if err != nil {
				return nil, err
			}
		}
	}
	return ic.generator.Generate(data, spec)
}

// sufficient is the entropy gate: provided bits must meet or exceed the
// requirement (boundary inclusive).
func sufficient(required, provided int) bool {
	return provided >= required
}
