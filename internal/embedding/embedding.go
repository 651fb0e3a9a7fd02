// Package embedding provides text embedding backends for semantic scoring.
// Callers hold an Encoder and never construct a backend themselves, so the
// scoring paths degrade cleanly when no backend is configured.
package embedding

import "context"

// Encoder turns text into dense vectors.
type Encoder interface {
	// Encode embeds a single text.
	Encode(ctx context.Context, text string) ([]float32, error)
	// EncodeBatch embeds several texts in one round trip. The result keeps
	// input order.
	EncodeBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the encoder.
	Close() error
}
