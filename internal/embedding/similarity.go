package embedding

import "math"

// CosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths and zero vectors yield 0 rather than an error, since a
// degenerate embedding should read as "no similarity" downstream.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		av := float64(a[i])
		bv := float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
