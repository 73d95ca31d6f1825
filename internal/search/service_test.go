package search

import "testing"

func TestDistanceToScore(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     float64
	}{
		{"identical vectors", 0.0, 1.0},
		{"close match", 0.2, 0.8},
		{"relevance floor", 0.6, 0.4},
		{"orthogonal", 1.0, 0.0},
		{"opposite vectors clamp to zero", 2.0, 0.0},
		{"negative distance clamps to one", -0.1, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceToScore(tt.distance)
			if got < tt.want-1e-9 || got > tt.want+1e-9 {
				t.Errorf("DistanceToScore(%f): %f, want %f", tt.distance, got, tt.want)
			}
		})
	}
}
