package dense

import (
	"encoding/json"
	"math"
	"testing"
)

func testNetwork() Network {
	return Network{
		InputSize: 2,
		Layers: []Layer{
			{
				Weights:    [][]float64{{1, 0}, {0, 1}, {-1, -1}},
				Biases:     []float64{0, 0, 0},
				Activation: "relu",
			},
			{
				Weights:    [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
				Biases:     []float64{0, 0, 0},
				Activation: "softmax",
			},
		},
	}
}

func TestParseRejectsShapeMismatch(t *testing.T) {
	net := testNetwork()
	net.Layers[1].Weights = [][]float64{{1, 0}} // expects 3 inputs from layer 0

	blob, err := json.Marshal(net)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Parse(blob); err == nil {
		t.Fatal("expected shape mismatch error")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestForwardSoftmaxOutput(t *testing.T) {
	net := testNetwork()

	probs, err := net.Forward([]float64{2, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(probs) != 3 {
		t.Fatalf("expected 3 outputs, got %d", len(probs))
	}

	var sum float64
	for _, p := range probs {
		if p < 0 || p > 1 {
			t.Fatalf("probability %v out of [0,1]", p)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("probabilities sum to %v, expected 1", sum)
	}

	// First unit sees the largest pre-activation for this input.
	if probs[0] <= probs[1] || probs[0] <= probs[2] {
		t.Fatalf("expected first output dominant, got %v", probs)
	}
}

func TestForwardRejectsWrongInputWidth(t *testing.T) {
	net := testNetwork()
	if _, err := net.Forward([]float64{1}); err == nil {
		t.Fatal("expected input width error")
	}
}
