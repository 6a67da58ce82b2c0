package dense

import (
	"encoding/json"
	"fmt"
	"math"
)

// Layer is one fully connected layer. Weights is row-major: one row of input
// weights per output unit.
type Layer struct {
	Weights    [][]float64 `json:"weights"`
	Biases     []float64   `json:"biases"`
	Activation string      `json:"activation"` // relu or softmax
}

// Network is a dense feed-forward classifier persisted as a JSON blob.
type Network struct {
	InputSize int     `json:"input_size"`
	Layers    []Layer `json:"layers"`
}

// Parse decodes a persisted network blob and checks layer shapes line up.
func Parse(blob []byte) (Network, error) {
	var net Network
	if err := json.Unmarshal(blob, &net); err != nil {
		return Network{}, fmt.Errorf("failed to decode network blob: %w", err)
	}
	if net.InputSize <= 0 {
		return Network{}, fmt.Errorf("network blob missing input size")
	}
	if len(net.Layers) == 0 {
		return Network{}, fmt.Errorf("network blob has no layers")
	}

	width := net.InputSize
	for i, layer := range net.Layers {
		if len(layer.Weights) == 0 {
			return Network{}, fmt.Errorf("layer %d has no weights", i)
		}
		if len(layer.Biases) != len(layer.Weights) {
			return Network{}, fmt.Errorf("layer %d has %d biases for %d units", i, len(layer.Biases), len(layer.Weights))
		}
		for u, row := range layer.Weights {
			if len(row) != width {
				return Network{}, fmt.Errorf("layer %d unit %d expects %d inputs, got %d", i, u, width, len(row))
			}
		}
		width = len(layer.Weights)
	}
	return net, nil
}

// Forward runs one input vector through the network and returns the final
// layer activations.
func (n Network) Forward(input []float64) ([]float64, error) {
	if len(input) != n.InputSize {
		return nil, fmt.Errorf("expected %d inputs, got %d", n.InputSize, len(input))
	}

	current := input
	for i, layer := range n.Layers {
		next := make([]float64, len(layer.Weights))
		for u, row := range layer.Weights {
			next[u] = dot(row, current) + layer.Biases[u]
		}
		switch layer.Activation {
		case "softmax":
			softmax(next)
		case "relu", "":
			relu(next)
		default:
			return nil, fmt.Errorf("layer %d has unknown activation %q", i, layer.Activation)
		}
		current = next
	}
	return current, nil
}

func dot(weights []float64, sample []float64) float64 {
	var sum float64
	for i := 0; i < len(weights); i++ {
		sum += weights[i] * sample[i]
	}
	return sum
}

func relu(values []float64) {
	for i, v := range values {
		if v < 0 {
			values[i] = 0
		}
	}
}

func softmax(values []float64) {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	var sum float64
	for i, v := range values {
		values[i] = math.Exp(v - max)
		sum += values[i]
	}
	for i := range values {
		values[i] /= sum
	}
}
