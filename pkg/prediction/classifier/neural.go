package classifier

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vitalsense/platform/pkg/ml/dense"
)

// NeuralCompact is the compact neural classifier. The persisted blob is read
// once at startup, but the inference network is reconstructed per call, which
// keeps the wrapper stateless at the cost of per-call decode latency.
type NeuralCompact struct {
	blob []byte
}

// LoadNeuralCompact reads the persisted network blob from disk.
func LoadNeuralCompact(path string) (*NeuralCompact, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read neural artifact: %w", err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("neural artifact is empty")
	}
	return &NeuralCompact{blob: content}, nil
}

// NewNeuralCompact wraps an in-memory blob. Used by tests.
func NewNeuralCompact(blob []byte) *NeuralCompact {
	return &NeuralCompact{blob: blob}
}

func (n *NeuralCompact) Name() string {
	return "neural_compact"
}

func (n *NeuralCompact) Predict(features []float64) (int, float64, error) {
	if n == nil || len(n.blob) == 0 {
		return 0, 0, ErrNotLoaded
	}

	net, err := dense.Parse(n.blob)
	if err != nil {
		return 0, 0, InferenceError{reason: err}
	}

	probs, err := net.Forward(features)
	if err != nil {
		return 0, 0, InferenceError{reason: err}
	}
	if len(probs) == 0 {
		return 0, 0, InferenceError{reason: fmt.Errorf("network produced no output")}
	}

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return best, probs[best], nil
}
