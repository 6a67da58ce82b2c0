package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// forestNode is one node of a serialized decision tree. Interior nodes route
// on Feature/Threshold; leaves carry Class and have Left == Right == -1.
type forestNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Class     int     `json:"class"`
}

type ensembleArtifact struct {
	Model struct {
		Type         string         `json:"type"`
		Algorithm    string         `json:"algorithm"`
		FeatureNames []string       `json:"feature_names"`
		Trees        [][]forestNode `json:"trees"`
	} `json:"model"`
}

// Ensemble is the fast ensemble classifier: a decision forest loaded once at
// startup and immutable for the process lifetime. Prediction is a majority
// vote across trees; confidence is the winning vote fraction.
type Ensemble struct {
	artifact ensembleArtifact
	loaded   bool
}

// LoadEnsemble reads a forest artifact from disk. A missing or malformed
// artifact is reported to the caller; the returned value is unusable.
func LoadEnsemble(path string) (*Ensemble, error) {
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read ensemble artifact: %w", err)
	}

	var artifact ensembleArtifact
	if err := json.Unmarshal(content, &artifact); err != nil {
		return nil, fmt.Errorf("failed to decode ensemble artifact: %w", err)
	}
	if len(artifact.Model.Trees) == 0 {
		return nil, fmt.Errorf("ensemble artifact has no trees")
	}
	if len(artifact.Model.FeatureNames) == 0 {
		return nil, fmt.Errorf("ensemble artifact missing feature names")
	}
	for ti, tree := range artifact.Model.Trees {
		for ni, node := range tree {
			if node.Left < 0 && node.Right < 0 {
				continue
			}
			if node.Feature < 0 || node.Feature >= len(artifact.Model.FeatureNames) {
				return nil, fmt.Errorf("tree %d node %d: feature index %d out of bounds", ti, ni, node.Feature)
			}
		}
	}

	return &Ensemble{artifact: artifact, loaded: true}, nil
}

// NewEnsemble builds an in-memory ensemble from already decoded trees. Used
// by tests and artifact tooling.
func NewEnsemble(featureNames []string, trees [][]forestNode) *Ensemble {
	e := &Ensemble{loaded: len(trees) > 0}
	e.artifact.Model.FeatureNames = featureNames
	e.artifact.Model.Trees = trees
	return e
}

func (e *Ensemble) Name() string {
	return "ensemble"
}

func (e *Ensemble) Predict(features []float64) (int, float64, error) {
	if e == nil || !e.loaded {
		return 0, 0, ErrNotLoaded
	}
	if len(features) != len(e.artifact.Model.FeatureNames) {
		return 0, 0, InferenceError{reason: fmt.Errorf("expected %d features, got %d", len(e.artifact.Model.FeatureNames), len(features))}
	}

	votes := make(map[int]int)
	for i, tree := range e.artifact.Model.Trees {
		class, err := walkTree(tree, features)
		if err != nil {
			return 0, 0, InferenceError{reason: fmt.Errorf("tree %d: %w", i, err)}
		}
		votes[class]++
	}

	best, bestVotes := 0, -1
	for class, count := range votes {
		if count > bestVotes || (count == bestVotes && class < best) {
			best, bestVotes = class, count
		}
	}

	return best, float64(bestVotes) / float64(len(e.artifact.Model.Trees)), nil
}

func walkTree(tree []forestNode, features []float64) (int, error) {
	idx := 0
	for steps := 0; steps <= len(tree); steps++ {
		if idx < 0 || idx >= len(tree) {
			return 0, fmt.Errorf("node index %d out of bounds", idx)
		}
		node := tree[idx]
		if node.Left < 0 && node.Right < 0 {
			return node.Class, nil
		}
		if node.Feature < 0 || node.Feature >= len(features) {
			return 0, fmt.Errorf("feature index %d out of bounds", node.Feature)
		}
		if features[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
	}
	return 0, fmt.Errorf("tree traversal did not terminate")
}
