package classifier

import "errors"

// ErrNotLoaded means the model artifact was never loaded. Absence of a model
// is a normal runtime state; callers fall back to the next tier.
var ErrNotLoaded = errors.New("classifier artifact not loaded")

// InferenceError wraps a runtime fault during prediction (malformed artifact,
// input shape mismatch). Like ErrNotLoaded, it marks the classifier
// unavailable rather than failing the evaluation.
type InferenceError struct {
	reason error
}

func (e InferenceError) Error() string {
	return "inference failed: " + e.reason.Error()
}

func (e InferenceError) Unwrap() error {
	return e.reason
}

func IsInferenceError(err error) bool {
	var ie InferenceError
	return errors.As(err, &ie)
}

// Classifier is the uniform contract over the interchangeable predictors.
// Predict maps a feature vector to a class index in {0,1,2} (Normal, Warning,
// Critical) and a confidence in [0,1].
type Classifier interface {
	Name() string
	Predict(features []float64) (class int, confidence float64, err error)
}
