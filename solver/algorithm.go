package solver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedAlgorithm is returned for an unknown algorithm name.
var ErrUnsupportedAlgorithm = errors.New("solver: unsupported algorithm")

// Algorithm names a driver.
type Algorithm string

const (
	Greedy  Algorithm = "greedy"
	Local   Algorithm = "local"
	GRASP   Algorithm = "grasp"
	Tabu    Algorithm = "tabu"
	Scatter Algorithm = "scatter"
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{Greedy, Local, GRASP, Tabu, Scatter}
}

// ParseAlgorithm accepts a case-insensitive algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms() {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("solver: %q: %w", s, ErrUnsupportedAlgorithm)
}
