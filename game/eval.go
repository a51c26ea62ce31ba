package game

import (
	"strings"

	"github.com/pkg/errors"
)

// Evaluator scores a board from Dark's point of view: positive favours Dark,
// negative favours Light.
type Evaluator interface {
	Evaluate(b Board) float64
}

// EvaluateFunc adapts a plain function to Evaluator.
type EvaluateFunc func(Board) float64

func (f EvaluateFunc) Evaluate(b Board) float64 {
	return f(b)
}

const (
	cornerWeight   = 2.0
	edgeWeight     = 1.5
	interiorWeight = 1.0
)

// Material counts every piece as one point: (dark - light) / n^2.
type Material struct{}

func (Material) Name() string { return "material" }

func (Material) Evaluate(b Board) float64 {
	if b.Len() == 0 {
		return 0
	}
	return float64(b.Count(Dark)-b.Count(Light)) / float64(b.Len())
}

// WeightedPosition values corners at 2, the rest of the border at 1.5 and
// interior cells at 1, normalised by the weight of a full board.
type WeightedPosition struct{}

func (WeightedPosition) Name() string { return "weighted" }

func (WeightedPosition) Evaluate(b Board) float64 {
	n := float64(b.Size())
	total := 4*cornerWeight + 4*(n-2)*edgeWeight + (n-2)*(n-2)*interiorWeight
	if total <= 0 {
		return 0
	}

	score := 0.0
	for i, c := range b.cells {
		if c == Empty {
			continue
		}
		weight := interiorWeight
		if b.IsCorner(i) {
			weight = cornerWeight
		} else if b.IsEdge(i) {
			weight = edgeWeight
		}
		score += weight * sign(c)
	}
	return score / total
}

// Composite mixes who leads on material (0.5), corner control (0.3) and edge
// control (0.2). Its absolute value never exceeds CompositeBound.
type Composite struct{}

func (Composite) Name() string { return "composite" }

func (Composite) Evaluate(b Board) float64 {
	n := b.Size()
	if n < MinSize {
		return 0
	}

	material, corner, edge := 0.0, 0.0, 0.0
	for i, c := range b.cells {
		if c == Empty {
			continue
		}
		s := sign(c)
		material += s
		if b.IsCorner(i) {
			corner += s
		} else if b.IsEdge(i) {
			edge += s
		}
	}

	base := 0.0
	if material > 0 {
		base = 1
	} else if material < 0 {
		base = -1
	}
	return base*0.5 + corner/4*0.3 + edge/float64(n-2)*0.2
}

// CompositeBound is the largest |Composite| on any board size: the edge term
// can reach 4(n-2)/(n-2) = 4.
const CompositeBound = 0.5 + 0.3 + 4*0.2

func sign(c Cell) float64 {
	switch c {
	case Dark:
		return 1
	case Light:
		return -1
	default:
		return 0
	}
}

// EvaluatorByName resolves the names used in experiment configs.
func EvaluatorByName(name string) (Evaluator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "material", "a":
		return Material{}, nil
	case "weighted", "weighted-position", "b":
		return WeightedPosition{}, nil
	case "composite", "c":
		return Composite{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownEvaluator, "%q", name)
	}
}

// EvaluatorName returns the config name of the bundled evaluators, "custom" otherwise.
func EvaluatorName(e Evaluator) string {
	if named, ok := e.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "custom"
}
