package models

// Weighted is anything that carries a percentage weight.
type Weighted interface {
	WeightValue() int
}

func (o Objective) WeightValue() int { return o.Weight }
func (r Result) WeightValue() int    { return r.Weight }

// TotalWeight sums the weights of a sequence. It never fails: an empty
// sequence contributes 0.
func TotalWeight[T Weighted](items []T) int {
	total := 0
	for _, item := range items {
		total += item.WeightValue()
	}
	return total
}

// ObjectivesComplete reports whether the objectives account for exactly the
// full 100%. The report is only reachable when this holds.
func ObjectivesComplete(objectives []Objective) bool {
	return TotalWeight(objectives) == 100
}

// ResultsComplete reports whether an objective's results account for exactly
// the objective's own weight. An objective with zero weight is never complete.
func ResultsComplete(obj Objective) bool {
	return obj.Weight > 0 && TotalWeight(obj.Results) == obj.Weight
}
