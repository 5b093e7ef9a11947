package service

// AutoResolvePolicy decides what a knowledge-base similarity score is good
// for. Pure and stateless.
type AutoResolvePolicy struct {
	// Threshold minimum similarity to answer the requester directly
	Threshold float64
	// SuggestThreshold minimum similarity for a matched answer to be
	// offered as a reply candidate on the ticket branch
	SuggestThreshold float64
}

// CanAutoResolve reports whether the similarity clears the auto-resolve
// threshold.
func (p AutoResolvePolicy) CanAutoResolve(similarity float64) bool {
	return similarity >= p.Threshold
}

// Qualifies reports whether a matched answer is close enough to be worth
// suggesting at all.
func (p AutoResolvePolicy) Qualifies(similarity float64) bool {
	return similarity >= p.SuggestThreshold
}
