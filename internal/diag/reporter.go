package diag

// Reporter is the minimal contract for receiving violations from the
// engine phases. Implementations: BagReporter (appends to a Bag) and
// DedupReporter (suppresses duplicates before forwarding).
type Reporter interface {
	Report(v Violation)
}

// BagReporter writes every violation into a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(v Violation) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(v)
}
