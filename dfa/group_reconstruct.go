package dfa

import "github.com/redfalang/redfa/nfa"

// GroupSpans reconstructs, for each lifted group in d.Groups() (source
// order), the list of closed spans it captured along history — the
// deterministic traversal already recorded the full accepting path, so
// unlike the NFA case (nfa.GroupSpans) no backward walk is needed: the
// forward history is scanned directly, skipping consecutive entries with
// equal Consumed (the zero-width steps `^`/`$` produce), applying the same
// open/close state machine as the NFA reconstruction but testing
// state-membership in Opens/Closes rather than frontier-membership.
//
// Travel greedily consumes the whole symbol stream until it gets stuck,
// which is routinely past the position Length() reports (e.g. a trailing
// optional branch that almost matches) — so, like nfa.GroupSpans'
// latestAccepting helper, GroupSpans first finds the latest history index
// whose state is accepting and scans no further than that.
//
// Returns nil if history witnesses no match (no entry's state is an
// accept state). Spans are in the traversal's own local coordinates; the
// caller offsets them by the search's start index.
func GroupSpans(d *DFA, history []HistoryEntry) [][]nfa.Span {
	iStar := -1
	for i := len(history) - 1; i >= 0; i-- {
		if d.IsAccept(history[i].State) {
			iStar = i
			break
		}
	}
	if iStar == -1 {
		return nil
	}
	history = history[:iStar+1]

	groups := d.Groups()
	result := make([][]nfa.Span, len(groups))

	for gi, g := range groups {
		var spans []nfa.Span
		closed := true
		lastConsumed := -1
		for _, entry := range history {
			if entry.Consumed == lastConsumed {
				continue
			}
			lastConsumed = entry.Consumed

			_, atOpen := g.Opens[entry.State]
			_, atClose := g.Closes[entry.State]

			if closed {
				if atOpen {
					spans = append(spans, nfa.Span{Start: entry.Consumed, End: -1})
					closed = false
				}
				if atClose && !closed {
					spans[len(spans)-1].End = entry.Consumed
					closed = true
				}
			} else {
				if atClose {
					spans[len(spans)-1].End = entry.Consumed
					closed = true
				}
				if atOpen && closed {
					spans = append(spans, nfa.Span{Start: entry.Consumed, End: -1})
					closed = false
				}
			}
		}

		closedSpans := make([]nfa.Span, 0, len(spans))
		for _, s := range spans {
			if s.End != -1 {
				closedSpans = append(closedSpans, s)
			}
		}
		result[gi] = closedSpans
	}
	return result
}
