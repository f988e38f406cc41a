package nfa

import (
	"sort"

	"github.com/redfalang/redfa/internal/automaton"
)

// Span is a half-open interval [Start, End) into the text a traversal ran
// over. A span with End == -1 denotes one still open during reconstruction;
// GroupSpans never returns one of those to its caller.
type Span struct {
	Start int
	End   int
}

// reverseEdges indexes an NFA's explicit transitions by destination, for
// the backward walk that group reconstruction performs over a successful
// traversal's history.
type reverseEdges map[StateID]map[Symbol]map[StateID]struct{}

func buildReverseEdges(n *NFA) reverseEdges {
	rev := reverseEdges{}
	for s, edges := range n.trans {
		for sym, dests := range edges {
			for d := range dests {
				if rev[d] == nil {
					rev[d] = map[Symbol]map[StateID]struct{}{}
				}
				if rev[d][sym] == nil {
					rev[d][sym] = map[StateID]struct{}{}
				}
				rev[d][sym][s] = struct{}{}
			}
		}
	}
	return rev
}

// predecessors returns every state s such that n.Transition(s, sym)
// contains d, mirroring Transition's own default rule: Start/End are
// self-satisfied in place, so d is its own predecessor on those symbols
// unless d has an explicit outgoing edge for sym overriding the default.
func (rev reverseEdges) predecessors(n *NFA, d StateID, sym Symbol) map[StateID]struct{} {
	preds := map[StateID]struct{}{}
	if m, ok := rev[d]; ok {
		for s := range m[sym] {
			preds[s] = struct{}{}
		}
	}
	if sym.Kind() == automaton.Start || sym.Kind() == automaton.End {
		edges, hasEdges := n.trans[d]
		_, overridden := edges[sym]
		if !hasEdges || !overridden {
			preds[d] = struct{}{}
		}
	}
	return preds
}

func (rev reverseEdges) predecessorsOf(n *NFA, states map[StateID]struct{}, sym Symbol) map[StateID]struct{} {
	out := map[StateID]struct{}{}
	for s := range states {
		for p := range rev.predecessors(n, s, sym) {
			out[p] = struct{}{}
		}
	}
	return out
}

// epsilonClosureRev is EpsilonClosure run against the reversed graph: the
// least fixed point of srcs under following epsilon edges backward.
func (rev reverseEdges) epsilonClosureRev(n *NFA, srcs map[StateID]struct{}) map[StateID]struct{} {
	visited := map[StateID]struct{}{}
	frontier := make([]StateID, 0, len(srcs))
	for s := range srcs {
		visited[s] = struct{}{}
		frontier = append(frontier, s)
	}
	for len(frontier) > 0 {
		var next []StateID
		for _, s := range frontier {
			for p := range rev.predecessors(n, s, automaton.EpsilonSymbol) {
				if _, ok := visited[p]; !ok {
					visited[p] = struct{}{}
					next = append(next, p)
				}
			}
		}
		frontier = next
	}
	return visited
}

// trailEntry is one position of the consolidated backward trail: the set
// of states known to be occupied at that many consumed characters, along
// every witness path of a successful traversal.
type trailEntry struct {
	Position int
	States   map[StateID]struct{}
}

// latestAccepting returns the latest history index whose state set meets
// n.Accepts(), matching the tie-break Traveller.Length uses so group
// reconstruction is consistent with the reported match length.
func latestAccepting(n *NFA, history []HistoryEntry) (int, bool) {
	accepts := n.Accepts()
	for i := len(history) - 1; i >= 0; i-- {
		if intersects(history[i].States, accepts) {
			return i, true
		}
	}
	return 0, false
}

// buildTrail performs the backward trail construction of spec §4.5: seed
// at the latest accepting history entry, then walk backward re-deriving,
// at each prior entry, the subset of its state set that can reach the
// already-derived trail via the symbol that was actually consumed.
// Zero-width entries (duplicate consumed-length of the entry that
// follows) are folded into the walk but not emitted as separate trail
// positions.
func buildTrail(n *NFA, history []HistoryEntry) []trailEntry {
	iStar, ok := latestAccepting(n, history)
	if !ok {
		return nil
	}
	rev := buildReverseEdges(n)

	seed := intersectStates(history[iStar].States, n.Accepts())
	nextStates := intersectStates(rev.epsilonClosureRev(n, seed), history[iStar].States)
	trail := []trailEntry{{Position: history[iStar].Consumed, States: nextStates}}

	for j := iStar - 1; j >= 0; j-- {
		sym := history[j+1].Via
		stepped := rev.predecessorsOf(n, nextStates, sym)
		candidate := intersectStates(rev.epsilonClosureRev(n, intersectStates(stepped, history[j].States)), history[j].States)
		if history[j].Consumed != history[j+1].Consumed {
			trail = append([]trailEntry{{Position: history[j].Consumed, States: candidate}}, trail...)
		}
		nextStates = candidate
	}
	return trail
}

// consolidate unions every trail entry's state set by position, since
// positions may repeat when more than one zero-width step was folded
// into the walk between two character positions, and returns the
// positions in ascending order alongside their union state sets.
func consolidate(trail []trailEntry) ([]int, map[int]map[StateID]struct{}) {
	byPosition := map[int]map[StateID]struct{}{}
	for _, e := range trail {
		if byPosition[e.Position] == nil {
			byPosition[e.Position] = map[StateID]struct{}{}
		}
		for s := range e.States {
			byPosition[e.Position][s] = struct{}{}
		}
	}
	positions := make([]int, 0, len(byPosition))
	for p := range byPosition {
		positions = append(positions, p)
	}
	sort.Ints(positions)
	return positions, byPosition
}

// GroupSpans reconstructs, for each group in n.Groups() (source order),
// the list of closed spans it captured along the witness path ending at
// history's latest accepting entry. Returns nil if history witnesses no
// match. Spans are in the traversal's own local coordinates — the caller
// (the match driver) offsets them by the search's start index.
func GroupSpans(n *NFA, history []HistoryEntry) [][]Span {
	trail := buildTrail(n, history)
	if trail == nil {
		return nil
	}
	positions, byPosition := consolidate(trail)

	groups := n.Groups()
	result := make([][]Span, len(groups))
	for gi, g := range groups {
		var spans []Span
		closed := true
		for _, pos := range positions {
			frontier := byPosition[pos]
			_, hasStart := frontier[g.Start]
			_, hasAccept := frontier[g.Accept]
			if closed {
				if hasStart {
					spans = append(spans, Span{Start: pos, End: -1})
					closed = false
				}
				if hasAccept && !closed {
					spans[len(spans)-1].End = pos
					closed = true
				}
			} else {
				if hasAccept {
					spans[len(spans)-1].End = pos
					closed = true
				}
				if hasStart && closed {
					spans = append(spans, Span{Start: pos, End: -1})
					closed = false
				}
			}
		}
		closedSpans := make([]Span, 0, len(spans))
		for _, s := range spans {
			if s.End != -1 {
				closedSpans = append(closedSpans, s)
			}
		}
		result[gi] = closedSpans
	}
	return result
}

func intersectStates(a, b map[StateID]struct{}) map[StateID]struct{} {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	out := map[StateID]struct{}{}
	for s := range small {
		if _, ok := large[s]; ok {
			out[s] = struct{}{}
		}
	}
	return out
}
