package nfa

import "github.com/redfalang/redfa/internal/automaton"

// HistoryEntry is one step of a traversal: the set of states occupied and
// how many characters of input have been consumed so far to reach it. Via
// is the symbol consumed to reach this entry from the previous one (the
// zero Symbol for entry 0, which is seeded rather than consumed).
type HistoryEntry struct {
	States   map[StateID]struct{}
	Consumed int
	Via      automaton.Symbol
}

// Traveller walks an NFA against a symbol stream, maintaining the full
// history of (state-set, consumed-length) entries required both to answer
// "how long a match, if any" and — via backward-trail reconstruction — to
// recover capturing-group spans.
type Traveller struct {
	nfa     *NFA
	history []HistoryEntry
}

// NewTraveller seeds a Traveller at entry 0 = (ε-closure(starts), 0).
func NewTraveller(n *NFA) *Traveller {
	return &Traveller{
		nfa:     n,
		history: []HistoryEntry{{States: n.EpsilonClosure(n.Starts()), Consumed: 0}},
	}
}

// History returns the accumulated traversal history.
func (t *Traveller) History() []HistoryEntry { return t.history }

// NFA returns the automaton this Traveller walks.
func (t *Traveller) NFA() *NFA { return t.nfa }

// consumeEpsilon replaces the last history entry's state set with its
// ε-closure, in place.
func (t *Traveller) consumeEpsilon() {
	last := &t.history[len(t.history)-1]
	last.States = t.nfa.EpsilonClosure(last.States)
}

// consume steps the last history entry through symbol, appending a new
// entry on success. Returns false (and appends nothing) if no state in
// the current set has a transition on symbol.
func (t *Traveller) consume(symbol automaton.Symbol) bool {
	last := t.history[len(t.history)-1]
	dests := t.nfa.TransitionStates(last.States, symbol)
	if len(dests) == 0 {
		return false
	}
	consumed := last.Consumed
	if symbol.IsChar() {
		consumed++
	}
	t.history = append(t.history, HistoryEntry{States: dests, Consumed: consumed, Via: symbol})
	return true
}

// Travel walks the Traveller through the given symbol stream, stopping
// early the first time a symbol has no transition from the current state
// set. ε-closure is applied before the first symbol and after every step.
func (t *Traveller) Travel(symbols []automaton.Symbol) {
	t.consumeEpsilon()
	for _, sym := range symbols {
		if !t.consume(sym) {
			break
		}
		t.consumeEpsilon()
	}
}

// Length reports the consumed-length of the latest history entry whose
// state set intersects the NFA's accepts — i.e. the longest prefix of the
// input accepted starting from this Traveller's start states. ok is false
// if no history entry ever intersected accepts.
func (t *Traveller) Length() (length int, ok bool) {
	accepts := t.nfa.Accepts()
	for i := len(t.history) - 1; i >= 0; i-- {
		if intersects(t.history[i].States, accepts) {
			return t.history[i].Consumed, true
		}
	}
	return 0, false
}
