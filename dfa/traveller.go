package dfa

import "github.com/redfalang/redfa/internal/automaton"

// HistoryEntry is one step of a deterministic traversal: the single state
// occupied and how many characters of input have been consumed so far to
// reach it.
type HistoryEntry struct {
	State    StateID
	Consumed int
}

// Traveller walks a DFA against a symbol stream. Unlike the NFA Traveller
// there is no epsilon-closure step and no branching: the full accepting
// path, if any, is already recorded in History once Travel returns, so
// group reconstruction (§4.7) can scan it forward directly.
type Traveller struct {
	dfa     *DFA
	history []HistoryEntry
}

// NewTraveller seeds a Traveller at the DFA's start state.
func NewTraveller(d *DFA) *Traveller {
	return &Traveller{dfa: d, history: []HistoryEntry{{State: d.Start(), Consumed: 0}}}
}

// History returns the accumulated traversal history.
func (t *Traveller) History() []HistoryEntry { return t.history }

// DFA returns the automaton this Traveller walks.
func (t *Traveller) DFA() *DFA { return t.dfa }

// Travel steps the Traveller through the given symbol stream, stopping
// early the first time the current state has no transition for a symbol.
func (t *Traveller) Travel(symbols []automaton.Symbol) {
	for _, sym := range symbols {
		last := t.history[len(t.history)-1]
		dest, ok := t.dfa.Transition(last.State, sym)
		if !ok {
			break
		}
		consumed := last.Consumed
		if sym.IsChar() {
			consumed++
		}
		t.history = append(t.history, HistoryEntry{State: dest, Consumed: consumed})
	}
}

// Length reports the consumed-length of the latest history entry whose
// state is an accept state. ok is false if none ever was.
func (t *Traveller) Length() (length int, ok bool) {
	for i := len(t.history) - 1; i >= 0; i-- {
		if t.dfa.IsAccept(t.history[i].State) {
			return t.history[i].Consumed, true
		}
	}
	return 0, false
}
