// Package dfa implements subset construction (NFA → DFA), deterministic
// traversal, and forward-scan group reconstruction over the lifted-group
// DFA representation.
package dfa

import (
	"fmt"
	"sort"

	"github.com/redfalang/redfa/internal/automaton"
)

// StateID uniquely identifies a DFA state: the (canonicalized) id assigned
// to one particular reachable subset of NFA states during subset
// construction.
type StateID uint32

// Symbol re-exports the shared transition alphabet.
type Symbol = automaton.Symbol

// Group records a capturing group lifted from the NFA: the set of DFA
// states whose underlying NFA subset contains the NFA group's start state
// (Opens), and likewise for its accept state (Closes). List order is the
// same source order as the NFA's Groups().
type Group struct {
	Opens  map[StateID]struct{}
	Closes map[StateID]struct{}
}

// DFA is a deterministic finite automaton: at most one destination per
// (state, symbol) pair, a single start state, a set of accept states, and
// the lifted groups needed to recover capture spans from a deterministic
// traversal (spec §4.7).
type DFA struct {
	states  map[StateID]struct{}
	trans   map[StateID]map[Symbol]StateID
	accepts map[StateID]struct{}
	start   StateID
	groups  []Group
}

func newEmpty() *DFA {
	return &DFA{
		states:  map[StateID]struct{}{},
		trans:   map[StateID]map[Symbol]StateID{},
		accepts: map[StateID]struct{}{},
	}
}

// Start returns the DFA's single start state.
func (d *DFA) Start() StateID { return d.start }

// IsAccept reports whether id is an accept state.
func (d *DFA) IsAccept(id StateID) bool {
	_, ok := d.accepts[id]
	return ok
}

// Groups returns the DFA's lifted capture groups, in the same source
// order as the NFA they were lifted from.
func (d *DFA) Groups() []Group { return d.groups }

// States returns the DFA's state ids in ascending order.
func (d *DFA) States() []StateID {
	out := make([]StateID, 0, len(d.states))
	for s := range d.states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transition returns the destination of state s on sym and whether one
// exists, applying the default rule: Start/End self-loop (s satisfies its
// own zero-width assertion) when no explicit edge is recorded; Char and
// Epsilon have no default and simply report ok=false.
func (d *DFA) Transition(s StateID, sym Symbol) (StateID, bool) {
	if edges, ok := d.trans[s]; ok {
		if dest, ok := edges[sym]; ok {
			return dest, true
		}
	}
	if sym.Kind() == automaton.Start || sym.Kind() == automaton.End {
		return s, true
	}
	return 0, false
}

// String renders a short summary for diagnostics.
func (d *DFA) String() string {
	return fmt.Sprintf("DFA{states=%d, accepts=%d, groups=%d}", len(d.states), len(d.accepts), len(d.groups))
}
