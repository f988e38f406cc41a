// Package nfa implements Thompson's construction: a recursive-descent
// parser and builder that turn regex source into an epsilon-NFA, plus the
// traversal and backward-trail group reconstruction needed to execute that
// NFA directly against input text.
package nfa

import (
	"fmt"
	"sort"

	"github.com/redfalang/redfa/internal/automaton"
	"github.com/redfalang/redfa/internal/sparse"
)

// StateID uniquely identifies an NFA state within a single NFA value.
// States are small integers allocated by the Builder; there are no node
// objects and no parent pointers, so cycles (Kleene loops, epsilon
// back-edges) are represented implicitly in the transition table.
type StateID uint32

// Symbol re-exports the shared transition alphabet so callers of this
// package rarely need to import internal/automaton directly.
type Symbol = automaton.Symbol

// Group records a capturing group as a pair of existing NFA states: the
// group's span is (start, accept) as traversed in the underlying NFA, not
// a separate sub-automaton. List order defines capture index 1..k.
type Group struct {
	Start  StateID
	Accept StateID
}

// NFA is an epsilon-NFA with group annotations, as specified in the data
// model: a set of states, a transition table keyed by symbol, a set of
// accept states, a set of start states (Thompson's construction always
// yields exactly one, but the representation permits more), and an ordered
// list of capturing groups.
type NFA struct {
	states  map[StateID]struct{}
	trans   map[StateID]map[Symbol]map[StateID]struct{}
	accepts map[StateID]struct{}
	starts  map[StateID]struct{}
	groups  []Group
}

// newEmptyGraph allocates an NFA with no states; Builder primitives use
// this as their common starting point.
func newEmptyGraph() *NFA {
	return &NFA{
		states:  map[StateID]struct{}{},
		trans:   map[StateID]map[Symbol]map[StateID]struct{}{},
		accepts: map[StateID]struct{}{},
		starts:  map[StateID]struct{}{},
	}
}

// States returns the NFA's state ids in ascending order.
func (n *NFA) States() []StateID {
	out := make([]StateID, 0, len(n.states))
	for s := range n.states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasState reports whether id is a state of this NFA.
func (n *NFA) HasState(id StateID) bool {
	_, ok := n.states[id]
	return ok
}

// Starts returns a copy of the start-state set.
func (n *NFA) Starts() map[StateID]struct{} { return cloneSet(n.starts) }

// Accepts returns a copy of the accept-state set.
func (n *NFA) Accepts() map[StateID]struct{} { return cloneSet(n.accepts) }

// IsAccept reports whether id is an accept state.
func (n *NFA) IsAccept(id StateID) bool {
	_, ok := n.accepts[id]
	return ok
}

// Groups returns the NFA's capture groups, in capture-index order
// (index 0 in the resulting Match is the whole match and is not part of
// this slice; index 1 is Groups()[0], and so on).
func (n *NFA) Groups() []Group {
	out := make([]Group, len(n.groups))
	copy(out, n.groups)
	return out
}

// Transition returns the destination states reachable from state s via
// symbol, applying the default transition rule when no explicit edge
// exists: Start and End are satisfied in place (return {s}) since they are
// zero-width assertions; Char and Epsilon return the empty set.
func (n *NFA) Transition(s StateID, sym Symbol) map[StateID]struct{} {
	if edges, ok := n.trans[s]; ok {
		if dests, ok := edges[sym]; ok {
			return dests
		}
	}
	if sym.Kind() == automaton.Start || sym.Kind() == automaton.End {
		return map[StateID]struct{}{s: {}}
	}
	return nil
}

// EdgeSymbols returns the symbols state s has at least one explicit edge
// for, used by subset construction to build the DFA alphabet.
func (n *NFA) EdgeSymbols(s StateID) []Symbol {
	edges, ok := n.trans[s]
	if !ok {
		return nil
	}
	out := make([]Symbol, 0, len(edges))
	for sym := range edges {
		out = append(out, sym)
	}
	return out
}

// TransitionStates unions Transition(s, sym) over every s in states.
func (n *NFA) TransitionStates(states map[StateID]struct{}, sym Symbol) map[StateID]struct{} {
	dests := map[StateID]struct{}{}
	for s := range states {
		for d := range n.Transition(s, sym) {
			dests[d] = struct{}{}
		}
	}
	return dests
}

// EpsilonClosure computes the least fixed point of srcs under following
// Epsilon edges: a BFS frontier that terminates once no unvisited state
// remains. The result always includes srcs itself.
//
// The frontier/visited bookkeeping is done with a sparse.SparseSet sized
// to the NFA's state-id range, which gives O(1) membership tests instead
// of the map lookups a naive implementation would use.
func (n *NFA) EpsilonClosure(srcs map[StateID]struct{}) map[StateID]struct{} {
	capacity := n.maxStateID() + 1
	visited := sparse.NewSparseSet(capacity)
	frontier := sparse.NewSparseSet(capacity)
	for s := range srcs {
		frontier.Insert(uint32(s))
	}

	for frontier.Size() > 0 {
		next := sparse.NewSparseSet(capacity)
		frontier.Iter(func(v uint32) {
			if visited.Contains(v) {
				return
			}
			visited.Insert(v)
			for d := range n.Transition(StateID(v), automaton.EpsilonSymbol) {
				if !visited.Contains(uint32(d)) {
					next.Insert(uint32(d))
				}
			}
		})
		frontier = next
	}

	result := make(map[StateID]struct{}, visited.Size()+len(srcs))
	for s := range srcs {
		result[s] = struct{}{}
	}
	visited.Iter(func(v uint32) { result[StateID(v)] = struct{}{} })
	return result
}

func (n *NFA) maxStateID() uint32 {
	var max uint32
	for s := range n.states {
		if uint32(s) > max {
			max = uint32(s)
		}
	}
	return max
}

func cloneSet(s map[StateID]struct{}) map[StateID]struct{} {
	out := make(map[StateID]struct{}, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// String renders a short summary for diagnostics.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states=%d, starts=%d, accepts=%d, groups=%d}",
		len(n.states), len(n.starts), len(n.accepts), len(n.groups))
}
