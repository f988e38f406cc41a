package dfa

import (
	"sort"
	"strconv"
	"strings"

	"github.com/redfalang/redfa/internal/automaton"
	"github.com/redfalang/redfa/internal/conv"
	"github.com/redfalang/redfa/nfa"
)

// FromNFA performs subset construction: each DFA state is a (canonicalized,
// epsilon-closed) subset of NFA states, discovered by BFS from the
// epsilon-closure of the NFA's start states. Groups are lifted alongside:
// a DFA state belongs to a lifted group's Opens/Closes set exactly when its
// underlying NFA subset contains that group's NFA start/accept state.
//
// n should already have had dead ends removed (nfa.RemoveDeadEnds)
// — per spec §9, this is what keeps subset construction from growing
// unreachable-to-accept DFA states; FromNFA itself performs no pruning of
// its own beyond the BFS only ever visiting states reachable from start.
func FromNFA(n *nfa.NFA) *DFA {
	alphabet := collectAlphabet(n)

	type subset struct {
		id     StateID
		states map[nfa.StateID]struct{}
	}

	canon := func(s map[nfa.StateID]struct{}) string {
		ids := make([]int, 0, len(s))
		for id := range s {
			ids = append(ids, int(id))
		}
		sort.Ints(ids)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		return strings.Join(parts, ",")
	}

	d := newEmpty()
	seen := map[string]*subset{}
	var order []*subset

	startSet := n.EpsilonClosure(n.Starts())
	startSub := &subset{id: 0, states: startSet}
	seen[canon(startSet)] = startSub
	order = append(order, startSub)
	d.start = 0

	for i := 0; i < len(order); i++ {
		cur := order[i]
		d.states[cur.id] = struct{}{}
		if intersectsNFA(cur.states, n.Accepts()) {
			d.accepts[cur.id] = struct{}{}
		}

		for _, sym := range alphabet {
			destSet := n.EpsilonClosure(n.TransitionStates(cur.states, sym))
			if len(destSet) == 0 {
				continue
			}
			key := canon(destSet)
			dst, ok := seen[key]
			if !ok {
				dst = &subset{id: StateID(conv.IntToUint32(len(order))), states: destSet}
				seen[key] = dst
				order = append(order, dst)
			}
			if d.trans[cur.id] == nil {
				d.trans[cur.id] = map[Symbol]StateID{}
			}
			d.trans[cur.id][sym] = dst.id
		}
	}

	for _, g := range n.Groups() {
		lifted := Group{Opens: map[StateID]struct{}{}, Closes: map[StateID]struct{}{}}
		for _, sub := range order {
			if _, ok := sub.states[g.Start]; ok {
				lifted.Opens[sub.id] = struct{}{}
			}
			if _, ok := sub.states[g.Accept]; ok {
				lifted.Closes[sub.id] = struct{}{}
			}
		}
		d.groups = append(d.groups, lifted)
	}

	return d
}

// collectAlphabet gathers every non-epsilon symbol that labels at least
// one explicit NFA edge, plus Start and End unconditionally: subset
// construction needs to probe both even on NFAs that never use `^`/`$`,
// since an absent explicit edge still yields a (self-loop) destination via
// NFA.Transition's default rule, and that destination must be reachable
// through the same BFS as every other symbol.
func collectAlphabet(n *nfa.NFA) []Symbol {
	seen := map[Symbol]struct{}{
		automaton.StartSymbol: {},
		automaton.EndSymbol:   {},
	}
	for _, s := range n.States() {
		for _, sym := range n.EdgeSymbols(s) {
			if sym.Kind() == automaton.Epsilon {
				continue
			}
			seen[sym] = struct{}{}
		}
	}
	out := make([]Symbol, 0, len(seen))
	for sym := range seen {
		out = append(out, sym)
	}
	return out
}

func intersectsNFA(a map[nfa.StateID]struct{}, b map[nfa.StateID]struct{}) bool {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	for s := range small {
		if _, ok := large[s]; ok {
			return true
		}
	}
	return false
}
