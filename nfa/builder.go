package nfa

import "github.com/redfalang/redfa/internal/automaton"

// Builder exposes Thompson's construction primitives: combinators that
// allocate fresh state ids and compose sub-NFAs. Every primitive returns an
// NFA fragment with exactly one start and one accept state, except Union
// (which still has exactly one of each, but embeds many alternatives) and
// Grouped (which returns its argument unchanged topologically).
//
// Builder carries no state of its own — like the Python original this
// wraps, every combinator works only on its NFA arguments, mutating and
// returning the first one (Union returns a fresh skeleton) — but is
// kept as a type (mirroring the teacher's Builder API) so callers read
// naturally as `b := nfa.NewBuilder(); b.Concatenate(p, q)`.
type Builder struct{}

// NewBuilder returns a Thompson-construction Builder.
func NewBuilder() *Builder { return &Builder{} }

// Symbol builds {0,1} with a single edge 0 —sym→ 1.
func (*Builder) Symbol(sym Symbol) *NFA {
	n := newEmptyGraph()
	n.states[0] = struct{}{}
	n.states[1] = struct{}{}
	n.starts[0] = struct{}{}
	n.accepts[1] = struct{}{}
	addEdge(n, 0, sym, 1)
	return n
}

// Empty builds {0,1} with a single epsilon edge 0 —ε→ 1.
func (b *Builder) Empty() *NFA {
	return b.Symbol(automaton.EpsilonSymbol)
}

// soleStart returns the single start state of n, or an InvariantError if n
// does not have exactly one.
func soleStart(op string, n *NFA) (StateID, error) {
	if len(n.starts) != 1 {
		return 0, &InvariantError{Op: op, Message: "expression must have exactly one start state"}
	}
	for s := range n.starts {
		return s, nil
	}
	panic("unreachable")
}

// soleAccept returns the single accept state of n, or an InvariantError if
// n does not have exactly one.
func soleAccept(op string, n *NFA) (StateID, error) {
	if len(n.accepts) != 1 {
		return 0, &InvariantError{Op: op, Message: "expression must have exactly one accept state"}
	}
	for a := range n.accepts {
		return a, nil
	}
	panic("unreachable")
}

// relabel returns a deep copy of n with every state id shifted by offset.
func relabel(n *NFA, offset StateID) *NFA {
	out := newEmptyGraph()
	for s := range n.states {
		out.states[s+offset] = struct{}{}
	}
	for s := range n.starts {
		out.starts[s+offset] = struct{}{}
	}
	for a := range n.accepts {
		out.accepts[a+offset] = struct{}{}
	}
	for s, edges := range n.trans {
		relabeled := map[Symbol]map[StateID]struct{}{}
		for sym, dests := range edges {
			rd := make(map[StateID]struct{}, len(dests))
			for d := range dests {
				rd[d+offset] = struct{}{}
			}
			relabeled[sym] = rd
		}
		out.trans[s+offset] = relabeled
	}
	out.groups = make([]Group, len(n.groups))
	for i, g := range n.groups {
		out.groups[i] = Group{Start: g.Start + offset, Accept: g.Accept + offset}
	}
	return out
}

// addEdge adds a single destination to state s's transition on sym.
func addEdge(n *NFA, s StateID, sym Symbol, dest StateID) {
	if n.trans[s] == nil {
		n.trans[s] = map[Symbol]map[StateID]struct{}{}
	}
	if n.trans[s][sym] == nil {
		n.trans[s][sym] = map[StateID]struct{}{}
	}
	n.trans[s][sym][dest] = struct{}{}
}

// mergeInto copies every state and transition of src into dst, without
// touching dst's own starts/accepts/groups. Caller must ensure src's state
// ids don't collide with dst's (e.g. by relabeling src first).
func mergeInto(dst, src *NFA) {
	for s := range src.states {
		dst.states[s] = struct{}{}
	}
	for s, edges := range src.trans {
		if dst.trans[s] == nil {
			dst.trans[s] = map[Symbol]map[StateID]struct{}{}
		}
		for sym, dests := range edges {
			if dst.trans[s][sym] == nil {
				dst.trans[s][sym] = map[StateID]struct{}{}
			}
			for d := range dests {
				dst.trans[s][sym][d] = struct{}{}
			}
		}
	}
}

// Concatenate mutates p into p·q: q's states are relabeled above p's
// highest id, merged in, an epsilon edge links p's sole accept to q's sole
// start, and p's accept set becomes (relabeled) q's accept set. q's groups
// are relabeled and appended to p's groups.
func (b *Builder) Concatenate(p, q *NFA) (*NFA, error) {
	pAccept, err := soleAccept("Concatenate", p)
	if err != nil {
		return nil, err
	}
	if _, err := soleStart("Concatenate", p); err != nil {
		return nil, err
	}
	if _, err := soleStart("Concatenate", q); err != nil {
		return nil, err
	}
	if _, err := soleAccept("Concatenate", q); err != nil {
		return nil, err
	}

	offset := maxState(p) + 1
	rq := relabel(q, offset)
	mergeInto(p, rq)
	addEdge(p, pAccept, automaton.EpsilonSymbol, onlyState(rq.starts))

	p.accepts = cloneSet(rq.accepts)
	p.groups = append(p.groups, rq.groups...)
	return p, nil
}

// Join embeds secondary inside primary: primary's state `start` gets an
// epsilon edge to secondary's (relabeled) sole start, and secondary's
// (relabeled) sole accept gets an epsilon edge to primary's state `end`.
// secondary's groups are relabeled and appended to primary's groups.
// Used by Union and Optional; returns the mutated primary.
func (b *Builder) Join(primary, secondary *NFA, start, end StateID) (*NFA, error) {
	secStart, err := soleStart("Join", secondary)
	if err != nil {
		return nil, err
	}
	secAccept, err := soleAccept("Join", secondary)
	if err != nil {
		return nil, err
	}

	offset := maxState(primary) + 1
	rs := relabel(secondary, offset)
	mergeInto(primary, rs)

	relabeledStart := secStart + offset
	relabeledAccept := secAccept + offset
	addEdge(primary, start, automaton.EpsilonSymbol, relabeledStart)
	addEdge(primary, relabeledAccept, automaton.EpsilonSymbol, end)

	primary.groups = append(primary.groups, rs.groups...)
	return primary, nil
}

// Union builds an NFA accepting any of alternatives: a fresh {0,1}
// skeleton with start 0 and accept 1, with every alternative joined
// between those two states.
func (b *Builder) Union(alternatives []*NFA) (*NFA, error) {
	primary := newEmptyGraph()
	primary.states[0] = struct{}{}
	primary.states[1] = struct{}{}
	primary.starts[0] = struct{}{}
	primary.accepts[1] = struct{}{}

	for _, alt := range alternatives {
		var err error
		primary, err = b.Join(primary, alt, 0, 1)
		if err != nil {
			return nil, err
		}
	}
	return primary, nil
}

// KleenePlus mutates p by adding an epsilon edge from its sole accept back
// to its sole start, allowing one-or-more repetitions.
func (b *Builder) KleenePlus(p *NFA) (*NFA, error) {
	start, err := soleStart("KleenePlus", p)
	if err != nil {
		return nil, err
	}
	accept, err := soleAccept("KleenePlus", p)
	if err != nil {
		return nil, err
	}
	addEdge(p, accept, automaton.EpsilonSymbol, start)
	return p, nil
}

// KleeneStar is Optional(KleenePlus(p)): zero-or-more repetitions.
func (b *Builder) KleeneStar(p *NFA) (*NFA, error) {
	plus, err := b.KleenePlus(p)
	if err != nil {
		return nil, err
	}
	return b.Optional(plus)
}

// Optional joins a fresh Empty() fragment with p between its own start and
// accept: the result reaches its accept both directly (the Empty edge) and
// via p.
func (b *Builder) Optional(p *NFA) (*NFA, error) {
	empty := b.Empty()
	start, err := soleStart("Optional", empty)
	if err != nil {
		return nil, err
	}
	end, err := soleAccept("Optional", empty)
	if err != nil {
		return nil, err
	}
	return b.Join(empty, p, start, end)
}

// Grouped records (p's sole start, p's sole accept) at the FRONT of p's
// group list — so when this group is itself nested inside an enclosing
// group that concatenates/joins it in later, the outer group (recorded
// here) ends up at a lower capture index than any group already present in
// p (which were necessarily parsed and recorded before this call, i.e.
// nested groups). No new states are added: the captured span is exactly
// the span p itself matches.
func (b *Builder) Grouped(p *NFA) (*NFA, error) {
	start, err := soleStart("Grouped", p)
	if err != nil {
		return nil, err
	}
	accept, err := soleAccept("Grouped", p)
	if err != nil {
		return nil, err
	}
	p.groups = append([]Group{{Start: start, Accept: accept}}, p.groups...)
	return p, nil
}

func maxState(n *NFA) StateID {
	var max StateID
	first := true
	for s := range n.states {
		if first || s > max {
			max = s
			first = false
		}
	}
	return max
}

// onlyState returns the single element of a one-element StateID set.
// Callers only use it right after relabeling a fragment whose soleStart
// check already guaranteed exactly one element.
func onlyState(s map[StateID]struct{}) StateID {
	for id := range s {
		return id
	}
	panic("onlyState() called on empty set")
}
