package phrase

// Aho-Corasick automaton over bytes. Each node keeps a dense 256-way
// transition table so the scan loop never touches a map

const noEdge = -1

type node struct {
	next [256]int32
	fail int32
	out  []int // pattern ids ending here, including those reached via fail links
}

type automaton struct {
	nodes []node
}

func newNode() node {
	var n node
	for i := range n.next {
		n.next[i] = noEdge
	}
	return n
}

func newAutomaton() *automaton {
	return &automaton{nodes: []node{newNode()}}
}

func (a *automaton) add(pat []byte, id int) {
	if len(pat) == 0 {
		return
	}
	s := int32(0)
	for _, b := range pat {
		nx := a.nodes[s].next[b]
		if nx == noEdge {
			nx = int32(len(a.nodes))
			a.nodes[s].next[b] = nx
			a.nodes = append(a.nodes, newNode())
		}
		s = nx
	}
	a.nodes[s].out = append(a.nodes[s].out, id)
}

// build computes failure links breadth first
func (a *automaton) build() {
	queue := make([]int32, 0, len(a.nodes))
	for b := range 256 {
		if s := a.nodes[0].next[b]; s != noEdge {
			a.nodes[s].fail = 0
			queue = append(queue, s)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		for b := range 256 {
			s := a.nodes[r].next[b]
			if s == noEdge {
				continue
			}
			queue = append(queue, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].next[b] == noEdge {
				f = a.nodes[f].fail
			}
			if nx := a.nodes[f].next[b]; nx != noEdge && nx != s {
				a.nodes[s].fail = nx
			} else {
				a.nodes[s].fail = 0
			}
			a.nodes[s].out = append(a.nodes[s].out, a.nodes[a.nodes[s].fail].out...)
		}
	}
}

// scan calls fn(end, id) for every pattern occurrence in text, in order of end offset.
// end is exclusive
func (a *automaton) scan(text []byte, fn func(end, id int)) {
	s := int32(0)
	for i, b := range text {
		for s != 0 && a.nodes[s].next[b] == noEdge {
			s = a.nodes[s].fail
		}
		if nx := a.nodes[s].next[b]; nx != noEdge {
			s = nx
		}
		for _, id := range a.nodes[s].out {
			fn(i+1, id)
		}
	}
}
