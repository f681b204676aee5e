package flow

import "github.com/pkg/errors"

// Network is a directed integer-capacity flow network on nodes 0..N-1.
//
// Capacities live in a dense N×N buffer so residual updates are O(1); the
// adjacency lists hold every node reachable by a forward or a reverse arc, so
// BFS/DFS over the residual network never has to scan a full row.
type Network struct {
	n    int
	cap  []int64 // cap[u*n+v] residual capacity u→v
	adj  [][]int // adj[u]: nodes sharing an arc with u (either direction)
	seen []bool  // seen[u*n+v]: v already listed in adj[u]
}

// NewNetwork returns an empty network with n nodes.
func NewNetwork(n int) *Network {
	return &Network{
		n:    n,
		cap:  make([]int64, n*n),
		adj:  make([][]int, n),
		seen: make([]bool, n*n),
	}
}

// Order returns the number of nodes.
func (nw *Network) Order() int { return nw.n }

// AddArc adds capacity c to the arc u→v; parallel arcs accumulate.
func (nw *Network) AddArc(u, v int, c int64) error {
	if u < 0 || u >= nw.n || v < 0 || v >= nw.n {
		return errors.Wrapf(ErrInvalidNode, "arc %d→%d in network of %d nodes", u, v, nw.n)
	}
	if c < 0 {
		return errors.Wrapf(ErrNegativeCapacity, "arc %d→%d: %d", u, v, c)
	}
	if u == v {
		return nil
	}
	nw.cap[u*nw.n+v] += c
	nw.link(u, v)
	nw.link(v, u)

	return nil
}

func (nw *Network) link(u, v int) {
	if !nw.seen[u*nw.n+v] {
		nw.seen[u*nw.n+v] = true
		nw.adj[u] = append(nw.adj[u], v)
	}
}

// Capacity returns the residual capacity of u→v.
func (nw *Network) Capacity(u, v int) int64 {
	if u < 0 || u >= nw.n || v < 0 || v >= nw.n {
		return 0
	}

	return nw.cap[u*nw.n+v]
}

// Clone returns an independent copy of the network.
func (nw *Network) Clone() *Network {
	c := &Network{
		n:    nw.n,
		cap:  make([]int64, len(nw.cap)),
		adj:  make([][]int, nw.n),
		seen: make([]bool, len(nw.seen)),
	}
	copy(c.cap, nw.cap)
	copy(c.seen, nw.seen)
	for u, row := range nw.adj {
		c.adj[u] = append([]int(nil), row...)
	}

	return c
}

// push moves delta units along u→v in the residual network.
func (nw *Network) push(u, v int, delta int64) {
	nw.cap[u*nw.n+v] -= delta
	nw.cap[v*nw.n+u] += delta
}

func (nw *Network) checkTerminals(s, t int) error {
	if s < 0 || s >= nw.n {
		return errors.Wrapf(ErrTerminalRange, "source %d", s)
	}
	if t < 0 || t >= nw.n {
		return errors.Wrapf(ErrTerminalRange, "sink %d", t)
	}
	if s == t {
		return ErrSameTerminal
	}

	return nil
}
