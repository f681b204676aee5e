package flow

// EdmondsKarp computes the maximum flow from s to t with shortest (fewest-arc)
// augmenting paths found by breadth-first search.
//
// The input network is left untouched; augmentations run on a clone that is
// returned as Result.Residual. Each augmentation pushes the bottleneck, the
// minimum residual capacity on the path, subtracting it along forward arcs and
// crediting it along reverse arcs.
//
// Errors: ErrTerminalRange, ErrSameTerminal.
//
// Complexity: O(V · E²) time, O(V²) memory for the dense residual buffer.
func EdmondsKarp(nw *Network, s, t int, opts *Options) (*Result, error) {
	if err := nw.checkTerminals(s, t); err != nil {
		return nil, err
	}
	res := &Result{Residual: nw.Clone()}
	r := res.Residual
	parent := make([]int, r.n)
	queue := make([]int, 0, r.n)
	log := opts.logger()

	for {
		delta := shortestAugmentingPath(r, s, t, parent, queue)
		if delta == 0 {
			break
		}
		var path []int
		if opts.keepPaths() {
			path = append(path, t)
		}
		for v := t; v != s; v = parent[v] {
			r.push(parent[v], v, delta)
			if path != nil {
				path = append(path, parent[v])
			}
		}
		res.Value += delta
		if path != nil {
			reverse(path)
			res.Paths = append(res.Paths, AugmentingPath{Delta: delta, Nodes: path})
		}
		if log != nil {
			log.WithField("delta", delta).WithField("value", res.Value).Debug("flow: augmented")
		}
	}

	return res, nil
}

// shortestAugmentingPath runs BFS over arcs with positive residual capacity.
// On success parent[] encodes the path and the bottleneck is returned; a zero
// return means t is unreachable.
func shortestAugmentingPath(r *Network, s, t int, parent []int, queue []int) int64 {
	for i := range parent {
		parent[i] = -1
	}
	parent[s] = s
	queue = append(queue[:0], s)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range r.adj[u] {
			if parent[v] >= 0 || r.cap[u*r.n+v] <= 0 {
				continue
			}
			parent[v] = u
			if v == t {
				return bottleneck(r, s, t, parent)
			}
			queue = append(queue, v)
		}
	}

	return 0
}

func bottleneck(r *Network, s, t int, parent []int) int64 {
	delta := int64(-1)
	for v := t; v != s; v = parent[v] {
		c := r.cap[parent[v]*r.n+v]
		if delta < 0 || c < delta {
			delta = c
		}
	}

	return delta
}

func reverse(xs []int) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
