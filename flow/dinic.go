package flow

// Dinic computes the maximum flow from s to t using level graphs and blocking
// flows. It is interchangeable with EdmondsKarp and usually faster on the
// unit-capacity networks built by the connectivity package.
//
// Steps:
//  1. BFS from s assigns levels over arcs with positive residual capacity.
//  2. If t is unreachable, stop.
//  3. Iterative DFS pushes blocking flow along arcs level(v) = level(u)+1,
//     advancing a per-node arc cursor so every arc is tried once per phase.
//
// Errors: ErrTerminalRange, ErrSameTerminal.
//
// Complexity: O(V² · E) in general, O(E · √V) on unit-capacity networks.
func Dinic(nw *Network, s, t int, opts *Options) (*Result, error) {
	if err := nw.checkTerminals(s, t); err != nil {
		return nil, err
	}
	res := &Result{Residual: nw.Clone()}
	r := res.Residual
	level := make([]int, r.n)
	cursor := make([]int, r.n)
	queue := make([]int, 0, r.n)
	stack := make([]int, 0, r.n)
	log := opts.logger()

	for buildLevels(r, s, t, level, queue) {
		for i := range cursor {
			cursor[i] = 0
		}
		for {
			delta, path := blockingPush(r, s, t, level, cursor, stack)
			if delta == 0 {
				break
			}
			res.Value += delta
			if opts.keepPaths() {
				res.Paths = append(res.Paths, AugmentingPath{Delta: delta, Nodes: append([]int(nil), path...)})
			}
			if log != nil {
				log.WithField("delta", delta).WithField("value", res.Value).Debug("flow: blocking push")
			}
		}
	}

	return res, nil
}

// buildLevels assigns BFS levels from s (unreachable nodes get -1) and
// reports whether t was reached.
func buildLevels(r *Network, s, t int, level []int, queue []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[s] = 0
	queue = append(queue[:0], s)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range r.adj[u] {
			if level[v] < 0 && r.cap[u*r.n+v] > 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[t] >= 0
}

// blockingPush finds one s→t path in the level graph with an explicit stack,
// pushes its bottleneck and returns it with the path. Dead ends advance the
// cursor of their parent so they are never revisited in this phase.
func blockingPush(r *Network, s, t int, level, cursor []int, stack []int) (int64, []int) {
	stack = append(stack[:0], s)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if u == t {
			delta := int64(-1)
			for i := 0; i+1 < len(stack); i++ {
				c := r.cap[stack[i]*r.n+stack[i+1]]
				if delta < 0 || c < delta {
					delta = c
				}
			}
			for i := 0; i+1 < len(stack); i++ {
				r.push(stack[i], stack[i+1], delta)
			}

			return delta, stack
		}
		advanced := false
		for cursor[u] < len(r.adj[u]) {
			v := r.adj[u][cursor[u]]
			if level[v] == level[u]+1 && r.cap[u*r.n+v] > 0 {
				stack = append(stack, v)
				advanced = true

				break
			}
			cursor[u]++
		}
		if !advanced {
			// dead end: retreat and skip the arc that led here
			level[u] = -1
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				cursor[stack[len(stack)-1]]++
			}
		}
	}

	return 0, nil
}
