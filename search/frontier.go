package search

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// key orders frontier entries by score, then by insertion sequence so equal
// scores pop first-in first-out and every key is unique.
type key struct {
	score int64
	seq   uint64
}

func compareKeys(a, b interface{}) int {
	ka, kb := a.(key), b.(key)
	switch {
	case ka.score < kb.score:
		return -1
	case ka.score > kb.score:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

// Frontier is the ordered set of open nodes of one search.
// The sequence counter is local to the frontier, so two runs never share it.
type Frontier[N any] struct {
	tree *redblacktree.Tree
	seq  uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier[N any]() *Frontier[N] {
	return &Frontier[N]{tree: redblacktree.NewWith(compareKeys)}
}

// Push inserts n with the given score.
func (f *Frontier[N]) Push(score int64, n N) {
	f.tree.Put(key{score: score, seq: f.seq}, n)
	f.seq++
}

// PopMin removes and returns the node with the lowest score.
func (f *Frontier[N]) PopMin() (N, int64, bool) {
	var zero N
	left := f.tree.Left()
	if left == nil {
		return zero, 0, false
	}
	k := left.Key.(key)
	n := left.Value.(N)
	f.tree.Remove(k)

	return n, k.score, true
}

// MinScore returns the lowest score without removing anything.
func (f *Frontier[N]) MinScore() (int64, bool) {
	left := f.tree.Left()
	if left == nil {
		return 0, false
	}

	return left.Key.(key).score, true
}

// PruneFrom removes every node with score ≥ bound and returns how many went.
func (f *Frontier[N]) PruneFrom(bound int64) int {
	removed := 0
	for {
		right := f.tree.Right()
		if right == nil {
			break
		}
		k := right.Key.(key)
		if k.score < bound {
			break
		}
		f.tree.Remove(k)
		removed++
	}

	return removed
}

// Len returns the number of open nodes.
func (f *Frontier[N]) Len() int { return f.tree.Size() }

// Scores lists the stored scores in ascending order.
func (f *Frontier[N]) Scores() []int64 {
	out := make([]int64, 0, f.tree.Size())
	it := f.tree.Iterator()
	for it.Next() {
		out = append(out, it.Key().(key).score)
	}

	return out
}
