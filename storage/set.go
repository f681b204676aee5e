// SPDX-License-Identifier: MIT
//
// File: set.go
// Role: Set, the in-memory view of one set file.
// Ownership:
//   - Get returns the stored graph itself; callers that mutate it should
//     Clone first. Set is not safe for concurrent use.

package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath-edit/core"
)

// Set is a collection of named graphs backed by one file.
type Set struct {
	path   string
	graphs map[string]core.Graph
}

// Open loads the set file at path. A missing file yields an empty set that
// Save will create.
func Open(path string, opts ...core.GraphOption) (*Set, error) {
	s := &Set{path: path, graphs: make(map[string]core.Graph)}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "storage: open")
	}
	defer f.Close()

	named, err := Parse(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "storage: %s", path)
	}
	for _, ng := range named {
		s.graphs[ng.Name] = ng.Graph
	}

	return s, nil
}

// Path returns the backing file.
func (s *Set) Path() string { return s.path }

// Names lists the stored names in ascending order.
func (s *Set) Names() []string {
	out := make([]string, 0, len(s.graphs))
	for name := range s.graphs {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Get returns the graph stored under name.
func (s *Set) Get(name string) (core.Graph, error) {
	g, ok := s.graphs[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%q in %s", name, s.path)
	}

	return g, nil
}

// Put stores g under name, replacing any previous graph. It reports
// whether the name was new.
func (s *Set) Put(name string, g core.Graph) (bool, error) {
	if err := checkName(name); err != nil {
		return false, err
	}
	_, had := s.graphs[name]
	s.graphs[name] = g

	return !had, nil
}

// Remove deletes name and reports whether it was present.
func (s *Set) Remove(name string) bool {
	_, had := s.graphs[name]
	delete(s.graphs, name)

	return had
}

// Save writes every graph, in name order, to a temporary file next to the
// target and renames it into place.
func (s *Set) Save() error {
	var buf bytes.Buffer
	for i, name := range s.Names() {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := Format(&buf, name, s.graphs[name]); err != nil {
			return err
		}
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return errors.Wrap(err, "storage: save")
	}
	if _, err = tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrap(err, "storage: save")
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "storage: save")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "storage: save")
}
