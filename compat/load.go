package compat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/wfc/axis"
)

// Load reads the compatibility tables of a dim-dimensional tile set.
//
// If patternsPath exists it is parsed as a pattern-axis table. Otherwise the
// exhaustive table from Synthesize(dim) is used and written to patternsPath
// (unless WithoutPersist is given) so subsequent loads read the same data.
// The neighbor-group file is mandatory: a missing neighborsPath yields
// ErrNeighborsNotFound.
//
// All failures are fatal load errors; see the package documentation for the
// full list. Complexity: O(file size + N×D).
func Load(dim int, patternsPath, neighborsPath string, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if dim < 1 || dim > axis.MaxDimension {
		return nil, fmt.Errorf("%w: %d", ErrBadDimension, dim)
	}

	patterns, err := ReadPatterns(patternsPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		patterns = Synthesize(dim)
		if o.persist {
			if err := WritePatterns(patternsPath, patterns); err != nil {
				return nil, err
			}
		}
	case err != nil:
		return nil, err
	}

	neighbors, err := ReadNeighbors(neighborsPath)
	if err != nil {
		return nil, err
	}

	return New(dim, patterns, neighbors, opts...)
}

// Synthesize enumerates every combination of "arm present / absent" on the 2×dim
// half-axes. Pattern i has value 1 on Pos(j) when bit 2j+1 of i is set and value 1
// on Neg(j) when bit 2j is set, 0 otherwise; there are 4^dim patterns.
//
// The values double as neighbor-group ids, so the table pairs naturally with
// DefaultNeighbors.
func Synthesize(dim int) PatternTable {
	n := 1 << (2 * dim)
	out := make(PatternTable, n)
	for i := 0; i < n; i++ {
		m := make(map[axis.Axis]int, 2*dim)
		for j := 0; j < dim; j++ {
			m[axis.Pos(j)] = (i >> (2*j + 1)) & 1
			m[axis.Neg(j)] = (i >> (2 * j)) & 1
		}
		out[i] = m
	}

	return out
}

// DefaultNeighbors returns the socket-identity neighbor table: group 0 admits
// value 0 and group 1 admits value 1, i.e. arms meet arms and blanks meet blanks.
func DefaultNeighbors() NeighborTable {
	return NeighborTable{0: {0}, 1: {1}}
}

// ReadPatterns decodes a pattern-axis file. A missing file yields an error
// satisfying errors.Is(err, fs.ErrNotExist).
func ReadPatterns(path string) (PatternTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	out := make(PatternTable, len(raw))
	for key, byName := range raw {
		id, err := parseID(key)
		if err != nil {
			return nil, fmt.Errorf("%s: pattern %q: %w", path, key, err)
		}
		m := make(map[axis.Axis]int, len(byName))
		for name, g := range byName {
			a, err := axis.Parse(name)
			if err != nil || a == axis.None {
				return nil, fmt.Errorf("%s: pattern %d: %w: %q", path, id, ErrUnknownAxis, name)
			}
			m[a] = g
		}
		out[id] = m
	}

	return out, nil
}

// ReadNeighbors decodes a neighbor-group file. A missing file yields
// ErrNeighborsNotFound.
func ReadNeighbors(path string) (NeighborTable, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNeighborsNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	var raw map[string][]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	out := make(NeighborTable, len(raw))
	for key, values := range raw {
		g, err := parseID(key)
		if err != nil {
			return nil, fmt.Errorf("%s: group %q: %w", path, key, err)
		}
		out[g] = values
	}

	return out, nil
}

// WritePatterns persists a pattern-axis table with the schema ReadPatterns reads.
func WritePatterns(path string, t PatternTable) error {
	raw := make(map[string]map[string]int, len(t))
	for id, byAxis := range t {
		m := make(map[string]int, len(byAxis))
		for a, g := range byAxis {
			m[a.String()] = g
		}
		raw[strconv.Itoa(id)] = m
	}

	return writeJSON(path, raw)
}

// WriteNeighbors persists a neighbor-group table with the schema ReadNeighbors reads.
func WriteNeighbors(path string, t NeighborTable) error {
	raw := make(map[string][]int, len(t))
	for g, values := range t {
		raw[strconv.Itoa(g)] = values
	}

	return writeJSON(path, raw)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("compat: create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("compat: write %s: %w", path, err)
	}

	return nil
}

// parseID accepts only canonical non-negative decimal integers.
func parseID(key string) (int, error) {
	id, err := strconv.Atoi(key)
	if err != nil || id < 0 || strconv.Itoa(id) != key {
		return 0, fmt.Errorf("%w: %q", ErrBadID, key)
	}

	return id, nil
}
