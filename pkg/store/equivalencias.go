package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// CodeSearcher looks up equivalent OEM codes.
type CodeSearcher interface {
	Search(ctx context.Context, codigo string) ([]string, error)
}

// EquivalenceSearch holds the result of the last OEM equivalence lookup.
// It never touches the equivalencias store.
type EquivalenceSearch struct {
	searcher CodeSearcher

	opMu    sync.Mutex
	mu      sync.RWMutex
	codes   []string
	loading bool
	errMsg  string
}

// NewEquivalenceSearch creates an empty search over searcher.
func NewEquivalenceSearch(searcher CodeSearcher) *EquivalenceSearch {
	return &EquivalenceSearch{
		searcher: searcher,
		codes:    []string{},
	}
}

// Search replaces the codes with the equivalents of codigo. A blank codigo
// clears the codes without a request. On failure the codes are cleared and
// the error is recorded and returned.
func (e *EquivalenceSearch) Search(ctx context.Context, codigo string) ([]string, error) {
	e.opMu.Lock()
	defer e.opMu.Unlock()

	if strings.TrimSpace(codigo) == "" {
		e.mu.Lock()
		e.codes = []string{}
		e.errMsg = ""
		e.mu.Unlock()

		return []string{}, nil
	}

	e.mu.Lock()
	e.loading = true
	e.errMsg = ""
	e.mu.Unlock()

	codes, err := e.searcher.Search(ctx, codigo)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.loading = false

	if err != nil {
		e.codes = []string{}
		e.errMsg = fmt.Sprintf("searching equivalencias: %v", err)

		return nil, err
	}

	if codes == nil {
		codes = []string{}
	}

	e.codes = codes

	return append([]string{}, codes...), nil
}

// Codes returns a copy of the last result.
func (e *EquivalenceSearch) Codes() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return append([]string{}, e.codes...)
}

// Loading reports whether a lookup is in flight.
func (e *EquivalenceSearch) Loading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.loading
}

// Err returns the last recorded error message, or "".
func (e *EquivalenceSearch) Err() string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.errMsg
}
