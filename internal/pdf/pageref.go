package pdf

import (
	"fmt"
	"sort"
)

// refMode selects the per-operation translation policy for externally
// supplied 1-indexed page references.
type refMode int

const (
	// modeDelete discards out-of-range references, deduplicates and sorts
	// descending so repeated removal by position never shifts indices that
	// are still to be processed.
	modeDelete refMode = iota

	// modeExtract discards out-of-range references and deduplicates
	// preserving first-occurrence order.
	modeExtract

	// modeRotate discards out-of-range references and deduplicates; order
	// is irrelevant.
	modeRotate
)

// translatePages converts a 1-indexed, possibly unordered, possibly
// duplicated reference list into a validated 0-indexed working set under
// the given policy. It never mutates anything; an empty validated set
// fails with ErrNoValidPages before any destructive work can start.
func translatePages(refs []int, pageCount int, mode refMode) ([]int, error) {
	seen := make(map[int]bool, len(refs))
	indices := make([]int, 0, len(refs))
	for _, ref := range refs {
		idx := ref - 1
		if idx < 0 || idx >= pageCount {
			continue
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}

	if len(indices) == 0 {
		return nil, ErrNoValidPages
	}

	if mode == modeDelete {
		if len(indices) >= pageCount {
			return nil, ErrWouldEmptyDocument
		}
		sort.Sort(sort.Reverse(sort.IntSlice(indices)))
	}

	return indices, nil
}

// referenceIndex validates a single 1-indexed insertion anchor strictly.
func referenceIndex(ref, pageCount int) (int, error) {
	idx := ref - 1
	if idx < 0 || idx >= pageCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidReference, ref)
	}
	return idx, nil
}

// complementDescending returns every index in [0, pageCount) that is not
// in keep, sorted descending. Used by extract to delete everything else.
func complementDescending(keep []int, pageCount int) []int {
	keepSet := make(map[int]bool, len(keep))
	for _, idx := range keep {
		keepSet[idx] = true
	}

	drop := make([]int, 0, pageCount-len(keep))
	for idx := pageCount - 1; idx >= 0; idx-- {
		if !keepSet[idx] {
			drop = append(drop, idx)
		}
	}
	return drop
}
