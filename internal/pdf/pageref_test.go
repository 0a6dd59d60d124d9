package pdf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslatePages_Delete(t *testing.T) {
	tests := []struct {
		name      string
		refs      []int
		pageCount int
		want      []int
		wantErr   error
	}{
		{
			name:      "descending order",
			refs:      []int{2, 5, 1},
			pageCount: 10,
			want:      []int{4, 1, 0},
		},
		{
			name:      "duplicates collapse",
			refs:      []int{3, 3, 3},
			pageCount: 5,
			want:      []int{2},
		},
		{
			name:      "out of range discarded silently",
			refs:      []int{0, 2, 99, -1},
			pageCount: 5,
			want:      []int{1},
		},
		{
			name:      "all out of range",
			refs:      []int{11, 12},
			pageCount: 10,
			wantErr:   ErrNoValidPages,
		},
		{
			name:      "empty list",
			refs:      nil,
			pageCount: 10,
			wantErr:   ErrNoValidPages,
		},
		{
			name:      "would empty document",
			refs:      []int{1, 2, 3},
			pageCount: 3,
			wantErr:   ErrWouldEmptyDocument,
		},
		{
			name:      "duplicates do not trip the empty-document check",
			refs:      []int{1, 1, 2},
			pageCount: 3,
			want:      []int{1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translatePages(tt.refs, tt.pageCount, modeDelete)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslatePages_Extract(t *testing.T) {
	// First-occurrence order survives dedup and range filtering.
	got, err := translatePages([]int{3, 1, 3, 2, 99}, 5, modeExtract)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, got)

	_, err = translatePages([]int{6, 7}, 5, modeExtract)
	assert.True(t, errors.Is(err, ErrNoValidPages))
}

func TestTranslatePages_Rotate(t *testing.T) {
	got, err := translatePages([]int{1, 1, 2}, 5, modeRotate)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, got)

	// Removing every page is fine for a non-destructive mode.
	got, err = translatePages([]int{1, 2, 3}, 3, modeRotate)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestReferenceIndex(t *testing.T) {
	idx, err := referenceIndex(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = referenceIndex(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	for _, ref := range []int{0, -1, 4} {
		_, err := referenceIndex(ref, 3)
		assert.True(t, errors.Is(err, ErrInvalidReference), "ref %d", ref)
	}
}

func TestComplementDescending(t *testing.T) {
	assert.Equal(t, []int{4, 2, 0}, complementDescending([]int{1, 3}, 5))
	assert.Empty(t, complementDescending([]int{0, 1, 2}, 3))
	assert.Equal(t, []int{2, 1, 0}, complementDescending(nil, 3))
}
