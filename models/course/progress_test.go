package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name          string
		totalItems    int
		completedIDs  []uint
		wantPercent   int
		wantCompleted bool
	}{
		{
			name:          "no content means no progress",
			totalItems:    0,
			completedIDs:  nil,
			wantPercent:   0,
			wantCompleted: false,
		},
		{
			name:          "no content is never complete even with stale completions",
			totalItems:    0,
			completedIDs:  []uint{1, 2},
			wantPercent:   0,
			wantCompleted: false,
		},
		{
			name:          "nothing completed",
			totalItems:    4,
			completedIDs:  nil,
			wantPercent:   0,
			wantCompleted: false,
		},
		{
			name:          "half completed",
			totalItems:    4,
			completedIDs:  []uint{1, 2},
			wantPercent:   50,
			wantCompleted: false,
		},
		{
			name:          "one of three rounds to 33",
			totalItems:    3,
			completedIDs:  []uint{1},
			wantPercent:   33,
			wantCompleted: false,
		},
		{
			name:          "two of three rounds to 67",
			totalItems:    3,
			completedIDs:  []uint{1, 2},
			wantPercent:   67,
			wantCompleted: false,
		},
		{
			name:          "one of eight rounds up from 12.5",
			totalItems:    8,
			completedIDs:  []uint{1},
			wantPercent:   13,
			wantCompleted: false,
		},
		{
			name:          "duplicate ids count once",
			totalItems:    4,
			completedIDs:  []uint{7, 7, 7},
			wantPercent:   25,
			wantCompleted: false,
		},
		{
			name:          "everything completed",
			totalItems:    3,
			completedIDs:  []uint{1, 2, 3},
			wantPercent:   100,
			wantCompleted: true,
		},
		{
			name:          "more completions than items clamps to 100",
			totalItems:    2,
			completedIDs:  []uint{1, 2, 3},
			wantPercent:   100,
			wantCompleted: true,
		},
		{
			name:          "single item course",
			totalItems:    1,
			completedIDs:  []uint{9},
			wantPercent:   100,
			wantCompleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, completed := ComputeProgress(tt.totalItems, tt.completedIDs)
			assert.Equal(t, tt.wantPercent, percent)
			assert.Equal(t, tt.wantCompleted, completed)
		})
	}
}
