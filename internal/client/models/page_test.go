package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPageInfo_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageInfo
		want PageInfo
	}{
		{
			name: "middle page",
			in:   PageInfo{CurrentPage: 2, TotalPages: 5},
			want: PageInfo{CurrentPage: 2, TotalPages: 5, HasNext: true, HasPrevious: true},
		},
		{
			name: "first page",
			in:   PageInfo{CurrentPage: 1, TotalPages: 3, HasPrevious: true},
			want: PageInfo{CurrentPage: 1, TotalPages: 3, HasNext: true, HasPrevious: false},
		},
		{
			name: "last page",
			in:   PageInfo{CurrentPage: 3, TotalPages: 3, HasNext: true},
			want: PageInfo{CurrentPage: 3, TotalPages: 3, HasNext: false, HasPrevious: true},
		},
		{
			name: "empty result set",
			in:   PageInfo{CurrentPage: 1, TotalPages: 0},
			want: PageInfo{CurrentPage: 1, TotalPages: 0},
		},
		{
			name: "garbage counters clamped",
			in:   PageInfo{CurrentPage: 0, TotalPages: -1, HasNext: true},
			want: PageInfo{CurrentPage: 1, TotalPages: 0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in
			p.Normalize()
			require.Equal(t, tc.want, p)
		})
	}
}
