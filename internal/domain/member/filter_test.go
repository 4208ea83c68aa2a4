package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func memberIDs(members []Member) []string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.MemberID)
	}
	return ids
}

func TestFilter(t *testing.T) {
	roster := []Member{
		{MemberID: "100", Group: "HOA VÂN CÁC"},
		{MemberID: "200", Group: "TÂY VÂN CÁC"},
		{MemberID: "300", Group: "HOA VÂN CÁC"},
		{MemberID: "123", Group: "HOA VÂN CÁC"},
		{MemberID: "450", Group: "TINH VÂN CÁC"},
	}

	tests := []struct {
		name   string
		search string
		group  string
		want   []string
	}{
		{"no filters", "", "", []string{"100", "200", "300", "123", "450"}},
		{"substring anywhere", "00", "", []string{"100", "200", "300"}},
		{"unanchored single digit", "5", "", []string{"450"}},
		{"group only", "", "HOA VÂN CÁC", []string{"100", "300", "123"}},
		{"both filters AND", "00", "HOA VÂN CÁC", []string{"100", "300"}},
		{"group must match exactly", "", "hoa vân các", []string{}},
		{"no match", "999", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, memberIDs(Filter(roster, tt.search, tt.group)))
		})
	}
}
