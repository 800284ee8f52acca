package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		compound bool
		str      string
	}{
		{name: "empty", filter: Filter{}, compound: false, str: "*"},
		{name: "single", filter: Filter{Eq(FieldIsPublic, true)}, compound: false, str: "isPublic == true"},
		{
			name:     "owner private",
			filter:   Filter{Eq(FieldUser, "a@x.com"), Eq(FieldIsPublic, false)},
			compound: true,
			str:      "user == a@x.com && isPublic == false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.compound, tt.filter.IsCompound())
			assert.Equal(t, tt.str, tt.filter.String())
		})
	}
}
