package kudos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRecipientList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"one", []string{"X"}, "X"},
		{"two", []string{"X", "Y"}, "X and Y"},
		{"three", []string{"X", "Y", "Z"}, "X, Y, and Z"},
		{"four", []string{"A", "B", "C", "D"}, "A, B, C, and D"},
		{"duplicates kept", []string{"X", "X"}, "X and X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRecipientList(tt.items))
		})
	}
}
