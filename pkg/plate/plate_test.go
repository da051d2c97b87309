package plate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSamples(t *testing.T) {
	samples := Samples("Plate1", "A", 3)
	assert.Equal(t, []Sample{
		{ID: "A1", Sheet: "Plate1-A1"},
		{ID: "A2", Sheet: "Plate1-A2"},
		{ID: "A3", Sheet: "Plate1-A3"},
	}, samples)
	assert.Empty(t, Samples("Plate1", "A", 0))
}

func TestGuideFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Guide
	}{
		{"Raw Data/Trp53 Genewiz Results.xlsx", "Trp53"},
		{"/data/Atm.xlsx", "Atm"},
		{"Cdkn2a  amplicon.xlsx", "Cdkn2a"},
		{".xlsx", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GuideFromPath(tt.path), tt.path)
	}
}

func TestGuides(t *testing.T) {
	assert.Equal(t, []Guide{"Atm", "Trp53"}, Guides([]string{"Atm", " ", " Trp53 "}))
}
