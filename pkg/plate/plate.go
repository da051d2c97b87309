package plate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Guide is the name of a guide RNA, e.g. "Trp53".
type Guide string

// Sample is one well of the sequencing plate.
// ID is the well id used in output tables ("A1"),
// Sheet is the vendor sheet holding its reads ("Plate1-A1").
type Sample struct {
	ID    string
	Sheet string
}

func (s Sample) String() string {
	return s.ID
}

// Samples lists wells row1..rowN of plate in order.
func Samples(plateName, row string, n int) []Sample {
	var samples = make([]Sample, 0, n)
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("%s%d", row, i)
		samples = append(samples, Sample{
			ID:    id,
			Sheet: plateName + "-" + id,
		})
	}
	return samples
}

// GuideFromPath takes the guide from a vendor workbook name:
// the first space separated token of the base name.
func GuideFromPath(path string) Guide {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return Guide(fields[0])
}

// Guides converts names to Guide, dropping blanks.
func Guides(names []string) []Guide {
	var guides []Guide
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			guides = append(guides, Guide(name))
		}
	}
	return guides
}
