package amplicon

// Threshold is the minimum Pct a read needs to be kept.
var Threshold = 0.2

// vendor columns kept from each sheet
var ReadTitle = []string{
	"TargetSequence",
	"Reads",
	"Type",
	"Pct",
	"IndelLength",
}

// ReadTitle plus the derived column
var ClassifiedTitle = append(append([]string{}, ReadTitle...), "Classification")

// vendor read types
const (
	TypeWT                   = "WT"
	TypeInsertion            = "Insertion"
	TypeDeletion             = "Deletion"
	TypeInsertionAndDeletion = "Insertion and Deletion"
	TypeBaseChange           = "Base Change"
)

type Classification string

const (
	WT      Classification = "WT"
	InFrame Classification = "InFrame"
	FS      Classification = "FS"
)

// Classifications in column order.
var Classifications = []Classification{WT, InFrame, FS}
