package xlsxio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSaveAndLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.xlsx")
	title := []string{"Name", "Count", "Ratio", "Note"}
	rows := [][]any{
		{"A1", 100, 33.333333333333336, "x"},
		{"A2", 7, 0.2},
		{},
	}
	require.NoError(t, SaveTable(path, title, rows))

	data, err := LoadSheet(path, "")
	require.NoError(t, err)
	require.Len(t, data, 2)
	assert.Equal(t, map[string]string{"Name": "A1", "Count": "100", "Ratio": "33.333333333333336", "Note": "x"}, data[0])
	assert.Equal(t, map[string]string{"Name": "A2", "Count": "7", "Ratio": "0.2", "Note": ""}, data[1])

	data, err = LoadSheet(path, DefaultSheet)
	require.NoError(t, err)
	assert.Len(t, data, 2)
}

func TestLoadSheetMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.xlsx")
	require.NoError(t, SaveTable(path, []string{"A"}, nil))

	_, err := LoadSheet(path, "Plate1-A1")
	assert.Error(t, err)

	_, err = LoadSheet(filepath.Join(t.TempDir(), "none.xlsx"), "")
	assert.Error(t, err)
}

func TestWriteSliceSheetNewSheet(t *testing.T) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	require.NoError(t, WriteSliceSheet(xlsx, "Plate1-A1", []string{"Reads"}, [][]any{{1}, {2}}))
	data, err := GetRows2MapArray(xlsx, "Plate1-A1")
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{{"Reads": "1"}, {"Reads": "2"}}, data)
	assert.Equal(t, "B3", CoordinatesToCellName(2, 3))
}
