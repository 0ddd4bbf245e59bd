package sheet

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads the first worksheet of an Excel workbook. Cell values are
// taken as the formatted strings excelize renders, which matches how the
// table is shown to the user.
func LoadXLSX(path string) (*Table, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no worksheets")
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read worksheet %q: %w", sheets[0], err)
	}

	return New(dropFirstColumn(rows)), nil
}
