package loan

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFile           = errors.New("file has no header row")
)

// LoadError reports an upload that could not be turned into a table. The caller
// gets no table at all, never a partial one.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// FileExt returns the lower-cased extension of a file name.
func FileExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// Supported reports whether Load knows how to parse files named like name.
func Supported(name string) bool {
	switch FileExt(name) {
	case ".csv", ".xlsx", ".xlsm", ".xls":
		return true
	}
	return false
}

// Load parses an uploaded file into a normalized table. The parser is chosen by
// the extension of name.
func Load(r io.Reader, name string) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{File: name, Err: fmt.Errorf("failed to read file: %w", err)}
	}
	return LoadBytes(data, name)
}

// LoadBytes is Load over an in-memory payload.
func LoadBytes(data []byte, name string) (tbl *Table, err error) {
	// the legacy xls reader panics on some corrupt payloads
	defer func() {
		if rec := recover(); rec != nil {
			tbl = nil
			err = &LoadError{File: name, Err: fmt.Errorf("corrupt file: %v", rec)}
		}
	}()

	rows, err := readRows(data, FileExt(name))
	if err != nil {
		return nil, &LoadError{File: name, Err: err}
	}
	tbl, err = buildTable(rows)
	if err != nil {
		return nil, &LoadError{File: name, Err: err}
	}
	return tbl, nil
}

// RawHeaders returns the header row of a payload as written in the file,
// before any normalization.
func RawHeaders(data []byte, name string) (headers []string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			headers = nil
			err = &LoadError{File: name, Err: fmt.Errorf("corrupt file: %v", rec)}
		}
	}()

	rows, err := readRows(data, FileExt(name))
	if err != nil {
		return nil, &LoadError{File: name, Err: err}
	}
	for _, row := range rows {
		if !isEmptyRow(row) {
			return row, nil
		}
	}
	return nil, &LoadError{File: name, Err: ErrEmptyFile}
}

func readRows(data []byte, ext string) ([][]string, error) {
	switch ext {
	case ".csv":
		return readCSV(data)
	case ".xlsx", ".xlsm":
		return readXLSX(data)
	case ".xls":
		return readXLS(data)
	default:
		return nil, ErrUnsupportedFileType
	}
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF"))

	var src io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		// Korean Excel writes CSV in EUC-KR (CP949) unless told otherwise
		src = transform.NewReader(src, korean.EUCKR.NewDecoder())
	}

	r := csv.NewReader(src)
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

// sniffDelimiter looks at the header line only; data cells may legitimately
// contain semicolons or tabs.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	switch {
	case bytes.Contains(line, []byte(",")):
		return ','
	case bytes.Contains(line, []byte("\t")):
		return '\t'
	case bytes.Contains(line, []byte(";")):
		return ';'
	}
	return ','
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("no worksheet found")
	}
	// raw values keep full precision on amounts; dates come back as serials
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls workbook: %w", err)
	}
	if wb.NumSheets() == 0 {
		return nil, errors.New("no worksheet found")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, errors.New("no worksheet found")
	}

	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		vals := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			vals[j] = row.Col(j)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// buildTable turns raw rows into a table: the first non-empty row is the header,
// blank rows are dropped, and 지급일 is parsed with 지급연도 derived from it.
func buildTable(rows [][]string) (*Table, error) {
	start := -1
	width := 0
	for i, row := range rows {
		if start < 0 && !isEmptyRow(row) {
			start = i
		}
		if start >= 0 && len(row) > width {
			width = len(row)
		}
	}
	if start < 0 {
		return nil, ErrEmptyFile
	}

	raw := make([]string, width)
	for i := range raw {
		if i < len(rows[start]) && strings.TrimSpace(rows[start][i]) != "" {
			raw[i] = rows[start][i]
		} else {
			raw[i] = fmt.Sprintf("Unnamed: %d", i)
		}
	}
	tbl := NewTable(NormalizeHeaders(raw))

	for _, row := range rows[start+1:] {
		if isEmptyRow(row) {
			continue
		}
		r := make(Row, width)
		for i, col := range tbl.Columns {
			if i < len(row) {
				if v := strings.TrimSpace(row[i]); v != "" {
					r[col] = Text(v)
					continue
				}
			}
			r[col] = Null()
		}
		tbl.Rows = append(tbl.Rows, r)
	}

	if tbl.HasColumn(string(DisbursementDate)) {
		deriveDisbursementYear(tbl)
	}
	return tbl, nil
}

func deriveDisbursementYear(tbl *Table) {
	date, year := string(DisbursementDate), string(DisbursementYear)
	tbl.AddColumn(year)
	for _, r := range tbl.Rows {
		d := coerceDate(r.Get(date))
		r[date] = d
		if d.IsNull() {
			r[year] = Null()
		} else {
			r[year] = Int(int64(d.Time.Year()))
		}
	}
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
