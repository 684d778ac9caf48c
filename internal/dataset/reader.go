package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"sales-analytics/pkg/utils"
)

// ErrUnsupportedFormat is returned for filename extensions we cannot read.
var ErrUnsupportedFormat = errors.New("unsupported file format, use CSV, Excel or JSON")

// ErrEmptyDataset is returned when a file parses but holds no usable table.
var ErrEmptyDataset = errors.New("file contains no data rows")

// Read parses an uploaded file into a Dataset. The format is picked by
// filename extension, exactly like the upload form advertises.
func Read(filename string, r io.Reader) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx", ".xls":
		return ReadExcel(r)
	case ".json":
		return ReadJSON(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ------------------- CSV -------------------

// ReadCSV parses CSV with a header row. Header names are cleaned the
// same way cells are trimmed: surrounding whitespace and stray quotes
// removed.
func ReadCSV(r io.Reader) (*Dataset, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	headers, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	ds := &Dataset{Columns: make([]string, len(headers))}
	for i, h := range headers {
		ds.Columns[i] = CleanColumnName(h)
	}

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("CSV read error: %w", err)
		}

		row := make(Row, len(ds.Columns))
		for i, col := range ds.Columns {
			if i < len(record) {
				row[col] = utils.ParseValue(record[i])
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	if len(ds.Columns) == 0 || len(ds.Rows) == 0 {
		return nil, ErrEmptyDataset
	}
	return ds, nil
}

// ------------------- Excel -------------------

// ReadExcel parses the first sheet of an XLSX workbook. Legacy .xls
// files fail at open and surface as a parse error to the uploader.
func ReadExcel(r io.Reader) (*Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyDataset
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptyDataset
	}

	ds := &Dataset{Columns: make([]string, len(rows[0]))}
	for i, h := range rows[0] {
		ds.Columns[i] = CleanColumnName(h)
	}

	for _, record := range rows[1:] {
		row := make(Row, len(ds.Columns))
		for i, col := range ds.Columns {
			if i < len(record) {
				row[col] = utils.ParseValue(record[i])
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	if len(ds.Columns) == 0 {
		return nil, ErrEmptyDataset
	}
	return ds, nil
}

// ------------------- JSON -------------------

// ReadJSON parses a JSON array of flat objects. Column order follows the
// key order of the first object as written in the file; keys that only
// appear in later objects are appended in sorted order so the table
// layout stays deterministic.
func ReadJSON(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON body: %w", err)
	}

	var records []map[string]interface{}
	if err := json.Unmarshal(raw, &records); err != nil {
		// tolerate a single top-level object
		var single map[string]interface{}
		if err2 := json.Unmarshal(raw, &single); err2 != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
		records = []map[string]interface{}{single}
	}
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	columns, err := firstObjectKeys(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	known := make(map[string]bool, len(columns))
	for i, c := range columns {
		columns[i] = CleanColumnName(c)
		known[columns[i]] = true
	}

	// collect stragglers from later records
	var extra []string
	ds := &Dataset{Columns: columns}
	for _, rec := range records {
		row := make(Row, len(rec))
		for k, v := range rec {
			col := CleanColumnName(k)
			if !known[col] {
				known[col] = true
				extra = append(extra, col)
			}
			row[col] = normalizeJSONValue(v)
		}
		ds.Rows = append(ds.Rows, row)
	}
	sort.Strings(extra)
	ds.Columns = append(ds.Columns, extra...)

	if len(ds.Columns) == 0 {
		return nil, ErrEmptyDataset
	}
	return ds, nil
}

// firstObjectKeys walks the token stream of the first object in the
// payload and returns its keys in file order. encoding/json maps lose
// key order, and role detection ties break on column order.
func firstObjectKeys(raw []byte) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()

	// skip an optional leading '['
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); ok && d == '[' {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected JSON key token %v", keyTok)
		}
		keys = append(keys, key)

		// skip the value, whatever shape it has
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// normalizeJSONValue aligns JSON scalar types with CSV cell parsing:
// whole floats become ints, nested structures flatten to strings.
func normalizeJSONValue(v interface{}) interface{} {
	switch val := v.(type) {
	case float64:
		if val == float64(int(val)) {
			return int(val)
		}
		return val
	case string:
		return utils.ParseValue(val)
	case bool, nil:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// CleanColumnName trims whitespace and strips stray quotes from a
// header cell.
func CleanColumnName(name string) string {
	clean := strings.TrimSpace(name)
	clean = strings.ReplaceAll(clean, `"`, "")
	return clean
}
