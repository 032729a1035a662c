package loan

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind tags the value held by a Cell.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindDate
)

// Cell is one table value. Numbers stay raw so views can format them.
type Cell struct {
	Kind Kind
	Text string
	Num  decimal.Decimal
	Time time.Time
}

func Null() Cell                    { return Cell{Kind: KindNull} }
func Text(s string) Cell            { return Cell{Kind: KindText, Text: s} }
func Number(d decimal.Decimal) Cell { return Cell{Kind: KindNumber, Num: d} }
func Int(n int64) Cell              { return Number(decimal.NewFromInt(n)) }
func Date(t time.Time) Cell         { return Cell{Kind: KindDate, Time: t} }

func (c Cell) IsNull() bool { return c.Kind == KindNull }

// String is the textual form used for substring search and CSV-like output.
func (c Cell) String() string {
	switch c.Kind {
	case KindText:
		return c.Text
	case KindNumber:
		return c.Num.String()
	case KindDate:
		return c.Time.Format(dateLayout)
	default:
		return ""
	}
}

// Decimal coerces the cell to a number, 0 when it cannot be read as one.
func (c Cell) Decimal() decimal.Decimal {
	switch c.Kind {
	case KindNumber:
		return c.Num
	case KindText:
		if d, ok := ParseAmount(c.Text); ok {
			return d
		}
	}
	return decimal.Zero
}

func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindNumber:
		return []byte(c.Num.String()), nil
	case KindText:
		return json.Marshal(c.Text)
	case KindDate:
		return json.Marshal(c.Time.Format(dateLayout))
	default:
		return []byte("null"), nil
	}
}

// Row maps a column label to its cell. Missing keys read as null.
type Row map[string]Cell

// Get returns the cell for col, null when absent.
func (r Row) Get(col string) Cell {
	if c, ok := r[col]; ok {
		return c
	}
	return Null()
}

// Table is an ordered set of named columns over a list of rows.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func NewTable(columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols, Rows: make([]Row, 0)}
}

func (t *Table) Len() int { return len(t.Rows) }

func (t *Table) HasColumn(col string) bool {
	for _, c := range t.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no rows or column slices with t.
func (t *Table) Clone() *Table {
	out := NewTable(t.Columns)
	out.Rows = make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		nr := make(Row, len(r))
		for k, v := range r {
			nr[k] = v
		}
		out.Rows[i] = nr
	}
	return out
}

// AddColumn appends col to the column list when it is not there yet.
func (t *Table) AddColumn(col string) {
	if !t.HasColumn(col) {
		t.Columns = append(t.Columns, col)
	}
}

// DropColumn removes col and its cells.
func (t *Table) DropColumn(col string) {
	cols := t.Columns[:0]
	for _, c := range t.Columns {
		if c != col {
			cols = append(cols, c)
		}
	}
	t.Columns = cols
	for _, r := range t.Rows {
		delete(r, col)
	}
}

// Select keeps the given columns, in the given order. Absent columns are skipped.
func (t *Table) Select(cols ...string) *Table {
	keep := make([]string, 0, len(cols))
	for _, c := range cols {
		if t.HasColumn(c) {
			keep = append(keep, c)
		}
	}
	out := NewTable(keep)
	for _, r := range t.Rows {
		nr := make(Row, len(keep))
		for _, c := range keep {
			if v, ok := r[c]; ok {
				nr[c] = v
			}
		}
		out.Rows = append(out.Rows, nr)
	}
	return out
}

// Filter keeps the rows where any column's string form contains text.
// Matching is case-sensitive; an empty text keeps every row.
func (t *Table) Filter(text string) *Table {
	out := NewTable(t.Columns)
	for _, r := range t.Rows {
		if text == "" || rowContains(t.Columns, r, text) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

func rowContains(cols []string, r Row, text string) bool {
	for _, c := range cols {
		if strings.Contains(r.Get(c).String(), text) {
			return true
		}
	}
	return false
}

// Group is one bucket of a GroupSum.
type Group struct {
	Key Cell            `json:"key"`
	Sum decimal.Decimal `json:"sum"`
}

// GroupSum sums value per distinct by, in first-seen order. Rows with a null key
// are left out.
func (t *Table) GroupSum(by, value string) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)
	for _, r := range t.Rows {
		key := r.Get(by)
		if key.IsNull() {
			continue
		}
		k := key.String()
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: key, Sum: decimal.Zero})
		}
		groups[i].Sum = groups[i].Sum.Add(r.Get(value).Decimal())
	}
	return groups
}

// ValueCount is one bucket of ValueCounts.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ValueCounts counts rows per distinct value of col, most frequent first.
// Ties keep first-seen order; null cells are not counted.
func (t *Table) ValueCounts(col string) []ValueCount {
	index := make(map[string]int)
	counts := make([]ValueCount, 0)
	for _, r := range t.Rows {
		c := r.Get(col)
		if c.IsNull() {
			continue
		}
		v := c.String()
		i, ok := index[v]
		if !ok {
			i = len(counts)
			index[v] = i
			counts = append(counts, ValueCount{Value: v})
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Sum adds up col, reading non-numeric cells as 0.
func (t *Table) Sum(col string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range t.Rows {
		total = total.Add(r.Get(col).Decimal())
	}
	return total
}

// Mean is the plain average of col over all rows, 0 for an empty table.
func (t *Table) Mean(col string) decimal.Decimal {
	if len(t.Rows) == 0 {
		return decimal.Zero
	}
	return t.Sum(col).Div(decimal.NewFromInt(int64(len(t.Rows))))
}
