package loan

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const dateLayout = "2006-01-02"

// Excel serials outside this window are more likely plain numbers than dates.
const (
	minExcelSerial = 20000 // 1954-10-03
	maxExcelSerial = 80000 // 2119-01-10
)

var dateLayouts = []string{
	dateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-1-2",
	"2006.01.02",
	"2006.1.2",
	"2006. 1. 2",
	"2006/01/02",
	"2006/1/2",
	"20060102",
	"2006년 1월 2일",
	"01-02-06",
	"1/2/06",
	"01/02/2006",
}

// ParseAmount reads a money cell. Thousands separators, currency marks and
// surrounding spaces are ignored and "(1,000)" reads as -1000.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return decimal.Zero, false
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	s = strings.NewReplacer(",", "", "원", "", "₩", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

// ParseDate reads a date cell written in any of the layouts spreadsheets export,
// including Excel serial day numbers.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	candidate := strings.TrimSuffix(s, ".")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t, true
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial >= minExcelSerial && serial <= maxExcelSerial {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// coerceNumber turns a cell into a number cell, 0 when it is not numeric.
func coerceNumber(c Cell) Cell {
	return Number(c.Decimal())
}

// coerceDate turns a cell into a date cell, null when it is not a date.
func coerceDate(c Cell) Cell {
	switch c.Kind {
	case KindDate:
		return c
	case KindText:
		if t, ok := ParseDate(c.Text); ok {
			return Date(t)
		}
	case KindNumber:
		if t, ok := ParseDate(c.Num.String()); ok {
			return Date(t)
		}
	}
	return Null()
}
