package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Header is the column layout of catalog upload files.
var Header = []string{
	"name", "brand", "price", "display", "camera", "battery", "storage", "ram",
	"processor", "os", "features", "releaseDate", "colors", "availability", "url",
}

const (
	colName = iota
	colBrand
	colPrice
	colDisplay
	colCamera
	colBattery
	colStorage
	colRAM
	colProcessor
	colOS
	colFeatures
	colReleaseDate
	colColors
	colAvailability
	colURL
)

var (
	ErrInvalidFile   = errors.New("invalid catalog file")
	ErrInvalidHeader = errors.New("invalid catalog header")
)

// RowError describes a rejected row. Row numbers are 1-based and count the
// header line.
type RowError struct {
	Row     int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// ParseCSV reads a catalog upload. Bad rows are reported and skipped; a bad
// header fails the whole file.
func ParseCSV(r io.Reader) ([]entities.Phone, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return parseRows(rows)
}

// ParseExcel reads the first sheet of an .xlsx upload.
func ParseExcel(r io.Reader) ([]entities.Phone, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("%w: workbook has no sheets", ErrInvalidHeader)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return parseRows(rows)
}

// WriteCSVTemplate writes the header and one example row.
func WriteCSVTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	example := []string{
		"iPhone 15", "Apple", "299.900", "6.1-inch Super Retina XDR", "48MP + 12MP",
		"3349 mAh", "128GB", "6GB", "A16 Bionic", "iOS 17",
		"Dynamic Island,USB-C,Face ID", "2023-09-22", "Black,Blue,Pink", "true",
		"https://www.apple.com/iphone-15/",
	}
	if err := cw.Write(example); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func parseRows(rows [][]string) ([]entities.Phone, []RowError, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: file is empty", ErrInvalidHeader)
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, nil, err
	}

	phones := make([]entities.Phone, 0, len(rows)-1)
	var rowErrs []RowError
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		phone, err := parseRow(row)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i + 2, Message: err.Error()})
			continue
		}
		phones = append(phones, phone)
	}
	return phones, rowErrs, nil
}

func checkHeader(row []string) error {
	if len(row) < len(Header) {
		return fmt.Errorf("%w: expected %d columns, got %d", ErrInvalidHeader, len(Header), len(row))
	}
	for i, want := range Header {
		got := strings.TrimSpace(strings.TrimPrefix(row[i], "\ufeff"))
		if !strings.EqualFold(got, want) {
			return fmt.Errorf("%w: column %d is %q, expected %q", ErrInvalidHeader, i+1, got, want)
		}
	}
	return nil
}

func parseRow(row []string) (entities.Phone, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	name, brand := cell(colName), cell(colBrand)
	if name == "" || brand == "" {
		return entities.Phone{}, errors.New("name and brand are required")
	}

	var price *decimal.Decimal
	if raw := cell(colPrice); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			return entities.Phone{}, fmt.Errorf("invalid price %q", raw)
		}
		d = money.Round(d)
		price = &d
	}

	available, err := parseAvailability(cell(colAvailability))
	if err != nil {
		return entities.Phone{}, err
	}

	return entities.Phone{
		ID:    PhoneID(brand, name),
		Name:  name,
		Brand: brand,
		Price: price,
		Specs: entities.PhoneSpecs{
			Display:   cell(colDisplay),
			Camera:    cell(colCamera),
			Battery:   cell(colBattery),
			Storage:   cell(colStorage),
			RAM:       cell(colRAM),
			Processor: cell(colProcessor),
			OS:        cell(colOS),
		},
		Features:    splitList(cell(colFeatures)),
		ReleaseDate: cell(colReleaseDate),
		Colors:      splitList(cell(colColors)),
		Available:   available,
		SourceURL:   cell(colURL),
	}, nil
}

func parseAvailability(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "", "true", "yes", "1", "available", "in stock":
		return true, nil
	case "false", "no", "0", "unavailable", "out of stock":
		return false, nil
	default:
		return false, fmt.Errorf("invalid availability %q", s)
	}
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
