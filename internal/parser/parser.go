// Package parser reads delimited transaction exports into model.Transaction
// values. The input schema is a CSV file with a required header row:
//
//	date,hour,product_id,staff_id,volume,value
//
// Columns are located by header name, so any column order is accepted as
// long as all six named columns are present.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/monieshop/salesight/internal/model"
)

// MalformedPolicy selects what happens when a row fails validation.
type MalformedPolicy string

const (
	// PolicySkip drops malformed rows, counting and logging each one.
	PolicySkip MalformedPolicy = "skip"

	// PolicyAbort fails the whole parse on the first malformed row.
	PolicyAbort MalformedPolicy = "abort"
)

// Required column names.
const (
	colDate    = "date"
	colHour    = "hour"
	colProduct = "product_id"
	colStaff   = "staff_id"
	colVolume  = "volume"
	colValue   = "value"
)

const hourMax = 23

var (
	// ErrMissingColumn indicates the header row lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptyInput indicates the input has no header row at all.
	ErrEmptyInput = errors.New("empty input: no header row")

	// ErrMalformedRow is the base error for rows that fail validation
	// under the abort policy.
	ErrMalformedRow = errors.New("malformed row")
)

// Result is the outcome of parsing one input source.
type Result struct {
	// Transactions holds every row that parsed and validated cleanly,
	// in input order.
	Transactions []model.Transaction

	// Skipped is the number of malformed rows dropped under PolicySkip.
	// Always zero under PolicyAbort.
	Skipped int
}

// Parser converts raw CSV rows into validated transactions.
type Parser struct {
	policy MalformedPolicy
	logger *slog.Logger
}

// New creates a Parser with the given malformed-row policy.
// A nil logger falls back to slog.Default.
func New(policy MalformedPolicy, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}

	return &Parser{policy: policy, logger: logger}
}

// ParseFile opens path, parses it fully, and closes it on all exit paths.
func (p *Parser) ParseFile(path string) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	result, err := p.Parse(file)
	if err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return result, nil
}

// Parse reads all rows from r. The reader is consumed fully; closing it
// remains the caller's responsibility.
func (p *Parser) Parse(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // row width is validated per row.
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Result{}, ErrEmptyInput
	}

	if err != nil {
		return Result{}, fmt.Errorf("read header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return Result{}, err
	}

	var result Result

	for line := 2; ; line++ {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			// csv.Reader errors (bare quotes etc.) are malformed rows,
			// not I/O failures; apply the same policy.
			skipErr := p.reject(&result, line, readErr)
			if skipErr != nil {
				return Result{}, skipErr
			}

			continue
		}

		tx, rowErr := parseRow(row, columns)
		if rowErr != nil {
			skipErr := p.reject(&result, line, rowErr)
			if skipErr != nil {
				return Result{}, skipErr
			}

			continue
		}

		result.Transactions = append(result.Transactions, tx)
	}

	return result, nil
}

// reject applies the malformed-row policy to one bad row.
func (p *Parser) reject(result *Result, line int, cause error) error {
	if p.policy == PolicyAbort {
		return fmt.Errorf("%w at line %d: %v", ErrMalformedRow, line, cause)
	}

	result.Skipped++
	p.logger.Debug("skipping malformed row", "line", line, "reason", cause.Error())

	return nil
}

// columnIndex maps each required column name to its position in the header.
type columnIndex map[string]int

func mapColumns(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}

	index := make(columnIndex, 6)

	for _, required := range []string{colDate, colHour, colProduct, colStaff, colVolume, colValue} {
		pos, ok := positions[required]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}

		index[required] = pos
	}

	return index, nil
}

func parseRow(row []string, columns columnIndex) (model.Transaction, error) {
	fields, err := extractFields(row, columns)
	if err != nil {
		return model.Transaction{}, err
	}

	date, err := model.ParseDate(fields[colDate])
	if err != nil {
		return model.Transaction{}, err
	}

	hour, err := strconv.Atoi(fields[colHour])
	if err != nil || hour < 0 || hour > hourMax {
		return model.Transaction{}, fmt.Errorf("hour out of range: %q", fields[colHour])
	}

	if fields[colProduct] == "" {
		return model.Transaction{}, errors.New("empty product_id")
	}

	if fields[colStaff] == "" {
		return model.Transaction{}, errors.New("empty staff_id")
	}

	volume, err := strconv.ParseInt(fields[colVolume], 10, 64)
	if err != nil || volume <= 0 {
		return model.Transaction{}, fmt.Errorf("volume must be a positive integer: %q", fields[colVolume])
	}

	value, err := decimal.NewFromString(fields[colValue])
	if err != nil || value.IsNegative() {
		return model.Transaction{}, fmt.Errorf("value must be a non-negative number: %q", fields[colValue])
	}

	return model.Transaction{
		Date:    date,
		Hour:    hour,
		Product: fields[colProduct],
		Staff:   fields[colStaff],
		Volume:  volume,
		Value:   value,
	}, nil
}

// extractFields pulls the six required fields out of a row by column index.
func extractFields(row []string, columns columnIndex) (map[string]string, error) {
	fields := make(map[string]string, len(columns))

	for name, idx := range columns {
		if idx >= len(row) {
			return nil, fmt.Errorf("row has %d fields, %s missing", len(row), name)
		}

		fields[name] = row[idx]
	}

	return fields, nil
}
