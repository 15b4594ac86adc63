// Package ingest turns a raw statement export into normalized, already
// categorized transactions.
//
// The expected format is a 3-line preamble (account name, account number,
// date range) followed by a CSV header row and data rows with separate
// "Amount Debit" and "Amount Credit" columns.
package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kellymillerdev/ai-bank/internal/category"
	"github.com/kellymillerdev/ai-bank/internal/domain"
)

// ErrBadFormat marks uploads that cannot be read at all: unreadable
// stream, missing preamble, or missing header row. Per-row problems are
// tolerated and never produce this error.
var ErrBadFormat = errors.New("malformed statement")

const preambleLines = 3

// Column names resolved from the header row.
const (
	colDate        = "Date"
	colDescription = "Description"
	colAmountDebit = "Amount Debit"
	colAmountCred  = "Amount Credit"
	colBalance     = "Balance"
	colMemo        = "Memo"
)

// Parser reads statement exports. A Parser is stateless apart from its
// logger and may be shared.
type Parser struct {
	log zerolog.Logger
}

// NewParser creates a statement parser.
func NewParser(log zerolog.Logger) *Parser {
	return &Parser{log: log}
}

// Parse reads the full stream and returns transactions in source row
// order. Rows that fail to parse are dropped individually; only failures
// before the first data row abort the whole run.
func (p *Parser) Parse(r io.Reader) ([]domain.Transaction, error) {
	br := bufio.NewReader(r)

	// The preamble carries account name, account number and date range.
	// None of it feeds the transaction list.
	for i := 0; i < preambleLines; i++ {
		line, err := br.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return nil, fmt.Errorf("Parse: reading preamble line %d: %w", i+1, ErrBadFormat)
		}
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("Parse: reading header row: %w", ErrBadFormat)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var txs []domain.Transaction
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			p.log.Warn().Err(err).Int("row", row).Msg("Skipping unreadable row")
			continue
		}

		tx, err := p.parseRow(cols, record)
		if err != nil {
			if !errors.Is(err, errRowDropped) {
				p.log.Warn().Err(err).Int("row", row).Msg("Skipping malformed row")
			}
			continue
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

// errRowDropped marks rows dropped without logging, matching the silent
// balance-gate behavior of the source format.
var errRowDropped = errors.New("row dropped")

func (p *Parser) parseRow(cols map[string]int, record []string) (domain.Transaction, error) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	// At most one of the two amount columns is populated. A populated
	// credit column overrides the debit value.
	var amount float64
	if debit := strings.TrimSpace(field(colAmountDebit)); debit != "" {
		v, err := ParseCurrency(debit)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("debit field: %w", err)
		}
		amount = v
	}
	if credit := strings.TrimSpace(field(colAmountCred)); credit != "" {
		v, err := ParseCurrency(credit)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("credit field: %w", err)
		}
		amount = v
	}

	description := strings.TrimSpace(strings.ReplaceAll(field(colDescription), `"`, ""))

	balance, err := ParseCurrency(strings.ReplaceAll(strings.TrimSpace(field(colBalance)), `"`, ""))
	if err != nil {
		return domain.Transaction{}, errRowDropped
	}

	date, err := ParseDate(field(colDate))
	if err != nil {
		return domain.Transaction{}, err
	}

	tx := domain.NewTransaction(date, description, amount, balance, category.Categorize(description, amount))
	tx.Memo = strings.TrimSpace(field(colMemo))
	return tx, nil
}
