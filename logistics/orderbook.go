// SPDX-License-Identifier: MIT

package logistics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

var (
	// ErrOrderNotFound is returned by Lookup for an unknown order ID.
	ErrOrderNotFound = errors.New("logistics: order not found")

	// ErrBadOrderFile is returned when the CSV header lacks a required column
	// or a row cannot be read.
	ErrBadOrderFile = errors.New("logistics: malformed order file")
)

// CSV header names.
const (
	ColOrderID  = "Order ID"
	ColCustomer = "Customer Name"
	ColCity     = "City"
	ColState    = "State"
	ColProduct  = "Product Name"
)

var requiredColumns = []string{ColOrderID, ColCustomer, ColCity}

// OrderBook is an immutable index of orders by ID.
type OrderBook struct {
	orders     map[string]Order
	duplicates int
}

// LoadOrderBook reads a customer CSV with a header row. Columns are matched by
// name in any order; every field is trimmed of surrounding whitespace. When an
// order ID repeats, the first row wins.
//
// Errors: ErrBadOrderFile for a missing column or unreadable row, ErrInvalidOrder
// (with the line number) for a row that fails Order.Validate.
func LoadOrderBook(r io.Reader) (*OrderBook, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrBadOrderFile, err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrBadOrderFile, col)
		}
	}

	field := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	book := &OrderBook{orders: make(map[string]Order)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadOrderFile, err)
		}
		line, _ := cr.FieldPos(0)

		o := Order{
			OrderID:      field(rec, ColOrderID),
			CustomerName: field(rec, ColCustomer),
			City:         field(rec, ColCity),
			State:        field(rec, ColState),
			Product:      field(rec, ColProduct),
		}
		if err := o.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, dup := book.orders[o.OrderID]; dup {
			book.duplicates++
			continue
		}
		book.orders[o.OrderID] = o
	}

	return book, nil
}

// LoadOrderBookFile opens path and calls LoadOrderBook.
func LoadOrderBookFile(path string) (*OrderBook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("logistics: open orders: %w", err)
	}
	defer f.Close()

	book, err := LoadOrderBook(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return book, nil
}

// Lookup returns the order with the given ID (surrounding whitespace ignored).
func (b *OrderBook) Lookup(id string) (Order, error) {
	o, ok := b.orders[strings.TrimSpace(id)]
	if !ok {
		return Order{}, fmt.Errorf("%w: %q", ErrOrderNotFound, id)
	}

	return o, nil
}

// Len returns the number of distinct orders.
func (b *OrderBook) Len() int { return len(b.orders) }

// Duplicates returns how many rows were dropped for repeating an order ID.
func (b *OrderBook) Duplicates() int { return b.duplicates }

// IDs returns all order IDs sorted lexicographically.
func (b *OrderBook) IDs() []string {
	ids := make([]string, 0, len(b.orders))
	for id := range b.orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
