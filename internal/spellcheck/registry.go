package spellcheck

import (
	"fmt"
	"io"
	"slices"

	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
	"git.home.luguber.info/inful/docspell/internal/util/sets"
)

// Order is the order in which unknown words are written.
type Order string

const (
	OrderSorted    Order = "sorted"
	OrderInsertion Order = "insertion"
)

// ParseOrder validates an order name. The empty string means OrderSorted.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", OrderSorted:
		return OrderSorted, nil
	case OrderInsertion:
		return OrderInsertion, nil
	default:
		return "", errors.ConfigError("invalid unknown word order").
			WithContext("order", s).
			WithContext("valid", "sorted, insertion").
			Build()
	}
}

// UnknownWordRegistry collects the distinct unknown words of a run.
// Words are compared case-sensitively.
type UnknownWordRegistry struct {
	seen  sets.Set[string]
	words []string
}

// NewUnknownWordRegistry returns an empty registry.
func NewUnknownWordRegistry() *UnknownWordRegistry {
	return &UnknownWordRegistry{seen: sets.New[string]()}
}

// Add records word and reports whether it was new.
func (r *UnknownWordRegistry) Add(word string) bool {
	if !r.seen.AddIfAbsent(word) {
		return false
	}
	r.words = append(r.words, word)
	return true
}

// Has reports whether word was recorded.
func (r *UnknownWordRegistry) Has(word string) bool { return r.seen.Has(word) }

// Len returns the number of distinct words.
func (r *UnknownWordRegistry) Len() int { return len(r.words) }

// All returns the recorded words in the given order.
func (r *UnknownWordRegistry) All(order Order) []string {
	if order == OrderInsertion {
		return slices.Clone(r.words)
	}
	return sets.Sorted(r.seen)
}

// WriteTo writes one word per line in the given order.
func (r *UnknownWordRegistry) WriteTo(w io.Writer, order Order) error {
	for _, word := range r.All(order) {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return err
		}
	}
	return nil
}
