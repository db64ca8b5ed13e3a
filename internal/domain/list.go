package domain

import (
	"fmt"
	"slices"
	"time"
)

// Orderable is an entry embedded in a category's ordered array.
// Implementations use value receivers; the With* methods return modified copies.
type Orderable[E any] interface {
	EntryID() string
	EntryOrder() int
	WithID(id string) E
	WithOrder(order int) E
}

// Category is a titled, owner-scoped container of ordered entries.
// After every successful mutation Entries[i].order == i.
type Category[E Orderable[E]] struct {
	ID        string
	OwnerID   string
	Title     string
	Entries   []E
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindEntry returns the entry with the given id and its index, or -1.
func (c *Category[E]) FindEntry(id string) (E, int) {
	i := IndexOf(c.Entries, id)
	if i < 0 {
		var zero E
		return zero, -1
	}
	return c.Entries[i], i
}

// TodoEntry is a to-do or to-buy list item.
type TodoEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Order     int    `json:"order"`
}

func (e TodoEntry) EntryID() string { return e.ID }
func (e TodoEntry) EntryOrder() int { return e.Order }

func (e TodoEntry) WithID(id string) TodoEntry {
	e.ID = id
	return e
}

func (e TodoEntry) WithOrder(order int) TodoEntry {
	e.Order = order
	return e
}

// InventoryEntry is a counted item in a personal inventory.
type InventoryEntry struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
	Order  int    `json:"order"`
}

func (e InventoryEntry) EntryID() string { return e.ID }
func (e InventoryEntry) EntryOrder() int { return e.Order }

func (e InventoryEntry) WithID(id string) InventoryEntry {
	e.ID = id
	return e
}

func (e InventoryEntry) WithOrder(order int) InventoryEntry {
	e.Order = order
	return e
}

// SortByOrder sorts entries by their stored order, keeping ties stable.
func SortByOrder[E Orderable[E]](entries []E) {
	slices.SortStableFunc(entries, func(a, b E) int {
		return a.EntryOrder() - b.EntryOrder()
	})
}

// Renumber returns a copy of entries with order set to the slice index.
func Renumber[E Orderable[E]](entries []E) []E {
	out := make([]E, len(entries))
	for i, e := range entries {
		out[i] = e.WithOrder(i)
	}
	return out
}

// IndexOf returns the index of the entry with the given id, or -1.
func IndexOf[E Orderable[E]](entries []E, id string) int {
	return slices.IndexFunc(entries, func(e E) bool { return e.EntryID() == id })
}

// MoveEntry moves the entry at index from to index to and renumbers the result.
// The input slice is not modified.
func MoveEntry[E Orderable[E]](entries []E, from, to int) ([]E, error) {
	n := len(entries)
	if from < 0 || from >= n {
		return nil, NewValidationError("from", fmt.Sprintf("out of range [0, %d)", n))
	}
	if to < 0 || to >= n {
		return nil, NewValidationError("to", fmt.Sprintf("out of range [0, %d)", n))
	}

	out := slices.Clone(entries)
	moved := out[from]
	out = slices.Delete(out, from, from+1)
	out = slices.Insert(out, to, moved)
	return Renumber(out), nil
}

// ApplyOrder returns the entries rearranged to follow ids.
// ids must name every entry exactly once: a duplicate is a validation error,
// a missing or unknown id means the caller's view is stale (ErrConflict).
func ApplyOrder[E Orderable[E]](entries []E, ids []string) ([]E, error) {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, NewValidationError("entry_ids", "duplicate id "+id)
		}
		seen[id] = struct{}{}
	}
	if len(ids) != len(entries) {
		return nil, fmt.Errorf("reorder: %d ids for %d entries: %w", len(ids), len(entries), ErrConflict)
	}

	byID := make(map[string]E, len(entries))
	for _, e := range entries {
		byID[e.EntryID()] = e
	}

	out := make([]E, 0, len(ids))
	for _, id := range ids {
		e, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("reorder: unknown entry %s: %w", id, ErrConflict)
		}
		out = append(out, e)
	}
	return Renumber(out), nil
}
