package ledger

import "strings"

// Guest is one reservation record. RoomID is a weak reference into the room
// registry; it is not guaranteed to resolve. Dates are kept as the text they
// were entered or loaded with (normalized flows write 2006-01-02) and are
// parsed only where arithmetic needs them.
type Guest struct {
	Name     string
	RoomID   int
	CheckIn  string
	CheckOut string
}

// Ledger holds the active guest list. Single-threaded by design; no locking.
type Ledger struct {
	guests []Guest
}

func New() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Add(g Guest) {
	l.guests = append(l.guests, g)
}

// FindByName returns a pointer to the first guest whose name matches
// case-insensitively, so callers can edit the record in place.
func (l *Ledger) FindByName(name string) (*Guest, bool) {
	for i := range l.guests {
		if strings.EqualFold(l.guests[i].Name, name) {
			return &l.guests[i], true
		}
	}
	return nil, false
}

// Remove deletes the first entry structurally equal to g and reports whether
// one was found.
func (l *Ledger) Remove(g Guest) bool {
	for i := range l.guests {
		if l.guests[i] == g {
			l.guests = append(l.guests[:i], l.guests[i+1:]...)
			return true
		}
	}
	return false
}

// Where returns the guests matching pred, in ledger order.
func (l *Ledger) Where(pred func(Guest) bool) []Guest {
	var out []Guest
	for _, g := range l.guests {
		if pred(g) {
			out = append(out, g)
		}
	}
	return out
}

// All returns a copy of the active guest list.
func (l *Ledger) All() []Guest {
	out := make([]Guest, len(l.guests))
	copy(out, l.guests)
	return out
}

func (l *Ledger) Len() int {
	return len(l.guests)
}
