package desk

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"frontdesk/hotel/ledger"
	"frontdesk/hotel/registry"
	"frontdesk/hotel/store"
)

// DateLayout is the format the validated entry paths write dates with.
const DateLayout = "2006-01-02"

const (
	depositRate = 0.20
	balanceRate = 0.80
)

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrRoomUnavailable     = errors.New("room is not available for reservation")
	ErrRoomNotReserved     = errors.New("guest's room is not reserved")
	ErrRoomNotOccupied     = errors.New("guest's room is not occupied")
	ErrRoomOccupied        = errors.New("room is already occupied")
	ErrInvalidStay         = errors.New("check-out date must be later than check-in date")
	ErrInsufficientPayment = errors.New("payment is less than the remaining balance")
)

// Desk is the single session object owning the room registry, the active
// guest ledger and the backing store. Every mutating operation flushes the
// ledger before returning; a flush failure is reported to the caller but the
// in-memory change is kept (there is no rollback).
type Desk struct {
	reg      *registry.Registry
	ledger   *ledger.Ledger
	store    *store.Store
	validate *validator.Validate
}

// Open seeds the room catalog and loads the active ledger, re-applying the
// room statuses saved with the guest lines.
func Open(st *store.Store) (*Desk, error) {
	reg := registry.Seed()
	led, err := st.LoadActive(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to load guest ledger: %w", err)
	}
	return &Desk{
		reg:      reg,
		ledger:   led,
		store:    st,
		validate: validator.New(),
	}, nil
}

// ReservationRequest carries the validated input for a new reservation.
type ReservationRequest struct {
	GuestName string `validate:"required"`
	RoomID    int    `validate:"gt=0"`
	CheckIn   string `validate:"required,datetime=2006-01-02"`
	CheckOut  string `validate:"required,datetime=2006-01-02"`
}

// Quote is the price breakdown presented before a reservation is confirmed.
type Quote struct {
	Room    *registry.Room
	Nights  int
	Total   float64
	Deposit float64
}

// Receipt summarizes a completed checkout.
type Receipt struct {
	GuestName string
	RoomID    int
	RoomType  string
	CheckIn   string
	CheckOut  string
	Nights    int
	Total     float64
	Balance   float64
	Method    string
}

// QuoteStay prices a stay in the given room. The room must exist and be
// available, and checkOut must be strictly after checkIn.
func (d *Desk) QuoteStay(roomID int, checkIn, checkOut time.Time) (Quote, error) {
	room, ok := d.reg.FindByID(roomID)
	if !ok {
		return Quote{}, ErrRoomNotFound
	}
	if room.Status != registry.StatusAvailable {
		return Quote{}, ErrRoomUnavailable
	}
	if !checkOut.After(checkIn) {
		return Quote{}, ErrInvalidStay
	}

	nights := nightsBetween(checkIn, checkOut)
	total := room.Price * float64(nights)
	return Quote{
		Room:    room,
		Nights:  nights,
		Total:   total,
		Deposit: total * depositRate,
	}, nil
}

// Reserve creates the guest record, marks the room reserved and flushes the
// ledger. Deposit confirmation is owned by the caller; by the time Reserve is
// called the deposit is taken as agreed.
func (d *Desk) Reserve(req ReservationRequest) (Quote, error) {
	if err := d.validate.Struct(req); err != nil {
		return Quote{}, fmt.Errorf("invalid reservation: %w", err)
	}
	checkIn, err := time.Parse(DateLayout, req.CheckIn)
	if err != nil {
		return Quote{}, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := time.Parse(DateLayout, req.CheckOut)
	if err != nil {
		return Quote{}, fmt.Errorf("invalid check-out date: %w", err)
	}

	quote, err := d.QuoteStay(req.RoomID, checkIn, checkOut)
	if err != nil {
		return Quote{}, err
	}

	quote.Room.Status = registry.StatusReserved
	d.ledger.Add(ledger.Guest{
		Name:     req.GuestName,
		RoomID:   req.RoomID,
		CheckIn:  checkIn.Format(DateLayout),
		CheckOut: checkOut.Format(DateLayout),
	})
	return quote, d.flush()
}

// CheckIn moves a reserved guest's room to Occupied. Guests are looked up by
// name, not room number.
func (d *Desk) CheckIn(name string) (ledger.Guest, error) {
	guest, ok := d.ledger.FindByName(name)
	if !ok {
		return ledger.Guest{}, ErrGuestNotFound
	}
	room, ok := d.reg.FindByID(guest.RoomID)
	if !ok {
		return ledger.Guest{}, ErrRoomNotFound
	}
	if room.Status != registry.StatusReserved {
		return ledger.Guest{}, ErrRoomNotReserved
	}

	room.Status = registry.StatusOccupied
	return *guest, d.flush()
}

// CheckOut settles the remaining balance, returns the room to Available,
// archives the stay and removes the guest from the active ledger. The payment
// method is recorded on the receipt, not validated. Payment below the balance
// is rejected with ErrInsufficientPayment and nothing changes.
func (d *Desk) CheckOut(name, method string, payment float64) (Receipt, error) {
	guest, ok := d.ledger.FindByName(name)
	if !ok {
		return Receipt{}, ErrGuestNotFound
	}
	room, ok := d.reg.FindByID(guest.RoomID)
	if !ok {
		return Receipt{}, ErrRoomNotFound
	}
	if room.Status != registry.StatusOccupied {
		return Receipt{}, ErrRoomNotOccupied
	}

	checkIn, err := parseDate(guest.CheckIn)
	if err != nil {
		return Receipt{}, fmt.Errorf("invalid check-in date on record: %w", err)
	}
	checkOut, err := parseDate(guest.CheckOut)
	if err != nil {
		return Receipt{}, fmt.Errorf("invalid check-out date on record: %w", err)
	}
	if checkOut.Before(checkIn) {
		return Receipt{}, ErrInvalidStay
	}

	nights := nightsBetween(checkIn, checkOut)
	total := room.Price * float64(nights)
	balance := total * balanceRate
	if payment < balance {
		return Receipt{}, ErrInsufficientPayment
	}

	receipt := Receipt{
		GuestName: guest.Name,
		RoomID:    room.ID,
		RoomType:  room.Type,
		CheckIn:   checkIn.Format(DateLayout),
		CheckOut:  checkOut.Format(DateLayout),
		Nights:    nights,
		Total:     total,
		Balance:   balance,
		Method:    method,
	}

	room.Status = registry.StatusAvailable
	departed := *guest
	d.ledger.Remove(departed)

	// Archive failure is not fatal; the checkout still completes and is
	// flushed, and the error is reported alongside.
	archiveErr := d.store.AppendArchive(departed)
	if err := d.flush(); err != nil {
		return receipt, errors.Join(archiveErr, err)
	}
	if archiveErr != nil {
		return receipt, fmt.Errorf("checkout completed but archive write failed: %w", archiveErr)
	}
	return receipt, nil
}

// DeleteGuest removes a guest regardless of the room's state and forces the
// room back to Available. The returned bool reports whether the room resolved;
// a stale room id still deletes the guest.
func (d *Desk) DeleteGuest(name string) (bool, error) {
	guest, ok := d.ledger.FindByName(name)
	if !ok {
		return false, ErrGuestNotFound
	}
	roomFound := d.reg.SetStatus(guest.RoomID, registry.StatusAvailable)
	d.ledger.Remove(*guest)
	return roomFound, d.flush()
}

// SetRoomStatus is the operator override: any text is accepted, independent of
// guest presence. Used to take rooms in and out of maintenance.
func (d *Desk) SetRoomStatus(id int, status string) error {
	if !d.reg.SetStatus(id, registry.Status(status)) {
		return ErrRoomNotFound
	}
	return d.flush()
}

// UpdateGuest edits one field of a guest record. Fields: name, room, checkin,
// checkout. A new room must exist and not be occupied; dates must be
// 2006-01-02. Checkout-before-checkin is not re-validated on edits.
func (d *Desk) UpdateGuest(name, field, value string) error {
	guest, ok := d.ledger.FindByName(name)
	if !ok {
		return ErrGuestNotFound
	}

	switch strings.ToLower(field) {
	case "name":
		if strings.TrimSpace(value) == "" {
			return errors.New("guest name cannot be blank")
		}
		guest.Name = value
	case "room":
		roomID, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid room number %q", value)
		}
		room, ok := d.reg.FindByID(roomID)
		if !ok {
			return ErrRoomNotFound
		}
		if room.Status == registry.StatusOccupied {
			return ErrRoomOccupied
		}
		guest.RoomID = roomID
	case "checkin":
		if err := d.validate.Var(value, "datetime="+DateLayout); err != nil {
			return fmt.Errorf("invalid check-in date %q", value)
		}
		guest.CheckIn = value
	case "checkout":
		if err := d.validate.Var(value, "datetime="+DateLayout); err != nil {
			return fmt.Errorf("invalid check-out date %q", value)
		}
		guest.CheckOut = value
	default:
		return fmt.Errorf("unknown field %q (want name, room, checkin or checkout)", field)
	}
	return d.flush()
}

// Rooms returns the full catalog.
func (d *Desk) Rooms() []*registry.Room {
	return d.reg.Rooms()
}

// AvailableRooms returns the rooms open for reservation.
func (d *Desk) AvailableRooms() []*registry.Room {
	return d.reg.Available()
}

// SearchRoom looks a room up by number.
func (d *Desk) SearchRoom(id int) (*registry.Room, error) {
	room, ok := d.reg.FindByID(id)
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Guests returns the active guest list.
func (d *Desk) Guests() []ledger.Guest {
	return d.ledger.All()
}

// ViewGuest looks a guest up by name.
func (d *Desk) ViewGuest(name string) (ledger.Guest, error) {
	guest, ok := d.ledger.FindByName(name)
	if !ok {
		return ledger.Guest{}, ErrGuestNotFound
	}
	return *guest, nil
}

// GuestsWithRoomStatus returns guests whose room currently has the given
// status, e.g. the reserved roster before check-in.
func (d *Desk) GuestsWithRoomStatus(status registry.Status) []ledger.Guest {
	return d.ledger.Where(func(g ledger.Guest) bool {
		room, ok := d.reg.FindByID(g.RoomID)
		return ok && room.Status == status
	})
}

func (d *Desk) flush() error {
	if err := d.store.SaveActive(d.ledger.All(), d.reg); err != nil {
		return fmt.Errorf("failed to save guest ledger: %w", err)
	}
	return nil
}

func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// parseDate accepts the normalized layout first and falls back to RFC 3339 for
// records written by other tools.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
