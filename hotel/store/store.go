package store

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"frontdesk/hotel/ledger"
	"frontdesk/hotel/registry"
)

const (
	activeFields  = 5
	archiveFields = 4
)

// Store reads and writes the two guest files. The active ledger file is the
// only place room status survives a restart: status is written alongside each
// guest line and re-applied to the registry on load. A room with no guest
// attached at save time keeps no status across runs.
type Store struct {
	LedgerPath  string
	ArchivePath string
}

func New(ledgerPath, archivePath string) *Store {
	return &Store{LedgerPath: ledgerPath, ArchivePath: archivePath}
}

// SaveActive rewrites the active ledger file, one line per guest:
// name|roomID|checkIn|checkOut|roomStatus. The status written is the current
// status of the guest's room, or the literal "Unknown" when the room id does
// not resolve. The file is written to a temp file in the same directory and
// renamed over the target so a failed write cannot destroy the previous state.
func (s *Store) SaveActive(guests []ledger.Guest, reg *registry.Registry) error {
	dir := filepath.Dir(s.LedgerPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".guests-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, g := range guests {
		status := "Unknown"
		if room, ok := reg.FindByID(g.RoomID); ok {
			status = string(room.Status)
		}
		if _, err := fmt.Fprintf(w, "%s|%d|%s|%s|%s\n", g.Name, g.RoomID, g.CheckIn, g.CheckOut, status); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write ledger line: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close ledger file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.LedgerPath); err != nil {
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}

// LoadActive reads the active ledger file into a fresh ledger and re-applies
// each line's saved status to the referenced room. Lines that do not split
// into exactly 5 fields, or whose room id is not numeric, are skipped. A line
// whose room id does not resolve still produces a guest; a warning is logged.
// A missing file is not an error and yields an empty ledger.
func (s *Store) LoadActive(reg *registry.Registry) (*ledger.Ledger, error) {
	led := ledger.New()

	f, err := os.Open(s.LedgerPath)
	if err != nil {
		if os.IsNotExist(err) {
			return led, nil
		}
		return nil, fmt.Errorf("failed to open ledger file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "|")
		if len(fields) != activeFields {
			continue
		}
		roomID, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		led.Add(ledger.Guest{
			Name:     fields[0],
			RoomID:   roomID,
			CheckIn:  fields[2],
			CheckOut: fields[3],
		})

		if room, ok := reg.FindByID(roomID); ok {
			room.Status = registry.Status(fields[4])
		} else {
			log.Printf("Warning: room %d from ledger file not found in registry", roomID)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}
	return led, nil
}

// AppendArchive adds one completed stay to the archive file:
// name|roomID|checkIn|checkOut. The archive is append-only and has no status
// field.
func (s *Store) AppendArchive(g ledger.Guest) error {
	if err := os.MkdirAll(filepath.Dir(s.ArchivePath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.OpenFile(s.ArchivePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open archive file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s|%d|%s|%s\n", g.Name, g.RoomID, g.CheckIn, g.CheckOut); err != nil {
		return fmt.Errorf("failed to append archive record: %w", err)
	}
	return nil
}

// LoadArchive parses the archive file. Malformed lines are skipped; a missing
// file yields an empty slice.
func (s *Store) LoadArchive() ([]ledger.Guest, error) {
	f, err := os.Open(s.ArchivePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open archive file: %w", err)
	}
	defer f.Close()

	var out []ledger.Guest
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "|")
		if len(fields) != archiveFields {
			continue
		}
		roomID, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		out = append(out, ledger.Guest{
			Name:     fields[0],
			RoomID:   roomID,
			CheckIn:  fields[2],
			CheckOut: fields[3],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read archive file: %w", err)
	}
	return out, nil
}
