package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"frontdesk/hotel/desk"
	"frontdesk/hotel/ledger"
	"frontdesk/hotel/registry"
	"frontdesk/hotel/store"
)

const (
	defaultLedgerFile  = "guests_data.txt"
	defaultArchiveFile = "checked_out_guests.txt"
)

func dataPaths() (string, string) {
	ledgerPath := os.Getenv("FRONTDESK_LEDGER_PATH")
	archivePath := os.Getenv("FRONTDESK_ARCHIVE_PATH")

	if ledgerPath == "" || archivePath == "" {
		dir := documentsDir()
		if ledgerPath == "" {
			ledgerPath = filepath.Join(dir, defaultLedgerFile)
		}
		if archivePath == "" {
			archivePath = filepath.Join(dir, defaultArchiveFile)
		}
	}
	return ledgerPath, archivePath
}

func documentsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: could not resolve home directory, falling back to the current directory: %v", err)
		return "."
	}
	return filepath.Join(home, "Documents")
}

func openDesk() (*desk.Desk, error) {
	ledgerPath, archivePath := dataPaths()
	return desk.Open(store.New(ledgerPath, archivePath))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func printRooms(w io.Writer, rooms []*registry.Room) {
	fmt.Fprintf(w, "%-6s %-8s %-10s %-9s %-18s\n", "Room", "Type", "Price", "Capacity", "Status")
	for _, room := range rooms {
		fmt.Fprintf(w, "%-6d %-8s %-10s %-9d %-18s\n", room.ID, room.Type, money(room.Price), room.Capacity, room.Status)
	}
}

func printGuests(w io.Writer, guests []ledger.Guest) {
	fmt.Fprintf(w, "%-20s %-6s %-12s %-12s\n", "Name", "Room", "Check-In", "Check-Out")
	for _, g := range guests {
		fmt.Fprintf(w, "%-20s %-6d %-12s %-12s\n", g.Name, g.RoomID, g.CheckIn, g.CheckOut)
	}
}
