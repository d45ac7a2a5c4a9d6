package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/hotel/ledger"
	"frontdesk/hotel/registry"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	return New(filepath.Join(dir, "guests_data.txt"), filepath.Join(dir, "checked_out_guests.txt"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := newTestStore(t)

	reg := registry.Seed()
	reg.SetStatus(1, registry.StatusReserved)
	reg.SetStatus(3, registry.StatusOccupied)

	guests := []ledger.Guest{
		{Name: "Alice", RoomID: 1, CheckIn: "2024-03-01", CheckOut: "2024-03-05"},
		{Name: "Bob", RoomID: 3, CheckIn: "2024-03-02", CheckOut: "2024-03-09"},
	}
	require.NoError(t, st.SaveActive(guests, reg))

	fresh := registry.Seed()
	led, err := st.LoadActive(fresh)
	require.NoError(t, err)
	assert.Equal(t, guests, led.All())

	room1, _ := fresh.FindByID(1)
	assert.Equal(t, registry.StatusReserved, room1.Status)
	room3, _ := fresh.FindByID(3)
	assert.Equal(t, registry.StatusOccupied, room3.Status)
	room2, _ := fresh.FindByID(2)
	assert.Equal(t, registry.StatusAvailable, room2.Status, "rooms without guests stay at the seed status")
}

func TestSaveActiveUnresolvedRoom(t *testing.T) {
	st := newTestStore(t)

	reg := registry.Seed()
	guests := []ledger.Guest{{Name: "Ghost", RoomID: 99, CheckIn: "2024-03-01", CheckOut: "2024-03-02"}}
	require.NoError(t, st.SaveActive(guests, reg))

	content, err := os.ReadFile(st.LedgerPath)
	require.NoError(t, err)
	assert.Equal(t, "Ghost|99|2024-03-01|2024-03-02|Unknown\n", string(content))

	// The guest still loads even though the room never resolves.
	led, err := st.LoadActive(registry.Seed())
	require.NoError(t, err)
	require.Equal(t, 1, led.Len())
	guest, ok := led.FindByName("Ghost")
	require.True(t, ok)
	assert.Equal(t, 99, guest.RoomID)
}

func TestLoadActiveSkipsMalformedLines(t *testing.T) {
	st := newTestStore(t)

	lines := "x|y\n" +
		"Alice|1|2024-03-01|2024-03-05|Reserved\n" +
		"too|many|fields|in|this|line\n" +
		"Bob|notanumber|2024-03-01|2024-03-05|Reserved\n"
	require.NoError(t, os.WriteFile(st.LedgerPath, []byte(lines), 0644))

	led, err := st.LoadActive(registry.Seed())
	require.NoError(t, err)
	require.Equal(t, 1, led.Len())
	guest, ok := led.FindByName("Alice")
	require.True(t, ok)
	assert.Equal(t, 1, guest.RoomID)
}

func TestLoadActiveMissingFile(t *testing.T) {
	st := newTestStore(t)

	led, err := st.LoadActive(registry.Seed())
	require.NoError(t, err)
	assert.Equal(t, 0, led.Len())
}

func TestSaveActiveCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	st := New(
		filepath.Join(dir, "nested", "data", "guests_data.txt"),
		filepath.Join(dir, "nested", "data", "checked_out_guests.txt"),
	)

	require.NoError(t, st.SaveActive(nil, registry.Seed()))
	_, err := os.Stat(st.LedgerPath)
	assert.NoError(t, err)
}

func TestSaveActiveLeavesNoTempFiles(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.SaveActive([]ledger.Guest{{Name: "Alice", RoomID: 1}}, registry.Seed()))

	entries, err := os.ReadDir(filepath.Dir(st.LedgerPath))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(st.LedgerPath), entries[0].Name())
}

func TestArchiveAppendAndLoad(t *testing.T) {
	st := newTestStore(t)

	a := ledger.Guest{Name: "Alice", RoomID: 1, CheckIn: "2024-03-01", CheckOut: "2024-03-05"}
	b := ledger.Guest{Name: "Bob", RoomID: 3, CheckIn: "2024-04-01", CheckOut: "2024-04-03"}
	require.NoError(t, st.AppendArchive(a))
	require.NoError(t, st.AppendArchive(b))

	archived, err := st.LoadArchive()
	require.NoError(t, err)
	assert.Equal(t, []ledger.Guest{a, b}, archived)

	content, err := os.ReadFile(st.ArchivePath)
	require.NoError(t, err)
	assert.Equal(t, "Alice|1|2024-03-01|2024-03-05\nBob|3|2024-04-01|2024-04-03\n", string(content))
}

func TestLoadArchiveSkipsMalformedLines(t *testing.T) {
	st := newTestStore(t)

	lines := "x|y\n" +
		"Alice|1|2024-03-01|2024-03-05\n" +
		"Alice|1|2024-03-01|2024-03-05|Reserved\n"
	require.NoError(t, os.WriteFile(st.ArchivePath, []byte(lines), 0644))

	archived, err := st.LoadArchive()
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "Alice", archived[0].Name)
}

func TestLoadArchiveMissingFile(t *testing.T) {
	st := newTestStore(t)

	archived, err := st.LoadArchive()
	require.NoError(t, err)
	assert.Empty(t, archived)
}
