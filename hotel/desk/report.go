package desk

import (
	"fmt"
	"log"
	"time"
)

// ReportLine is one guest's contribution to a revenue report.
type ReportLine struct {
	GuestName string
	RoomID    int
	CheckIn   time.Time
	CheckOut  time.Time
	Revenue   float64
}

// RevenueReport merges the active ledger with the checkout archive and sums
// the revenue each stay earned inside [start, end]. A stay contributes for the
// overlap of its own interval with the window, inclusive of the checkout day:
// price × (days(min(checkOut,end) − max(checkIn,start)) + 1). Guests whose
// room does not resolve or whose dates do not parse are skipped.
func (d *Desk) RevenueReport(start, end time.Time) ([]ReportLine, float64, error) {
	all := d.ledger.All()
	archived, err := d.store.LoadArchive()
	if err != nil {
		// Report what the active ledger alone shows rather than failing.
		log.Printf("Warning: could not load checkout archive: %v", err)
	}
	all = append(all, archived...)

	var lines []ReportLine
	var total float64
	for _, g := range all {
		room, ok := d.reg.FindByID(g.RoomID)
		if !ok {
			continue
		}
		checkIn, err := parseDate(g.CheckIn)
		if err != nil {
			continue
		}
		checkOut, err := parseDate(g.CheckOut)
		if err != nil {
			continue
		}

		effStart := checkIn
		if start.After(effStart) {
			effStart = start
		}
		effEnd := checkOut
		if end.Before(effEnd) {
			effEnd = end
		}
		if effStart.After(effEnd) {
			continue
		}

		days := int(effEnd.Sub(effStart).Hours()/24) + 1
		revenue := room.Price * float64(days)
		total += revenue
		lines = append(lines, ReportLine{
			GuestName: g.Name,
			RoomID:    g.RoomID,
			CheckIn:   checkIn,
			CheckOut:  checkOut,
			Revenue:   revenue,
		})
	}
	return lines, total, nil
}

// ReportPeriod resolves a named reporting period to a window ending now.
// Supported periods: weekly, monthly, yearly.
func ReportPeriod(period string) (start, end time.Time, err error) {
	end = time.Now()
	switch period {
	case "weekly":
		start = end.AddDate(0, 0, -7)
	case "monthly":
		start = end.AddDate(0, -1, 0)
	case "yearly":
		start = end.AddDate(-1, 0, 0)
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown report period %q (want weekly, monthly or yearly)", period)
	}
	return start, end, nil
}
