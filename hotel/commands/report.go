package commands

import (
	"github.com/spf13/cobra"

	"frontdesk/hotel/desk"
)

var reportTitles = map[string]string{
	"weekly":  "Weekly Sales Report",
	"monthly": "Monthly Sales Report",
	"yearly":  "Yearly Sales Report",
}

func SalesReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sales-report [period]",
		Short: "Revenue earned over the last week, month or year",
		Long:  `Merges active and archived stays and sums each stay's revenue for the part of it that overlaps the reporting window, checkout day included. Periods: weekly, monthly, yearly.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := desk.ReportPeriod(args[0])
			if err != nil {
				return err
			}

			d, err := openDesk()
			if err != nil {
				return err
			}

			lines, total, err := d.RevenueReport(start, end)
			if err != nil {
				return err
			}

			title := reportTitles[args[0]]
			cmd.Printf("%s:\n", title)
			for _, line := range lines {
				cmd.Printf("Guest: %s, Room: %d, Revenue: %s, Check-In: %s, Check-Out: %s\n",
					line.GuestName, line.RoomID, money(line.Revenue),
					line.CheckIn.Format(desk.DateLayout), line.CheckOut.Format(desk.DateLayout))
			}
			cmd.Printf("\nTotal %s: %s\n", title, money(total))
			return nil
		},
	}
}
