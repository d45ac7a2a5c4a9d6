package commands

import (
	"github.com/spf13/cobra"

	"frontdesk/hotel/registry"
)

func CheckOutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-out [guest]",
		Short: "Check out an occupied guest and settle the remaining balance",
		Long:  `Collects the remaining 80% of the stay cost, prints a receipt, archives the stay and frees the room.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, _ := cmd.Flags().GetString("method")
			amount, _ := cmd.Flags().GetFloat64("amount")

			d, err := openDesk()
			if err != nil {
				return err
			}

			occupied := d.GuestsWithRoomStatus(registry.StatusOccupied)
			if len(occupied) > 0 {
				cmd.Println("Guests ready for check-out:")
				printGuests(cmd.OutOrStdout(), occupied)
				cmd.Println()
			}

			receipt, err := d.CheckOut(args[0], method, amount)
			if err != nil {
				return err
			}

			cmd.Println("Receipt:")
			cmd.Printf("Guest Name: %s\n", receipt.GuestName)
			cmd.Printf("Room: %d (%s)\n", receipt.RoomID, receipt.RoomType)
			cmd.Printf("Check-in Date: %s\n", receipt.CheckIn)
			cmd.Printf("Check-out Date: %s\n", receipt.CheckOut)
			cmd.Printf("Duration of Stay: %d nights\n", receipt.Nights)
			cmd.Printf("Total Price: %s\n", money(receipt.Total))
			cmd.Printf("Balance Paid: %s (%s)\n", money(receipt.Balance), receipt.Method)
			cmd.Println()
			cmd.Printf("%s has checked out successfully!\n", receipt.GuestName)
			return nil
		},
	}

	cmd.Flags().String("method", "Cash", "Payment method (Cash, CreditCard, MobilePayment)")
	cmd.Flags().Float64("amount", 0, "Payment amount; must cover the remaining balance")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
