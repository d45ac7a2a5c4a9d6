package commands

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"frontdesk/hotel/desk"
)

func ReserveRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reserve-room",
		Short: "Reserve an available room for a guest",
		Long:  `Prices the stay, collects a 20% deposit confirmation and creates the reservation. The remaining 80% is settled at check-out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, _ := cmd.Flags().GetInt("room")
			guestName, _ := cmd.Flags().GetString("guest")
			checkInArg, _ := cmd.Flags().GetString("check-in")
			checkOutArg, _ := cmd.Flags().GetString("check-out")
			yes, _ := cmd.Flags().GetBool("yes")

			d, err := openDesk()
			if err != nil {
				return err
			}

			available := d.AvailableRooms()
			if len(available) == 0 {
				cmd.Println("No rooms are available for reservation at the moment.")
				return nil
			}

			checkIn, err := time.Parse(desk.DateLayout, checkInArg)
			if err != nil {
				return fmt.Errorf("invalid check-in date %q (want %s)", checkInArg, desk.DateLayout)
			}
			checkOut, err := time.Parse(desk.DateLayout, checkOutArg)
			if err != nil {
				return fmt.Errorf("invalid check-out date %q (want %s)", checkOutArg, desk.DateLayout)
			}

			quote, err := d.QuoteStay(roomID, checkIn, checkOut)
			if err != nil {
				return err
			}

			cmd.Printf("The total cost for the stay is %s for %d nights.\n", money(quote.Total), quote.Nights)
			cmd.Printf("To reserve the room, a deposit of %s is required.\n", money(quote.Deposit))

			if !yes {
				cmd.Print("Do you confirm to pay the deposit? (y/n): ")
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					cmd.Println("Reservation canceled due to lack of deposit.")
					return nil
				}
			}

			if _, err := d.Reserve(desk.ReservationRequest{
				GuestName: guestName,
				RoomID:    roomID,
				CheckIn:   checkIn.Format(desk.DateLayout),
				CheckOut:  checkOut.Format(desk.DateLayout),
			}); err != nil {
				return err
			}

			cmd.Printf("Room %d (%s) has been reserved for %s.\n", quote.Room.ID, quote.Room.Type, guestName)
			return nil
		},
	}

	cmd.Flags().Int("room", 0, "Room number to reserve")
	cmd.Flags().String("guest", "", "Guest name")
	cmd.Flags().String("check-in", "", "Check-in date (yyyy-mm-dd)")
	cmd.Flags().String("check-out", "", "Check-out date (yyyy-mm-dd)")
	cmd.Flags().Bool("yes", false, "Skip the deposit confirmation prompt")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("guest")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")

	return cmd
}
