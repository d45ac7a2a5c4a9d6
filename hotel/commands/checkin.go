package commands

import (
	"github.com/spf13/cobra"

	"frontdesk/hotel/registry"
)

func CheckInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-in [guest]",
		Short: "Check in a guest with a reserved room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDesk()
			if err != nil {
				return err
			}

			reserved := d.GuestsWithRoomStatus(registry.StatusReserved)
			if len(reserved) > 0 {
				cmd.Println("Reserved guests:")
				printGuests(cmd.OutOrStdout(), reserved)
				cmd.Println()
			}

			guest, err := d.CheckIn(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s has checked in successfully! Room %d is now occupied.\n", guest.Name, guest.RoomID)
			return nil
		},
	}
}
