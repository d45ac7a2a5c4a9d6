package commands

import (
	"github.com/spf13/cobra"
)

func ListGuestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-guests",
		Short: "List all guests in the active ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDesk()
			if err != nil {
				return err
			}

			guests := d.Guests()
			if len(guests) == 0 {
				cmd.Println("No guests are currently in the system.")
				return nil
			}
			printGuests(cmd.OutOrStdout(), guests)
			return nil
		},
	}
}

func ViewGuestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view-guest [name]",
		Short: "Show one guest's reservation details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDesk()
			if err != nil {
				return err
			}

			guest, err := d.ViewGuest(args[0])
			if err != nil {
				return err
			}
			cmd.Printf("Name: %s\n", guest.Name)
			cmd.Printf("Room Number: %d\n", guest.RoomID)
			cmd.Printf("Check-in: %s\n", guest.CheckIn)
			cmd.Printf("Check-out: %s\n", guest.CheckOut)
			return nil
		},
	}
}

func UpdateGuestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update-guest [name] [field] [value]",
		Short: "Update one field of a guest record",
		Long:  `Fields: name, room, checkin, checkout. A new room must exist and not be occupied; dates must be yyyy-mm-dd.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDesk()
			if err != nil {
				return err
			}

			if err := d.UpdateGuest(args[0], args[1], args[2]); err != nil {
				return err
			}
			cmd.Println("Guest information updated successfully.")
			return nil
		},
	}
}

func DeleteGuestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-guest [name]",
		Short: "Remove a guest and free their room",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := openDesk()
			if err != nil {
				return err
			}

			roomFound, err := d.DeleteGuest(args[0])
			if err != nil {
				return err
			}
			if !roomFound {
				cmd.Println("Warning: guest's room was not found in the registry; guest removed anyway.")
			}
			cmd.Printf("%s has been deleted and their room is now available.\n", args[0])
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}
