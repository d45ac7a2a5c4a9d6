package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func ViewRoomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view-rooms",
		Short: "List the room catalog with current statuses",
		RunE: func(cmd *cobra.Command, args []string) error {
			availableOnly, _ := cmd.Flags().GetBool("available")

			d, err := openDesk()
			if err != nil {
				return err
			}

			rooms := d.Rooms()
			if availableOnly {
				rooms = d.AvailableRooms()
				if len(rooms) == 0 {
					cmd.Println("No rooms are available at the moment.")
					return nil
				}
			}
			printRooms(cmd.OutOrStdout(), rooms)
			return nil
		},
	}

	cmd.Flags().Bool("available", false, "Show only available rooms")

	return cmd
}

func SearchRoomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search-room [room]",
		Short: "Show one room by number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room number %q", args[0])
			}

			d, err := openDesk()
			if err != nil {
				return err
			}

			room, err := d.SearchRoom(roomID)
			if err != nil {
				return err
			}
			cmd.Printf("Room %d (%s): %s | Capacity: %d pax | Price: %s\n",
				room.ID, room.Type, room.Status, room.Capacity, money(room.Price))
			return nil
		},
	}
}

func ChangeRoomStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "change-room-status [room] [status]",
		Short: "Override a room's status",
		Long:  `Administrative override accepting any status text, e.g. UnderMaintenance while a room is repaired and Available once fixed.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid room number %q", args[0])
			}

			d, err := openDesk()
			if err != nil {
				return err
			}

			if err := d.SetRoomStatus(roomID, args[1]); err != nil {
				return err
			}
			cmd.Printf("Room %d status changed to %s.\n", roomID, args[1])
			return nil
		},
	}
}
