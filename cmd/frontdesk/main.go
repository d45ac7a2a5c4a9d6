package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"frontdesk/hotel/commands"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "frontdesk",
		Short: "Room inventory and guest reservation tracker",
	}

	rootCmd.AddCommand(
		commands.ReserveRoomCmd(),
		commands.CheckInCmd(),
		commands.CheckOutCmd(),
		commands.ViewRoomsCmd(),
		commands.SearchRoomCmd(),
		commands.ChangeRoomStatusCmd(),
		commands.ListGuestsCmd(),
		commands.ViewGuestCmd(),
		commands.UpdateGuestCmd(),
		commands.DeleteGuestCmd(),
		commands.SalesReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
