package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/homeclimate-io/multimatic/pkg/multimatic"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRoomsCommand creates the rooms command group.
func NewRoomsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Manage rooms (room-by-room installations)",
	}

	cmd.AddCommand(newRoomsListCommand())
	cmd.AddCommand(newRoomsGetCommand())
	cmd.AddCommand(newRoomsSetModeCommand())
	cmd.AddCommand(newRoomsSetTempCommand())
	cmd.AddCommand(newRoomsVetoCommand())
	cmd.AddCommand(newRoomsRemoveVetoCommand())

	return cmd
}

func newRoomsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			rooms, err := manager.GetRooms(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list rooms: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON, OutputFormatYAML:
				return renderEncoded(output, rooms)
			default:
				if len(rooms) == 0 {
					fmt.Println("No rooms found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Mode", "Current", "Target", "Window", "Child lock")

				for _, room := range rooms {
					table.Append(room.ID, room.Name, string(room.OperatingMode),
						formatTemperature(room.CurrentTemperature), formatTemperature(room.TargetTemperature),
						formatBool(room.WindowOpen), formatBool(room.ChildLock))
				}

				table.Render()

				return nil
			}
		},
	}
}

func newRoomsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ROOM_ID",
		Short: "Show a single room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			room, err := manager.GetRoom(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get room: %w", err)
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return renderEncoded(output, room)
			}

			fmt.Printf("Room:    %s (%s)\n", room.Name, room.ID)
			fmt.Printf("Mode:    %s\n", room.OperatingMode)
			fmt.Printf("Current: %s\n", formatTemperature(room.CurrentTemperature))
			fmt.Printf("Target:  %s\n", formatTemperature(room.TargetTemperature))

			if len(room.Devices) > 0 {
				fmt.Println("\nDevices:")

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Name", "Type", "Battery low", "Out of reach")

				for _, device := range room.Devices {
					table.Append(device.Name, device.DeviceType,
						formatBool(device.BatteryLow), formatBool(device.RadioOutOfReach))
				}

				table.Render()
			}

			return nil
		},
	}
}

func newRoomsSetModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-mode ROOM_ID MODE",
		Short: "Set a room's operating mode (AUTO, OFF, MANUAL)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			mode := multimatic.OperatingMode(args[1])
			if !multimatic.SupportsMode(multimatic.RoomModes, mode) {
				return fmt.Errorf("unsupported room mode: %s", args[1])
			}

			err = manager.SetRoomOperatingMode(context.Background(), args[0], mode)
			if err != nil {
				return fmt.Errorf("failed to set room mode: %w", err)
			}

			fmt.Printf("Room %s set to %s\n", args[0], mode)

			return nil
		},
	}
}

func newRoomsSetTempCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-temp ROOM_ID TEMPERATURE",
		Short: "Set a room's target temperature",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			temperature, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid temperature: %s", args[1])
			}

			err = manager.SetRoomSetpointTemperature(context.Background(), args[0], temperature)
			if err != nil {
				return fmt.Errorf("failed to set room temperature: %w", err)
			}

			fmt.Printf("Room %s target set to %s\n", args[0], formatTemperature(temperature))

			return nil
		},
	}
}

func newRoomsVetoCommand() *cobra.Command {
	var duration int

	cmd := &cobra.Command{
		Use:   "veto ROOM_ID TEMPERATURE",
		Short: "Override a room's schedule with a quick veto",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			temperature, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid temperature: %s", args[1])
			}

			veto := multimatic.QuickVeto{Target: temperature, Duration: duration}

			err = manager.SetRoomQuickVeto(context.Background(), args[0], veto)
			if err != nil {
				return fmt.Errorf("failed to set quick veto: %w", err)
			}

			fmt.Printf("Quick veto on room %s at %s\n", args[0], formatTemperature(temperature))

			return nil
		},
	}

	cmd.Flags().IntVar(&duration, "duration", 180, "veto duration in minutes")

	return cmd
}

func newRoomsRemoveVetoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-veto ROOM_ID",
		Short: "Remove a room's quick veto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			err = manager.RemoveRoomQuickVeto(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to remove quick veto: %w", err)
			}

			fmt.Printf("Quick veto removed from room %s\n", args[0])

			return nil
		},
	}
}
