package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the full system state",
		Long:  "Fetch the aggregated installation state: facility, zones, rooms, hot water, ventilation and overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			ctx := context.Background()
			system, err := manager.GetSystem(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch system: %w", err)
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return renderEncoded(output, system)
			}

			if system.Facility != nil {
				fmt.Printf("Facility: %s (serial %s, firmware %s)\n",
					system.Facility.Name, system.Facility.SerialNumber, system.Facility.FirmwareVersion)
			}

			if system.Gateway != "" {
				fmt.Printf("Gateway:  %s\n", system.Gateway)
			}

			fmt.Printf("Outdoor:  %s\n", formatOptionalTemperature(system.OutdoorTemperature))

			if system.QuickMode != "" {
				fmt.Printf("Quick mode: %s\n", system.QuickMode)
			}

			if system.HolidayMode != nil && system.HolidayMode.Active {
				fmt.Printf("Holiday mode: until %s at %s\n",
					system.HolidayMode.End.Format("2006-01-02"), formatTemperature(system.HolidayMode.Temperature))
			}

			if system.HvacStatus != nil {
				fmt.Printf("Online:   %s\n", formatBool(system.HvacStatus.Online))
			}

			if len(system.Zones) > 0 {
				fmt.Println("\nZones:")

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Mode", "Current", "Target", "Veto")

				for _, zone := range system.Zones {
					active := zone.ActiveMode()
					table.Append(zone.ID, zone.Name, string(active.Current),
						formatTemperature(zone.CurrentTemperature), formatTemperature(active.Target),
						formatBool(zone.QuickVeto != nil))
				}

				table.Render()
			}

			if len(system.Rooms) > 0 {
				fmt.Println("\nRooms:")

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Mode", "Current", "Target", "Window")

				for _, room := range system.Rooms {
					table.Append(room.ID, room.Name, string(room.OperatingMode),
						formatTemperature(room.CurrentTemperature), formatTemperature(room.TargetTemperature),
						formatBool(room.WindowOpen))
				}

				table.Render()
			}

			if system.Dhw != nil && system.Dhw.HotWater != nil {
				hotWater := system.Dhw.HotWater
				fmt.Printf("\nHot water: %s, current %s, target %s\n",
					hotWater.OperatingMode,
					formatTemperature(hotWater.CurrentTemperature),
					formatTemperature(hotWater.TargetHigh))
			}

			if system.Ventilation != nil {
				fmt.Printf("Ventilation: %s (%s)\n", system.Ventilation.Name, system.Ventilation.OperatingMode)
			}

			return nil
		},
	}
}
