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

// NewZonesCommand creates the zones command group.
func NewZonesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Manage heating zones",
	}

	cmd.AddCommand(newZonesListCommand())
	cmd.AddCommand(newZonesGetCommand())
	cmd.AddCommand(newZonesSetModeCommand())
	cmd.AddCommand(newZonesSetTempCommand())
	cmd.AddCommand(newZonesVetoCommand())
	cmd.AddCommand(newZonesRemoveVetoCommand())

	return cmd
}

func newZonesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List heating zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			zones, err := manager.GetZones(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list zones: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON, OutputFormatYAML:
				return renderEncoded(output, zones)
			default:
				if len(zones) == 0 {
					fmt.Println("No zones found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Mode", "Current", "Target", "Veto")

				for _, zone := range zones {
					active := zone.ActiveMode()
					table.Append(zone.ID, zone.Name, string(active.Current),
						formatTemperature(zone.CurrentTemperature), formatTemperature(active.Target),
						formatBool(zone.QuickVeto != nil))
				}

				table.Render()

				return nil
			}
		},
	}
}

func newZonesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ZONE_ID",
		Short: "Show a single heating zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			zone, err := manager.GetZone(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get zone: %w", err)
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return renderEncoded(output, zone)
			}

			active := zone.ActiveMode()
			fmt.Printf("Zone:    %s (%s)\n", zone.Name, zone.ID)
			fmt.Printf("Mode:    %s\n", active.Current)
			fmt.Printf("Current: %s\n", formatTemperature(zone.CurrentTemperature))
			fmt.Printf("Target:  %s\n", formatTemperature(active.Target))
			fmt.Printf("Veto:    %s\n", formatBool(zone.QuickVeto != nil))

			return nil
		},
	}
}

func newZonesSetModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-mode ZONE_ID MODE",
		Short: "Set a zone's heating operating mode (AUTO, OFF, DAY, NIGHT)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			mode := multimatic.OperatingMode(args[1])
			if !multimatic.SupportsMode(multimatic.ZoneHeatingModes, mode) {
				return fmt.Errorf("unsupported zone mode: %s", args[1])
			}

			err = manager.SetZoneHeatingOperatingMode(context.Background(), args[0], mode)
			if err != nil {
				return fmt.Errorf("failed to set zone mode: %w", err)
			}

			fmt.Printf("Zone %s set to %s\n", args[0], mode)

			return nil
		},
	}
}

func newZonesSetTempCommand() *cobra.Command {
	var setback bool

	cmd := &cobra.Command{
		Use:   "set-temp ZONE_ID TEMPERATURE",
		Short: "Set a zone's target temperature",
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

			ctx := context.Background()
			if setback {
				err = manager.SetZoneHeatingSetbackTemperature(ctx, args[0], temperature)
			} else {
				err = manager.SetZoneHeatingSetpointTemperature(ctx, args[0], temperature)
			}

			if err != nil {
				return fmt.Errorf("failed to set zone temperature: %w", err)
			}

			fmt.Printf("Zone %s target set to %s\n", args[0], formatTemperature(temperature))

			return nil
		},
	}

	cmd.Flags().BoolVar(&setback, "setback", false, "set the reduced (night) temperature instead")

	return cmd
}

func newZonesVetoCommand() *cobra.Command {
	var duration int

	cmd := &cobra.Command{
		Use:   "veto ZONE_ID TEMPERATURE",
		Short: "Override a zone's schedule with a quick veto",
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

			err = manager.SetZoneQuickVeto(context.Background(), args[0], veto)
			if err != nil {
				return fmt.Errorf("failed to set quick veto: %w", err)
			}

			fmt.Printf("Quick veto on zone %s at %s\n", args[0], formatTemperature(temperature))

			return nil
		},
	}

	cmd.Flags().IntVar(&duration, "duration", 0, "veto duration in minutes (0 uses the backend default)")

	return cmd
}

func newZonesRemoveVetoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-veto ZONE_ID",
		Short: "Remove a zone's quick veto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			err = manager.RemoveZoneQuickVeto(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to remove quick veto: %w", err)
			}

			fmt.Printf("Quick veto removed from zone %s\n", args[0])

			return nil
		},
	}
}
