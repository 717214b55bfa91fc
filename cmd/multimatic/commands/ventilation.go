package commands

import (
	"context"
	"fmt"

	"github.com/homeclimate-io/multimatic/pkg/multimatic"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVentilationCommand creates the ventilation command group.
func NewVentilationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ventilation",
		Short: "Manage the ventilation unit",
	}

	cmd.AddCommand(newVentilationShowCommand())
	cmd.AddCommand(newVentilationSetModeCommand())

	return cmd
}

func newVentilationShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the ventilation state",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			ventilation, err := manager.GetVentilation(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get ventilation: %w", err)
			}

			if ventilation == nil {
				fmt.Println("No ventilation unit found")

				return nil
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return renderEncoded(output, ventilation)
			}

			fmt.Printf("Ventilation: %s (%s)\n", ventilation.Name, ventilation.ID)
			fmt.Printf("Mode:        %s\n", ventilation.OperatingMode)
			fmt.Printf("Day level:   %.0f\n", ventilation.TargetHigh)
			fmt.Printf("Night level: %.0f\n", ventilation.TargetLow)

			return nil
		},
	}
}

func newVentilationSetModeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-mode VENTILATION_ID MODE",
		Short: "Set the ventilation operating mode (AUTO, OFF, DAY, NIGHT)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			mode := multimatic.OperatingMode(args[1])
			if !multimatic.SupportsMode(multimatic.VentilationModes, mode) {
				return fmt.Errorf("unsupported ventilation mode: %s", args[1])
			}

			err = manager.SetVentilationOperatingMode(context.Background(), args[0], mode)
			if err != nil {
				return fmt.Errorf("failed to set ventilation mode: %w", err)
			}

			fmt.Printf("Ventilation %s set to %s\n", args[0], mode)

			return nil
		},
	}
}
