package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const dateFormat = "2006-01-02"

// NewHolidayCommand creates the holiday command group.
func NewHolidayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holiday",
		Short: "Manage the holiday mode",
	}

	cmd.AddCommand(newHolidayShowCommand())
	cmd.AddCommand(newHolidaySetCommand())
	cmd.AddCommand(newHolidayRemoveCommand())

	return cmd
}

func newHolidayShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the holiday mode configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			holiday, err := manager.GetHolidayMode(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get holiday mode: %w", err)
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return renderEncoded(output, holiday)
			}

			fmt.Printf("Active:      %s\n", formatBool(holiday.Active))
			fmt.Printf("Start:       %s\n", holiday.Start.Format(dateFormat))
			fmt.Printf("End:         %s\n", holiday.End.Format(dateFormat))
			fmt.Printf("Temperature: %s\n", formatTemperature(holiday.Temperature))

			return nil
		},
	}
}

func newHolidaySetCommand() *cobra.Command {
	var temperature float64

	cmd := &cobra.Command{
		Use:   "set START END",
		Short: "Schedule the holiday mode between two dates (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			start, err := time.Parse(dateFormat, args[0])
			if err != nil {
				return fmt.Errorf("invalid start date: %s", args[0])
			}

			end, err := time.Parse(dateFormat, args[1])
			if err != nil {
				return fmt.Errorf("invalid end date: %s", args[1])
			}

			if !end.After(start) {
				return fmt.Errorf("end date must be after start date")
			}

			err = manager.SetHolidayMode(context.Background(), start, end, temperature)
			if err != nil {
				return fmt.Errorf("failed to set holiday mode: %w", err)
			}

			fmt.Printf("Holiday mode scheduled %s to %s at %s\n",
				args[0], args[1], formatTemperature(temperature))

			return nil
		},
	}

	cmd.Flags().Float64Var(&temperature, "temperature", 15, "setback temperature while away")

	return cmd
}

func newHolidayRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Deactivate the holiday mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			err = manager.RemoveHolidayMode(context.Background())
			if err != nil {
				return fmt.Errorf("failed to remove holiday mode: %w", err)
			}

			fmt.Println("Holiday mode removed")

			return nil
		},
	}
}
