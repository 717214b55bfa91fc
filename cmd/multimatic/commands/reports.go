package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewReportsCommand creates the reports command group.
func NewReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Read live measurements and energy reports",
	}

	cmd.AddCommand(newReportsLiveCommand())
	cmd.AddCommand(newReportsEmfCommand())

	return cmd
}

func newReportsLiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "live",
		Short: "List live measurements",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			reports, err := manager.GetLiveReports(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list live reports: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON, OutputFormatYAML:
				return renderEncoded(output, reports)
			default:
				if len(reports) == 0 {
					fmt.Println("No live reports found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Device", "Report", "Value", "Unit")

				for _, report := range reports {
					table.Append(report.DeviceName, report.Name,
						fmt.Sprintf("%.1f", report.Value), report.Unit)
				}

				table.Render()

				return nil
			}
		},
	}
}

func newReportsEmfCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "emf",
		Short: "List energy monitoring readings",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			reports, err := manager.GetEmfDevices(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list emf devices: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON, OutputFormatYAML:
				return renderEncoded(output, reports)
			default:
				if len(reports) == 0 {
					fmt.Println("No emf devices found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Device", "Type", "Function", "Energy", "Power")

				for _, report := range reports {
					table.Append(report.DeviceName, report.DeviceType, report.Function,
						report.Energy, fmt.Sprintf("%.0f W", report.CurrentPower))
				}

				table.Render()

				return nil
			}
		},
	}
}
