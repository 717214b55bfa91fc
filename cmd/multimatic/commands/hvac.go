package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewHvacCommand creates the hvac command group.
func NewHvacCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hvac",
		Short: "Inspect boiler and gateway health",
	}

	cmd.AddCommand(newHvacStatusCommand())
	cmd.AddCommand(newHvacRefreshCommand())

	return cmd
}

func newHvacStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the hvac health overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			status, err := manager.GetHvacStatus(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get hvac status: %w", err)
			}

			output := viper.GetString("output")
			if output == OutputFormatJSON || output == OutputFormatYAML {
				return renderEncoded(output, status)
			}

			fmt.Printf("Online:          %s\n", formatBool(status.Online))
			fmt.Printf("Firmware up to date: %s\n", formatBool(status.FirmwareUpToDate))

			if status.SyncState != nil {
				fmt.Printf("Sync state:      %s\n", status.SyncState.State)
			}

			if len(status.Errors) > 0 {
				fmt.Println("\nErrors:")

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Device", "Code", "Title", "Since")

				for _, hvacError := range status.Errors {
					table.Append(hvacError.DeviceName, hvacError.StatusCode, hvacError.Title,
						hvacError.Timestamp.Format("2006-01-02 15:04"))
				}

				table.Render()
			}

			return nil
		},
	}
}

func newHvacRefreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Ask the boiler to refresh its data",
		Long:  "Request an hvac data refresh. Skipped when an earlier refresh is still pending.",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			err = manager.RequestHvacUpdate(context.Background())
			if err != nil {
				return fmt.Errorf("failed to request hvac update: %w", err)
			}

			fmt.Println("Hvac refresh requested")

			return nil
		},
	}
}
