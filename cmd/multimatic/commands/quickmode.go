package commands

import (
	"context"
	"fmt"

	"github.com/homeclimate-io/multimatic/pkg/multimatic"
	"github.com/spf13/cobra"
)

// NewQuickModeCommand creates the quickmode command group.
func NewQuickModeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quickmode",
		Short: "Manage the system quick mode",
	}

	cmd.AddCommand(newQuickModeShowCommand())
	cmd.AddCommand(newQuickModeSetCommand())
	cmd.AddCommand(newQuickModeRemoveCommand())

	return cmd
}

func newQuickModeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active quick mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			mode, err := manager.GetQuickMode(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get quick mode: %w", err)
			}

			if mode == "" {
				fmt.Println("No quick mode active")

				return nil
			}

			fmt.Printf("Active quick mode: %s\n", mode)

			return nil
		},
	}
}

func newQuickModeSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set MODE",
		Short: "Activate a quick mode (e.g. QM_HOTWATER_BOOST, QM_PARTY, QM_SYSTEM_OFF)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			mode := multimatic.QuickMode(args[0])

			err = manager.SetQuickMode(context.Background(), mode)
			if err != nil {
				return fmt.Errorf("failed to set quick mode: %w", err)
			}

			fmt.Printf("Quick mode %s activated\n", mode)

			return nil
		},
	}
}

func newQuickModeRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Deactivate the quick mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			err = manager.RemoveQuickMode(context.Background())
			if err != nil {
				return fmt.Errorf("failed to remove quick mode: %w", err)
			}

			fmt.Println("Quick mode removed")

			return nil
		},
	}
}
