package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		username string
		password string
		serial   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to the multiMATIC API",
		Long:  "Authenticate against the myVaillant mobile API and store the account in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = viper.GetString("username")
			}

			if username == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Username: ")
				username, _ = reader.ReadString('\n')
				username = strings.TrimSpace(username)
			}

			if username == "" {
				return fmt.Errorf("username is required")
			}

			if password == "" {
				password = viper.GetString("password")
			}

			if password == "" {
				fmt.Print("Password: ")
				bytePassword, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
				password = string(bytePassword)
				fmt.Println()
			}

			if serial == "" {
				serial = viper.GetString("serial")
			}

			viper.Set("username", username)
			viper.Set("password", password)
			viper.Set("serial", serial)

			manager, err := createManager()
			if err != nil {
				return err
			}

			// Verify the credentials and discover the facility
			ctx := context.Background()
			if err := manager.Login(ctx); err != nil {
				return fmt.Errorf("failed to login: %w", err)
			}

			facility, err := manager.GetFacilityDetail(ctx, serial)
			if err != nil {
				return fmt.Errorf("failed to fetch facility: %w", err)
			}

			if err := saveCredentials(username, password, facility.SerialNumber); err != nil {
				fmt.Printf("Warning: could not save config: %v\n", err)
			}

			fmt.Printf("Logged in as %s\n", username)
			fmt.Printf("Facility: %s (serial %s)\n", facility.Name, facility.SerialNumber)

			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&serial, "serial", "", "gateway serial number")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout from the multiMATIC API",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := createManager()
			if err != nil {
				return err
			}

			ctx := context.Background()
			if err := manager.Login(ctx); err != nil {
				return fmt.Errorf("failed to login: %w", err)
			}

			if err := manager.Logout(ctx); err != nil {
				return fmt.Errorf("failed to logout: %w", err)
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}

func saveCredentials(username, password, serial string) error {
	viper.Set("username", username)
	viper.Set("password", password)
	viper.Set("serial", serial)

	if err := viper.WriteConfig(); err != nil {
		// First login: the config file does not exist yet
		return viper.SafeWriteConfig()
	}

	return nil
}
