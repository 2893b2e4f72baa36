package cmd

import (
	"fmt"

	"brandlens-cli/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure brandlens settings",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var setKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Set the platform API key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		err := config.SetAPIKey(key)
		if err != nil {
			fmt.Printf("Error setting API key: %v\n", err)
			return
		}
		fmt.Println("API key set successfully.")
	},
}

var getKeyCmd = &cobra.Command{
	Use:   "get-key",
	Short: "Get the current API key",
	Run: func(cmd *cobra.Command, args []string) {
		key := config.GetAPIKey()
		if key == "" {
			fmt.Println("API key is not set.")
		} else {
			fmt.Printf("Current API key: %s\n", key)
		}
	},
}

var setAgentCmd = &cobra.Command{
	Use:   "set-agent [agent_id]",
	Short: "Set the research agent id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := config.SetAgentID(args[0])
		if err != nil {
			fmt.Printf("Error setting agent id: %v\n", err)
			return
		}
		fmt.Println("Agent id set successfully.")
	},
}

var getAgentCmd = &cobra.Command{
	Use:   "get-agent",
	Short: "Get the current research agent id",
	Run: func(cmd *cobra.Command, args []string) {
		id := config.GetAgentID()
		if id == "" {
			fmt.Println("Agent id is not set.")
		} else {
			fmt.Printf("Current agent id: %s\n", id)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(setKeyCmd)
	configCmd.AddCommand(getKeyCmd)
	configCmd.AddCommand(setAgentCmd)
	configCmd.AddCommand(getAgentCmd)
}
