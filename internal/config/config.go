package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	APIKey  = "api_key"
	AgentID = "agent_id"
	UserID  = "user_id"
	BaseURL = "base_url"
)

// DefaultBaseURL is the agent platform endpoint used when none is configured.
const DefaultBaseURL = "https://agent-prod.studio.lyzr.ai"

const configName = ".brandlens"

// InitConfig initializes the configuration
func InitConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(configName)

	viper.SetDefault(BaseURL, DefaultBaseURL)
	viper.SetDefault(UserID, "brandlens-cli")

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		// fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// SetAPIKey sets the API key in the configuration file
func SetAPIKey(key string) error {
	viper.Set(APIKey, key)
	return writeConfig()
}

// GetAPIKey returns the API key from the configuration
func GetAPIKey() string {
	return viper.GetString(APIKey)
}

// SetAgentID sets the research agent id in the configuration file
func SetAgentID(id string) error {
	viper.Set(AgentID, id)
	return writeConfig()
}

// GetAgentID returns the research agent id from the configuration
func GetAgentID() string {
	return viper.GetString(AgentID)
}

// GetUserID returns the user id sent with agent calls
func GetUserID() string {
	return viper.GetString(UserID)
}

// GetBaseURL returns the agent platform base URL
func GetBaseURL() string {
	return viper.GetString(BaseURL)
}

func writeConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(home, configName+".yaml")
	return viper.WriteConfigAs(configPath)
}
