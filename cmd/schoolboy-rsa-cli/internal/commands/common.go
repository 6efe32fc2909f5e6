package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pbsphp/schoolboy-rsa/internal/app"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/config"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/logger"
	"github.com/spf13/cobra"
)

// InitGlobalFlags registers the flags shared by every sub-command
func InitGlobalFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().Int("key-size", config.DefaultKeySizeBits, "Key size in bits (multiple of 16)")
	rootCmd.PersistentFlags().String("log-level", config.LogLevelInfo, "Log level (debug, info, warning, error, critical)")
}

// loadConfig reads --config and applies flags the user set explicitly on top of it
func loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := config.InitializeConfig(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("key-size") {
		keySize, err := cmd.Flags().GetInt("key-size")
		if err != nil {
			return nil, fmt.Errorf("invalid key-size flag: %w", err)
		}
		cfg.RSA.KeySizeBits = keySize
	}
	if cmd.Flags().Changed("log-level") {
		logLevel, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return nil, fmt.Errorf("invalid log-level flag: %w", err)
		}
		cfg.Logger.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupServices loads the configuration and wires the binding services for one command run
func setupServices(cmd *cobra.Command) (*app.Services, logger.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, nil, err
	}

	services, err := app.NewServices(&cfg.RSA, loggerInstance)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create services: %w", err)
	}

	return services, loggerInstance, nil
}

// readInput returns the value of flagName, or the content of --input-file when that is set instead
func readInput(cmd *cobra.Command, flagName string) (string, error) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	if inputFile != "" {
		data, err := os.ReadFile(filepath.Clean(inputFile))
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	value, err := cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", flagName, err)
	}
	return value, nil
}

// readKey returns --key, or the trimmed content of --key-file
func readKey(cmd *cobra.Command) (string, error) {
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return "", fmt.Errorf("invalid key-file flag: %w", err)
	}
	if keyFile != "" {
		data, err := os.ReadFile(filepath.Clean(keyFile))
		if err != nil {
			return "", fmt.Errorf("failed to read key file: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	key, err := cmd.Flags().GetString("key")
	if err != nil {
		return "", fmt.Errorf("invalid key flag: %w", err)
	}
	return key, nil
}

// writeOutput prints result to stdout, or writes it to --output-file when set
func writeOutput(cmd *cobra.Command, loggerInstance logger.Logger, result string) error {
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return fmt.Errorf("invalid output-file flag: %w", err)
	}
	if outputFile == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
		return err
	}

	if err := os.WriteFile(filepath.Clean(outputFile), []byte(result), 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	loggerInstance.Info("Output written to ", outputFile)
	return nil
}
