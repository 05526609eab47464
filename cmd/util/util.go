package util

import (
	"strings"

	"github.com/ValentinKolb/pKV/lib/common"
	"github.com/ValentinKolb/pKV/lib/persist"
	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupStoreFlags adds the flags that configure the store to a command
func SetupStoreFlags(cmd *cobra.Command) {
	key := "app-name"
	cmd.PersistentFlags().String(key, "", WrapString("Name of the application directory inside the data directory. Defaults to the name of this executable"))

	key = "file-name"
	cmd.PersistentFlags().String(key, persist.DefaultFileName, WrapString("Name of the file holding the values"))

	key = "data-dir"
	cmd.PersistentFlags().String(key, xdg.DataHome, WrapString("The local application data directory"))

	key = "codec"
	cmd.PersistentFlags().String(key, persist.CodecJSON, WrapString("Format of the file (json, yaml)"))

	key = "pretty"
	cmd.PersistentFlags().Bool(key, false, WrapString("Indent the json written to the file"))

	key = "log-level"
	cmd.PersistentFlags().String(key, "warn", WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))

	key = "metrics"
	cmd.PersistentFlags().Bool(key, false, WrapString("Print the store metrics in prometheus format to stderr after the command"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("pkv")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetStoreConfig reads the store configuration from viper
func GetStoreConfig() persist.Config {
	return persist.Config{
		AppName:  viper.GetString("app-name"),
		FileName: viper.GetString("file-name"),
		DataDir:  viper.GetString("data-dir"),
		Codec:    strings.ToLower(viper.GetString("codec")),
		Pretty:   viper.GetBool("pretty"),
	}
}

// InitLogging sets the level of all loggers from the log-level setting
func InitLogging() error {
	return common.InitLoggers(viper.GetString("log-level"))
}

// MetricsEnabled reports whether the metrics should be printed after the command
func MetricsEnabled() bool {
	return viper.GetBool("metrics")
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
