package persist

import (
	"fmt"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// DefaultFileName is the name of the backing file if none is configured
	DefaultFileName = "Persistence.json"

	CodecJSON = "json"
	CodecYAML = "yaml"
)

// --------------------------------------------------------------------------
// Store configuration struct
// --------------------------------------------------------------------------

// Config holds the parameters that determine where and how a store keeps its record set.
// The backing file lives at <DataDir>/<AppName>/<FileName>.
type Config struct {
	// AppName is the directory below DataDir. If empty, it is set to the name
	// of the running executable on first use.
	AppName string
	// FileName is the name of the backing file
	FileName string
	// DataDir is the per-user local application data directory
	DataDir string

	// Codec selects the on-disk format (json, yaml)
	Codec string
	// Pretty enables indented output for the json codec
	Pretty bool
}

// DefaultConfig returns the configuration used when nothing is overridden:
// no AppName (resolved lazily), Persistence.json in the OS local application data directory.
func DefaultConfig() Config {
	return Config{
		AppName:  "",
		FileName: DefaultFileName,
		DataDir:  xdg.DataHome,
		Codec:    CodecJSON,
	}
}

// Validate checks that the configuration can be turned into a file path.
// An empty AppName is valid since it is resolved on first use.
func (c *Config) Validate() error {
	if c.AppName != "" {
		if err := ValidateName("app name", c.AppName); err != nil {
			return err
		}
	}
	if err := ValidateName("file name", c.FileName); err != nil {
		return err
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return NewError(RetCInvalidConfig, "data dir must not be empty")
	}
	switch c.Codec {
	case CodecJSON, CodecYAML:
	default:
		return NewError(RetCInvalidConfig, fmt.Sprintf("invalid codec %q (expected one of: json, yaml)", c.Codec))
	}
	return nil
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	appName := c.AppName
	if appName == "" {
		appName = "(executable name)"
	}

	addSection("Store")
	addField("App Name", appName)
	addField("File Name", c.FileName)
	addField("Data Directory", c.DataDir)

	addSection("Encoding")
	addField("Codec", c.Codec)
	addField("Pretty", fmt.Sprintf("%t", c.Pretty))

	return sb.String()
}
