package kv

import (
	"os"

	"github.com/ValentinKolb/pKV/cmd/util"
	"github.com/ValentinKolb/pKV/lib/common"
	"github.com/ValentinKolb/pKV/lib/persist/fstore"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
)

var (
	log = logger.GetLogger("cli")

	fileStore *fstore.Store

	// KeyValueCommands represents the KV command group
	KeyValueCommands = &cobra.Command{
		Use:                "kv",
		Short:              "Read and write persisted values",
		PersistentPreRunE:  setupStore,
		PersistentPostRunE: printMetrics,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add store flags to the KV command
	util.SetupStoreFlags(KeyValueCommands)

	// Add subcommands
	KeyValueCommands.AddCommand(setCmd)
	KeyValueCommands.AddCommand(setIntCmd)
	KeyValueCommands.AddCommand(getCmd)
	KeyValueCommands.AddCommand(getIntCmd)
	KeyValueCommands.AddCommand(delCmd)
	KeyValueCommands.AddCommand(hasCmd)
	KeyValueCommands.AddCommand(keysCmd)
	KeyValueCommands.AddCommand(dumpCmd)
	KeyValueCommands.AddCommand(pathCmd)
	KeyValueCommands.AddCommand(configCmd)
}

// setupStore initializes the file store from the flags and environment
func setupStore(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	if err := util.InitLogging(); err != nil {
		return err
	}

	config := util.GetStoreConfig()
	log.Debugf("store configuration:%s", config.String())

	var err error
	fileStore, err = fstore.NewStore(nil, config)
	return err
}

// printMetrics writes the store metrics to stderr if requested
func printMetrics(_ *cobra.Command, _ []string) error {
	if util.MetricsEnabled() {
		common.WriteMetrics(os.Stderr)
	}
	return nil
}
