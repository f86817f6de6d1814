// Package cmd provides the root command and CLI setup for excgen.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"excgen.dev/pkg/excgen/internal/adapter"
	"excgen.dev/pkg/excgen/internal/controller"
	"excgen.dev/pkg/excgen/internal/domain"
)

var shardStore adapter.ShardStore
var ui controller.UI
var workflow domain.Workflow

// shardAndOverwriteFlag switches the root command from printing to writing shard files.
var shardAndOverwriteFlag bool

var shardSizeFlag int
var shardTemplateFlag string
var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	shardStore = adapter.NewLocalShardStore()
	workflow = domain.NewWorkflow(shardStore, ui)
}

const rootLongDescription = `Excgen generates tests for the interaction of return and throw with
try/catch/finally blocks in inlined functions. Every combination of 17 test
shape flags is enumerated, pruned, and symbolically executed to predict the
result and side-effect count each generated test must observe.

Without flags all tests are printed to standard output. With
--shard-and-overwrite they are written to fixed-size shard files named after
the shard template, overwriting existing files.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "excgen",
		Short: "Try/catch/finally inlining test generator",
		Long:  rootLongDescription,
		Args:  cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !shardAndOverwriteFlag {
				return workflow.Print(cmd.Context(), cmd.OutOrStdout())
			}

			return workflow.Shard(cmd.Context(), shardArgs())
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&shardAndOverwriteFlag, shardAndOverwriteFlagName, false, "write tests to shard files, overwriting existing ones")

	cmd.PersistentFlags().IntVar(&shardSizeFlag, shardSizeFlagName, viper.GetInt(shardSizeConfigKey), "number of tests per shard file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(shardSizeFlagName), shardSizeConfigKey)

	cmd.PersistentFlags().StringVar(&shardTemplateFlag, shardTemplateFlagName, viper.GetString(shardTemplateConfigKey), "shard file name; {shard} is replaced by the 1-based shard index")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(shardTemplateFlagName), shardTemplateConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from config)")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func shardArgs() domain.ShardArgs {
	return domain.ShardArgs{
		Size:     viper.GetInt(shardSizeConfigKey),
		Template: viper.GetString(shardTemplateConfigKey),
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
