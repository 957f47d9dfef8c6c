package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vedanetwork/veda-core/logging"
)

const flagVerbose = "verbose"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cobra.EnableCommandSorting = false
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "vedaparams",
		Short:         "Inspect and verify the parameters of the veda networks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			logging.DisableCPrint(!v.GetBool(flagVerbose))
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolP(flagVerbose, "v", false, "print log records to stdout")

	rootCmd.AddCommand(
		ListCmd(),
		ShowCmd(),
		GenesisCmd(v),
		RulesCmd(v),
		SelfTestCmd(),
		SeedsCmd(v),
		InitCmd(v),
	)
	return rootCmd
}
