package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vedanetwork/veda-core/config"
	"github.com/vedanetwork/veda-core/consensus/forks"
)

const flagTime = "time"

// RulesCmd prints the height switches and deployment states in force for a
// block.
func RulesCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules <network> <height>",
		Short: "show the consensus rules in force at a height",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paramsArg(args)
			if err != nil {
				return err
			}
			height, err := strconv.ParseInt(args[1], 10, 32)
			if err != nil || height < 0 {
				return fmt.Errorf("invalid height %q", args[1])
			}
			medianTime := v.GetInt64(flagTime)
			if medianTime == 0 {
				medianTime = time.Now().Unix()
			}

			c := &p.Consensus
			h := int32(height)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "difficulty:          %v\n", forks.GetDifficultyAlgorithm(c, h))
			fmt.Fprintf(out, "retarget:            %v\n", forks.IsRetargetHeight(c, h))
			fmt.Fprintf(out, "bip34:               %v\n", forks.EnforceBIP34(c, h))
			fmt.Fprintf(out, "halvings:            %d\n", forks.HalvingCount(c, h))
			fmt.Fprintf(out, "masternode payments: %v (share %d%%)\n",
				forks.IsMasternodePaymentsStarted(c, h), forks.MasternodePaymentPercent(c, h))
			fmt.Fprintf(out, "budget payment:      %v\n", forks.IsBudgetPaymentBlock(c, h))
			fmt.Fprintf(out, "superblock:          %v\n", forks.IsSuperblockTriggerHeight(c, h))
			for id := config.DeploymentID(0); id < config.DefinedDeployments; id++ {
				fmt.Fprintf(out, "deployment %-9s bit %-2d %s, window starts at %d\n",
					id, c.Deployments[id].Bit, forks.DeploymentTimeState(c, id, medianTime),
					forks.DeploymentPeriodStart(c, id, h))
			}
			return nil
		},
	}
	cmd.Flags().Int64(flagTime, 0, "median time past used for deployment states, defaults to now")
	return cmd
}
