package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vedanetwork/veda-core/cmdutils"
	"github.com/vedanetwork/veda-core/config"
	"github.com/vedanetwork/veda-core/p2p"
	"github.com/vedanetwork/veda-core/vedautil"
	"github.com/vedanetwork/veda-core/wire"
)

const (
	flagOut      = "out"
	flagTimeout  = "timeout"
	flagConfig   = "config"
	flagReadonly = "readonly"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                4,
}

func paramsArg(args []string) (*config.Params, error) {
	return config.NewRegistry().Get(args[0])
}

func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the supported networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range config.NewRegistry().All() {
				fmt.Fprintf(out, "%-8s magic=%x port=%s genesis=%v\n",
					p.Name(), p.Identity.MessageStart, p.Identity.DefaultPort, p.GenesisHash)
			}
			return nil
		},
	}
}

func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <network>",
		Short: "dump every parameter of a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paramsArg(args)
			if err != nil {
				return err
			}
			dumper.Fdump(cmd.OutOrStdout(), p.Identity, p.Consensus, p.Policy, p.Checkpoints, p.CheckpointStats)
			return nil
		},
	}
}

func GenesisCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis <network>",
		Short: "rebuild the genesis block of a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paramsArg(args)
			if err != nil {
				return err
			}
			if err = printGenesis(cmd.OutOrStdout(), p); err != nil {
				return err
			}
			if fn := v.GetString(flagOut); fn != "" {
				return cmdutils.ExportGenesis(p, fn)
			}
			return nil
		},
	}
	cmd.Flags().StringP(flagOut, "o", "", "also export the block to this file, gzipped when it ends in .gz")
	return cmd
}

func printGenesis(out io.Writer, p *config.Params) error {
	block, err := config.CreateGenesisBlock(p.Genesis)
	if err != nil {
		return err
	}
	header, err := wire.HeaderBytes(&block.Header)
	if err != nil {
		return err
	}
	payout, err := vedautil.NewCodec(p).GenesisPayoutAddress()
	if err != nil {
		return err
	}
	coinbase := block.Transactions[0]

	fmt.Fprintf(out, "network:     %s\n", p.Name())
	fmt.Fprintf(out, "hash:        %v\n", wire.BlockHash(&block.Header))
	fmt.Fprintf(out, "merkle root: %v\n", block.Header.MerkleRoot)
	fmt.Fprintf(out, "time:        %d\n", block.Header.Timestamp.Unix())
	fmt.Fprintf(out, "bits:        %08x\n", block.Header.Bits)
	fmt.Fprintf(out, "nonce:       %d\n", block.Header.Nonce)
	fmt.Fprintf(out, "header:      %s\n", hex.EncodeToString(header))
	fmt.Fprintf(out, "coinbase:    %s\n", hex.EncodeToString(coinbase.TxIn[0].SignatureScript))
	fmt.Fprintf(out, "reward:      %v\n", vedautil.Amount(coinbase.TxOut[0].Value))
	fmt.Fprintf(out, "payout:      %s\n", payout)
	return nil
}

func SelfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "rebuild and check the parameters of every network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			registry := config.NewRegistry()
			for _, p := range registry.All() {
				if err := config.SelfTest(p); err != nil {
					return err
				}
				fmt.Fprintf(out, "%-8s ok\n", p.Name())
			}
			return registry.SelfTest()
		},
	}
}

func SeedsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seeds <network>",
		Short: "resolve the DNS seeds of a network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paramsArg(args)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), v.GetDuration(flagTimeout))
			defer cancel()
			for _, addr := range p2p.NewSeedResolver(p, nil).DNSSeeds(ctx) {
				fmt.Fprintln(cmd.OutOrStdout(), addr)
			}
			return nil
		},
	}
	cmd.Flags().Duration(flagTimeout, 10*time.Second, "lookup timeout")
	return cmd
}

func InitCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "select the configured network and prepare its data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(v.GetString(flagConfig))
			if err != nil {
				return err
			}
			if v.GetBool(flagVerbose) {
				if err = cmdutils.InitLogging(cfg); err != nil {
					return err
				}
			}
			node, close, err := cmdutils.MakeNode(context.Background(), cfg, v.GetBool(flagReadonly))
			if err != nil {
				return err
			}
			defer close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "network: %s\n", node.Params.Name())
			fmt.Fprintf(out, "datadir: %s\n", node.DB.Path())
			fmt.Fprintf(out, "listen:  %s\n", node.NodeInfo.ListenAddr)
			for _, seed := range node.Seeds {
				fmt.Fprintf(out, "seed:    %s\n", seed)
			}
			for _, peer := range node.AddPeers {
				fmt.Fprintf(out, "peer:    %s\n", peer)
			}
			if cp := node.Checkpointer.LatestCheckpoint(); cp != nil {
				fmt.Fprintf(out, "latest checkpoint: %d %v\n", cp.Height, cp.Hash)
			}
			return nil
		},
	}
	cmd.Flags().StringP(flagConfig, "c", "", "config file")
	cmd.Flags().Bool(flagReadonly, false, "open the data directory read-only")
	return cmd
}
