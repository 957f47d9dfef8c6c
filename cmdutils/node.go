package cmdutils

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vedanetwork/veda-core/blockchain"
	"github.com/vedanetwork/veda-core/config"
	"github.com/vedanetwork/veda-core/database/ldb"
	"github.com/vedanetwork/veda-core/logging"
	"github.com/vedanetwork/veda-core/p2p"
)

const (
	logFilename = "veda.log"
	chainDbName = "chain.db"

	// Version is announced to peers in the node info.
	Version = "1.0.0"

	defaultListenHost = "0.0.0.0"
	defaultMoniker    = "veda"
)

// Node bundles what a process needs once its network has been chosen.
type Node struct {
	Params       *config.Params
	Selector     *config.Selector
	DB           *ldb.ChainDb
	Checkpointer *blockchain.Checkpointer
	Resolver     *p2p.SeedResolver

	// NodeInfo describes the local node to peers.
	NodeInfo *p2p.NodeInfo
	// Seeds are the configured seeds followed by the DNS seeds of the
	// network, normalized and deduplicated.
	Seeds []string
	// AddPeers are the configured persistent peers.
	AddPeers []string
}

// InitLogging applies the log section of cfg.
func InitLogging(cfg *config.Config) error {
	if err := logging.Init(cfg.Log.LogDir, logFilename, cfg.Log.LogLevel, cfg.Log.MaxAge, false); err != nil {
		return err
	}
	logging.DisableCPrint(cfg.Log.DisableCPrint)
	return nil
}

// MakeNode self-tests every network, selects the configured one and opens the
// data directory for it. Seeds and peers of the p2p section are resolved with
// ctx. The returned func closes the data directory.
func MakeNode(ctx context.Context, cfg *config.Config, readonly bool) (*Node, func(), error) {
	if err := cfg.Check(); err != nil {
		return nil, nil, err
	}

	registry := config.NewRegistry()
	if err := registry.SelfTest(); err != nil {
		logging.CPrint(logging.ERROR, "network parameters self-test failed", logging.LogFormat{"err": err})
		return nil, nil, err
	}

	selector := config.NewSelector(registry)
	params, err := selector.Select(cfg.Chain.Network)
	if err != nil {
		return nil, nil, err
	}

	checkpoints, err := cfg.Checkpoints(params)
	if err != nil {
		return nil, nil, err
	}
	checkpointer, err := blockchain.NewCheckpointer(params, checkpoints)
	if err != nil {
		return nil, nil, err
	}

	listenAddr, err := listenAddress(cfg.P2P.ListenAddress, params.Identity.DefaultPort)
	if err != nil {
		return nil, nil, err
	}

	path := ChainDbPath(cfg, params)
	db, err := ldb.OpenDB(cfg.Datastore.DBType, path, readonly)
	if err != nil {
		return nil, nil, err
	}
	if err = db.CheckNetwork(params); err != nil {
		db.Close()
		return nil, nil, errors.Wrapf(err, "open %s", path)
	}

	close := func() {
		if err := db.Close(); err != nil {
			logging.CPrint(logging.WARN, "close chain db failed", logging.LogFormat{"path": path, "err": err})
		}
	}

	resolver := p2p.NewSeedResolver(params, nil)
	seeds := resolver.NormalizeSeeds(ctx, cfg.P2P.Seeds)
	if !cfg.P2P.DisableDNSSeed {
		seeds = append(seeds, resolver.DNSSeeds(ctx)...)
	}
	port := params.Identity.DefaultPort

	node := &Node{
		Params:       params,
		Selector:     selector,
		DB:           db,
		Checkpointer: checkpointer,
		Resolver:     resolver,
		NodeInfo:     p2p.NewNodeInfo(params, moniker(), listenAddr, Version),
		Seeds:        p2p.NormalizeAddresses(seeds, port),
		AddPeers:     p2p.NormalizeAddresses(cfg.P2P.AddPeer, port),
	}
	logging.CPrint(logging.INFO, "node prepared", logging.LogFormat{
		"network":     params.Name(),
		"db_type":     cfg.Datastore.DBType,
		"path":        path,
		"checkpoints": len(checkpoints),
		"listen":      listenAddr,
		"seeds":       len(node.Seeds),
		"add_peers":   len(node.AddPeers),
	})
	return node, close, nil
}

// listenAddress fills in the wildcard host and the network default port of a
// configured listen address.
func listenAddress(addr, defaultPort string) (string, error) {
	if addr == "" {
		addr = defaultListenHost
	}
	addr = p2p.NormalizeAddress(addr, defaultPort)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", errors.Wrapf(config.ErrInvalidParams, "listen address %q: %v", addr, err)
	}
	if _, err = strconv.ParseUint(port, 10, 16); err != nil {
		return "", errors.Wrapf(config.ErrInvalidParams, "listen address %q has invalid port", addr)
	}
	if host == "" {
		addr = net.JoinHostPort(defaultListenHost, port)
	}
	return addr, nil
}

func moniker() string {
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return defaultMoniker
}

// ChainDbPath returns where the chain database of p lives under the datastore
// directory. Every network gets its own subdirectory.
func ChainDbPath(cfg *config.Config, p *config.Params) string {
	return filepath.Join(cfg.Datastore.Dir, p.Name(), chainDbName)
}
