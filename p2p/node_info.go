package p2p

import (
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vedanetwork/veda-core/config"
)

var ErrIncompatiblePeer = errors.New("incompatible peer")

// NodeInfo is exchanged during the handshake.
type NodeInfo struct {
	Moniker    string   `json:"moniker"`
	Network    string   `json:"network"`
	Magic      string   `json:"magic"`
	Genesis    string   `json:"genesis"`
	RemoteAddr string   `json:"remote_addr"`
	ListenAddr string   `json:"listen_addr"`
	Version    string   `json:"version"` // major.minor.revision
	Other      []string `json:"other"`   // other application specific data
}

// NewNodeInfo describes the local node running on p.
func NewNodeInfo(p *config.Params, moniker, listenAddr, version string) *NodeInfo {
	return &NodeInfo{
		Moniker:    moniker,
		Network:    p.Name(),
		Magic:      hex.EncodeToString(p.Identity.MessageStart[:]),
		Genesis:    p.GenesisHash.String(),
		ListenAddr: listenAddr,
		Version:    version,
	}
}

// CompatibleWith checks if two NodeInfo are compatible with each other.
func (info *NodeInfo) CompatibleWith(other *NodeInfo) error {
	if info.Network != other.Network {
		return errors.Wrapf(ErrIncompatiblePeer, "peer is on a different network. Peer network: %v, node network: %v", other.Network, info.Network)
	}
	if info.Magic != other.Magic {
		return errors.Wrapf(ErrIncompatiblePeer, "peer uses message start %s, node uses %s", other.Magic, info.Magic)
	}
	if info.Genesis != other.Genesis {
		return errors.Wrapf(ErrIncompatiblePeer, "peer genesis %s, node genesis %s", other.Genesis, info.Genesis)
	}
	if majorVersion(other.Version) == "" || majorVersion(info.Version) != majorVersion(other.Version) {
		return errors.Wrapf(ErrIncompatiblePeer, "major version is not compatible, peer version: %s, node version: %s", other.Version, info.Version)
	}
	return nil
}

func majorVersion(version string) string {
	return strings.SplitN(version, ".", 2)[0]
}

// ListenHostPort splits the advertised listen address.
func (info *NodeInfo) ListenHostPort() (string, uint16, error) {
	host, port, err := net.SplitHostPort(info.ListenAddr)
	if err != nil {
		return "", 0, errors.Wrapf(ErrIncompatiblePeer, "listen address %q: %v", info.ListenAddr, err)
	}
	n, err := strconv.ParseUint(port, 10, 16)
	if err != nil || n == 0 {
		return "", 0, errors.Wrapf(ErrIncompatiblePeer, "listen address %q has invalid port", info.ListenAddr)
	}
	return host, uint16(n), nil
}

// DialAddr returns where an inbound peer accepts connections: the host it
// connected from with the port it listens on. A peer that advertises no
// usable port is assumed to listen on defaultPort.
func (info *NodeInfo) DialAddr(defaultPort string) (string, error) {
	host, _, err := net.SplitHostPort(info.RemoteAddr)
	if err != nil {
		return "", errors.Wrapf(ErrIncompatiblePeer, "remote address %q: %v", info.RemoteAddr, err)
	}
	port := defaultPort
	if _, n, err := info.ListenHostPort(); err == nil {
		port = strconv.Itoa(int(n))
	}
	return net.JoinHostPort(host, port), nil
}

func (info NodeInfo) String() string {
	return fmt.Sprintf("NodeInfo{moniker: %v, network: %v [magic %v listen %v], version: %v (%v)}", info.Moniker, info.Network, info.Magic, info.ListenAddr, info.Version, info.Other)
}
