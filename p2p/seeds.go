package p2p

import (
	"context"
	"math/rand"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	"github.com/pkg/errors"
	"github.com/vedanetwork/veda-core/config"
	"github.com/vedanetwork/veda-core/logging"
)

const (
	seedCacheSize = 64
	seedCacheTTL  = 10 * time.Minute
)

// Resolver looks up the addresses of a host. *net.Resolver implements it.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

type cachedLookup struct {
	addrs   []net.IPAddr
	expires time.Time
}

// SeedResolver turns seed hosts into dialable host:port strings using the
// default port of one network. Lookups are cached for a short while.
//
// This type is safe for concurrent access.
type SeedResolver struct {
	params   *config.Params
	resolver Resolver

	mu    sync.Mutex
	cache *lru.Cache
	rand  *rand.Rand
	now   func() time.Time
}

// NewSeedResolver returns a SeedResolver for p. A nil resolver uses the
// system resolver.
func NewSeedResolver(p *config.Params, resolver Resolver) *SeedResolver {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &SeedResolver{
		params:   p,
		resolver: resolver,
		cache:    lru.New(seedCacheSize),
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// NormalizeAddress returns addr with the passed default port appended if
// there is not already a port specified.
func NormalizeAddress(addr, defaultPort string) string {
	_, _, err := net.SplitHostPort(addr)
	if err != nil {
		return net.JoinHostPort(addr, defaultPort)
	}
	return addr
}

// NormalizeAddresses returns a new slice with all the passed peer addresses
// normalized with the given default port, and all duplicates removed.
func NormalizeAddresses(addrs []string, defaultPort string) []string {
	result := make([]string, 0, len(addrs))
	seen := make(map[string]struct{}, len(addrs))
	for _, addr := range addrs {
		addr = NormalizeAddress(addr, defaultPort)
		if _, ok := seen[addr]; ok {
			continue
		}
		seen[addr] = struct{}{}
		result = append(result, addr)
	}
	return result
}

// NormalizeSeed accepts four types of params:
//   (1) [IPV4/IPV6]
//   (2) [IPV4/IPV6]:[PORT]
//   (3) [DOMAIN]
//   (4) [DOMAIN]:[PORT]
// A missing port becomes the network default port and a domain is replaced by
// one of its addresses.
func (s *SeedResolver) NormalizeSeed(ctx context.Context, seed string) (string, error) {
	var host, port string
	if ip := net.ParseIP(strings.Trim(seed, "[]")); ip != nil {
		host = ip.String()
	} else {
		if !strings.Contains(seed, ":") {
			seed += ":"
		}
		var err error
		host, port, err = net.SplitHostPort(seed)
		if err != nil {
			return "", err
		}
	}

	if port == "" {
		port = s.params.Identity.DefaultPort
	}
	portN, err := strconv.Atoi(port)
	if err != nil {
		return "", errors.Wrapf(err, "invalid port %q", port)
	}
	if portN < 0 || portN > 65535 {
		return "", errors.Errorf("invalid port %d", portN)
	}

	if ip := net.ParseIP(host); ip == nil {
		addrs, err := s.lookup(ctx, host)
		if err != nil {
			return "", err
		}
		host = s.pick(addrs).String()
	}
	return net.JoinHostPort(host, port), nil
}

// NormalizeSeeds normalizes seeds joined with ','. Invalid seeds are logged
// and skipped.
func (s *SeedResolver) NormalizeSeeds(ctx context.Context, inputs string) []string {
	inputs = strings.Replace(inputs, " ", "", -1)
	if inputs == "" {
		return nil
	}
	seeds := make([]string, 0)
	for _, seed := range strings.Split(inputs, ",") {
		hostport, err := s.NormalizeSeed(ctx, seed)
		if err != nil {
			logging.CPrint(logging.WARN, "invalid seed", logging.LogFormat{"seed": seed, "err": err})
			continue
		}
		seeds = append(seeds, hostport)
	}
	return NormalizeAddresses(seeds, s.params.Identity.DefaultPort)
}

// DNSSeeds resolves the built-in seed list of the network. Every address of a
// seed host is returned; hosts that fail to resolve are logged and skipped.
func (s *SeedResolver) DNSSeeds(ctx context.Context) []string {
	port := s.params.Identity.DefaultPort
	result := make([]string, 0, len(s.params.Identity.DNSSeeds))
	for _, seed := range s.params.Identity.DNSSeeds {
		if ip := net.ParseIP(seed.Host); ip != nil {
			result = append(result, net.JoinHostPort(ip.String(), port))
			continue
		}
		addrs, err := s.lookup(ctx, seed.Host)
		if err != nil {
			logging.CPrint(logging.WARN, "dns seed lookup failed", logging.LogFormat{"seed": seed.Name, "host": seed.Host, "err": err})
			continue
		}
		for _, addr := range addrs {
			result = append(result, net.JoinHostPort(addr.IP.String(), port))
		}
	}
	return NormalizeAddresses(result, port)
}

func (s *SeedResolver) lookup(ctx context.Context, host string) ([]net.IPAddr, error) {
	s.mu.Lock()
	if v, ok := s.cache.Get(host); ok {
		entry := v.(*cachedLookup)
		if s.now().Before(entry.expires) {
			s.mu.Unlock()
			return entry.addrs, nil
		}
		s.cache.Remove(host)
	}
	s.mu.Unlock()

	addrs, err := s.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, errors.Wrapf(err, "lookup %s", host)
	}
	if len(addrs) == 0 {
		return nil, errors.Errorf("lookup %s: no addresses", host)
	}

	s.mu.Lock()
	s.cache.Add(host, &cachedLookup{addrs: addrs, expires: s.now().Add(seedCacheTTL)})
	s.mu.Unlock()
	return addrs, nil
}

func (s *SeedResolver) pick(addrs []net.IPAddr) net.IP {
	s.mu.Lock()
	defer s.mu.Unlock()
	return addrs[s.rand.Intn(len(addrs))].IP
}
