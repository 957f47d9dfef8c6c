package config

import (
	"github.com/pkg/errors"
	"github.com/vedanetwork/veda-core/logging"
)

// Registry holds the parameters of every supported network. All bundles are
// built when the registry is created, regardless of which one is used.
type Registry struct {
	params [numNetworks]*Params
}

// NewRegistry builds the parameters of main, test and regtest.
func NewRegistry() *Registry {
	r := &Registry{}
	r.params[MainNet] = mainNetParams()
	r.params[TestNet] = testNetParams()
	r.params[RegTest] = regTestParams()
	return r
}

// Get returns the parameters of the named network. An unrecognized name is a
// configuration error that identifies the name.
func (r *Registry) Get(name string) (*Params, error) {
	n, err := ParseNetwork(name)
	if err != nil {
		return nil, err
	}
	return r.params[n], nil
}

// Params returns the parameters of n.
func (r *Registry) Params(n Network) *Params {
	if n >= numNetworks {
		return nil
	}
	return r.params[n]
}

// Names returns the recognized network names.
func (r *Registry) Names() []string {
	names := make([]string, 0, numNetworks)
	for _, n := range Networks() {
		names = append(names, n.String())
	}
	return names
}

// All returns every bundle in Network order.
func (r *Registry) All() []*Params {
	all := make([]*Params, 0, numNetworks)
	for _, n := range Networks() {
		all = append(all, r.params[n])
	}
	return all
}

// SelfTest checks every bundle, then checks that no two networks share a
// message start or a default port.
func (r *Registry) SelfTest() error {
	magics := make(map[[4]byte]string)
	ports := make(map[string]string)
	for _, p := range r.All() {
		if err := SelfTest(p); err != nil {
			return err
		}
		if other, ok := magics[p.Identity.MessageStart]; ok {
			return errors.Wrapf(ErrInvalidParams, "%s and %s share message start %x",
				other, p.Name(), p.Identity.MessageStart)
		}
		magics[p.Identity.MessageStart] = p.Name()
		if other, ok := ports[p.Identity.DefaultPort]; ok {
			return errors.Wrapf(ErrInvalidParams, "%s and %s share default port %s",
				other, p.Name(), p.Identity.DefaultPort)
		}
		ports[p.Identity.DefaultPort] = p.Name()
	}
	logging.CPrint(logging.DEBUG, "network parameters self-test passed", logging.LogFormat{"networks": r.Names()})
	return nil
}
