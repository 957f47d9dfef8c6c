package config

import (
	"path/filepath"

	"github.com/btcsuite/btcutil"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	defaultNetwork      = "main"
	defaultAppName      = "veda"
	defaultLogFilename  = "veda.log"
	defaultLogLevel     = "info"
	defaultDbType       = "leveldb"
	defaultDataDirname  = "data"
	defaultLogDirname   = "logs"
	defaultMaxLogAgeHrs = 24 * 7
)

var knownDbTypes = []string{"leveldb", "memdb"}

type Config struct {
	Chain     *Chain     `json:"chain" mapstructure:"chain"`
	P2P       *P2P       `json:"p2p" mapstructure:"p2p"`
	Log       *Log       `json:"log" mapstructure:"log"`
	Datastore *Datastore `json:"datastore" mapstructure:"datastore"`
}

type Chain struct {
	Network            string   `json:"network" mapstructure:"network"`
	DisableCheckpoints bool     `json:"disable_checkpoints" mapstructure:"disable_checkpoints"`
	AddCheckpoints     []string `json:"add_checkpoints" mapstructure:"add_checkpoints"`
}

type P2P struct {
	Seeds          string   `json:"seeds" mapstructure:"seeds"`
	AddPeer        []string `json:"add_peer" mapstructure:"add_peer"`
	ListenAddress  string   `json:"listen_address" mapstructure:"listen_address"`
	DisableDNSSeed bool     `json:"disable_dns_seed" mapstructure:"disable_dns_seed"`
}

type Log struct {
	LogDir        string `json:"log_dir" mapstructure:"log_dir"`
	LogLevel      string `json:"log_level" mapstructure:"log_level"`
	MaxAge        uint32 `json:"max_age" mapstructure:"max_age"`
	DisableCPrint bool   `json:"disable_cprint" mapstructure:"disable_cprint"`
}

type Datastore struct {
	Dir    string `json:"dir" mapstructure:"dir"`
	DBType string `json:"db_type" mapstructure:"db_type"`
}

// NewDefaultConfig returns a config for the main network rooted at the
// platform application data directory.
func NewDefaultConfig() *Config {
	home := btcutil.AppDataDir(defaultAppName, false)
	return &Config{
		Chain: &Chain{Network: defaultNetwork},
		P2P:   &P2P{},
		Log: &Log{
			LogDir:   filepath.Join(home, defaultLogDirname),
			LogLevel: defaultLogLevel,
			MaxAge:   defaultMaxLogAgeHrs,
		},
		Datastore: &Datastore{
			Dir:    filepath.Join(home, defaultDataDirname),
			DBType: defaultDbType,
		},
	}
}

// LoadConfig reads the config file at path over the defaults. An empty path
// returns the defaults. The result is checked with Check.
func LoadConfig(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path != "" {
		v := viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := v.Unmarshal(cfg); err != nil {
			return nil, errors.Wrapf(err, "decode config %s", path)
		}
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Check validates the values that can be checked without touching the
// network registry or the filesystem.
func (cfg *Config) Check() error {
	if cfg.Chain == nil || cfg.Log == nil || cfg.Datastore == nil || cfg.P2P == nil {
		return errors.Wrap(ErrInvalidParams, "config section missing")
	}
	if _, err := ParseNetwork(cfg.Chain.Network); err != nil {
		return err
	}
	if !validDbType(cfg.Datastore.DBType) {
		return errors.Wrapf(ErrInvalidDbType, "%q, expected one of %v", cfg.Datastore.DBType, knownDbTypes)
	}
	if _, err := ParseCheckpoints(cfg.Chain.AddCheckpoints); err != nil {
		return err
	}
	return nil
}

// Checkpoints returns the checkpoints a node on p should enforce. There are
// none when checkpoints are disabled. Otherwise the hard-coded ones are merged
// with those added in the config.
func (cfg *Config) Checkpoints(p *Params) ([]Checkpoint, error) {
	if cfg.Chain.DisableCheckpoints {
		return nil, nil
	}
	extra, err := ParseCheckpoints(cfg.Chain.AddCheckpoints)
	if err != nil {
		return nil, err
	}
	return MergeCheckpoints(p, extra)
}

// validDbType returns whether or not dbType is a supported database type.
func validDbType(dbType string) bool {
	for _, knownType := range knownDbTypes {
		if dbType == knownType {
			return true
		}
	}

	return false
}
