package cache

import (
	"time"

	"github.com/goliatone/go-lifecycle/internal/cacheinfra"
)

// Policy selects how long cached instances survive.
type Policy = cacheinfra.Policy

// Store policies, see cacheinfra for their semantics.
const (
	PolicyWeak    = cacheinfra.PolicyWeak
	PolicyStrong  = cacheinfra.PolicyStrong
	PolicyBounded = cacheinfra.PolicyBounded
)

// ConfigError names the first invalid field of a Config.
type ConfigError = cacheinfra.ConfigError

// Config exposes instance store configuration options for consumers of the cache package.
type Config struct {
	Policy             Policy
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
	EvictionInterval   time.Duration
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewInstanceStore constructs the store selected by cfg.Policy.
func NewInstanceStore[T any](cfg Config) (InstanceStore[T], error) {
	store, err := cacheinfra.NewStore[T](cfg.toInternal())
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Policy:             c.Policy,
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Policy:             cfg.Policy,
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
	}
}
