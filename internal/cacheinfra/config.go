package cacheinfra

import (
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/viccon/sturdyc"
)

// Policy selects how long cached instances survive.
type Policy string

const (
	// PolicyWeak keeps an entry only while some caller still references the
	// instance. This is the default.
	PolicyWeak Policy = "weak"

	// PolicyStrong keeps every entry until it is deleted or the store is cleared.
	PolicyStrong Policy = "strong"

	// PolicyBounded keeps entries in a sturdyc client, evicting by capacity and TTL.
	PolicyBounded Policy = "bounded"
)

// Config holds the configuration for an instance store.
type Config struct {
	// Policy selects the store backend. Empty means PolicyWeak.
	Policy Policy

	// Capacity defines the maximum number of entries a bounded store keeps.
	// Must be greater than 0 for PolicyBounded.
	Capacity int

	// NumShards determines the number of sturdyc shards.
	// Must be greater than 0 for PolicyBounded. Default: 16
	NumShards int

	// TTL is how long a bounded entry lives.
	// Must be greater than 0 for PolicyBounded.
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the bounded store reaches its capacity. Must be between 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often expired entries are swept.
	// Zero value uses the sturdyc default.
	EvictionInterval time.Duration
}

// DefaultConfig returns a weak-policy Config whose bounded settings are
// ready to use if the policy is switched.
func DefaultConfig() Config {
	return Config{
		Policy:             PolicyWeak,
		Capacity:           1024,
		NumShards:          16,
		TTL:                time.Hour,
		EvictionPercentage: 10,
	}
}

// ToSturdycOptions converts the Config to sturdyc.Option slice.
// Capacity, NumShards, TTL, and EvictionPercentage are passed directly to
// sturdyc.New() and are not included.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks if the configuration values are valid.
// Returns a *ConfigError naming the first offending field.
func (c Config) Validate() error {
	bounded := c.Policy == PolicyBounded

	err := validation.ValidateStruct(&c,
		validation.Field(&c.Policy, validation.In(PolicyWeak, PolicyStrong, PolicyBounded)),
		validation.Field(&c.Capacity, validation.When(bounded, validation.Required, validation.Min(1))),
		validation.Field(&c.NumShards, validation.When(bounded, validation.Required, validation.Min(1))),
		validation.Field(&c.TTL, validation.When(bounded, validation.Required, validation.Min(time.Duration(1)))),
		validation.Field(&c.EvictionPercentage, validation.When(bounded, validation.Required, validation.Min(1), validation.Max(100))),
		validation.Field(&c.EvictionInterval, validation.Min(time.Duration(0))),
	)
	if err == nil {
		return nil
	}

	errs, ok := err.(validation.Errors)
	if !ok {
		return &ConfigError{Field: "Config", Message: err.Error()}
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return &ConfigError{Field: fields[0], Message: errs[fields[0]].Error()}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}
