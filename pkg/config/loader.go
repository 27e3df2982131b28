package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry is a single cached configuration, parsed at most once.
type entry struct {
	once  sync.Once
	value any
	err   error
}

// cache holds parsed configurations keyed by type name and variable prefix.
type cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func (c *cache) get(key string) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

var (
	globalCache = &cache{entries: make(map[string]*entry)}

	defaultEnvLoaded sync.Once
)

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix string
}

// WithPrefix reads every variable as prefix+NAME. Configurations loaded with
// different prefixes are cached separately.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// Load parses environment variables into v according to its `env` tags.
//
// The default .env file is read once per process, if present. Each
// configuration type (and prefix) is parsed once; later calls copy the cached
// value, including a cached parse error.
//
// Example:
//
//	type ProfileConfig struct {
//		Name string `env:"PROFILE" envDefault:"iphone-6"`
//	}
//
//	var cfg ProfileConfig
//	if err := config.Load(&cfg, config.WithPrefix("DEVICEKIT_")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// A missing .env file is not an error.
		_ = godotenv.Load()
	})

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	e := globalCache.get(o.prefix + getTypeName[T]())
	e.once.Do(func() {
		var parsed T
		if err := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		return e.err
	}

	cached, ok := e.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = cached
	return nil
}

// MustLoad is like Load but panics on failure. Use it for configuration the
// program cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration so the next Load parses again.
// It is meant for tests.
func Reset() {
	globalCache.mu.Lock()
	globalCache.entries = make(map[string]*entry)
	globalCache.mu.Unlock()
}

func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
