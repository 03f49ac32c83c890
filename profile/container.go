package profile

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goliatone/go-coerce/logger"
	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/copystructure"
)

var (
	DefaultDelimiter   = "."
	DefaultProfilePath = "config/profile.json"
	DefaultLoadTimeout = 30 * time.Second
)

type Validable interface {
	Validate() error
}

// normalizable lets decoded values canonicalize themselves before
// validation. Profile implements it.
type normalizable interface {
	normalize() error
}

// Container loads a profile struct from layered providers: defaults,
// files, environment variables, and flags, in priority order. C must be
// a pointer type.
type Container[C Validable] struct {
	K *koanf.Koanf

	base         C
	providers    []Provider
	loaders      []ProviderBuilder[C]
	mustValidate bool
	strictMerge  bool
	loadTimeout  time.Duration
	delimiter    string
	profilePath  string
	solvers      []Solver
	logger       logger.Logger
}

// New builds a container around base, usually profile.Default().
func New[C Validable](base C) *Container[C] {
	c := &Container[C]{
		base:         base,
		mustValidate: true,
		strictMerge:  true,
		delimiter:    DefaultDelimiter,
		loadTimeout:  DefaultLoadTimeout,
		profilePath:  DefaultProfilePath,
		logger:       logger.NewDefaultLogger("profile"),
		solvers:      []Solver{NewVariablesSolver("${", "}")},
	}
	c.newConfig()
	return c
}

func (c *Container[C]) newConfig() {
	c.K = koanf.NewWithConf(koanf.Conf{
		Delim:       c.delimiter,
		StrictMerge: c.strictMerge,
	})
}

func (c *Container[C]) WithValidation(v bool) *Container[C] {
	c.mustValidate = v
	return c
}

func (c *Container[C]) WithTimeout(timeout time.Duration) *Container[C] {
	c.loadTimeout = timeout
	return c
}

func (c *Container[C]) WithProfilePath(p string) *Container[C] {
	c.profilePath = p
	return c
}

func (c *Container[C]) WithSolver(slvrs ...Solver) *Container[C] {
	c.solvers = append(c.solvers, slvrs...)
	return c
}

func (c *Container[C]) WithLogger(l logger.Logger) *Container[C] {
	c.logger = l
	return c
}

func (c *Container[C]) WithProvider(factories ...ProviderBuilder[C]) *Container[C] {
	for _, factory := range factories {
		if factory != nil {
			c.loaders = append(c.loaders, factory)
		}
	}
	return c
}

func (c *Container[C]) Validate() error {
	if err := c.base.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "profile validation failed").
			WithTextCode("PROFILE_VALIDATION_FAILED")
	}
	return nil
}

func (c *Container[C]) MustLoad(ctx context.Context) {
	if err := c.Load(ctx); err != nil {
		panic(fmt.Sprintf("failed to load profile: %v", err))
	}
}

func (c *Container[C]) LoadWithDefaults() error {
	return c.Load(context.Background())
}

// Load runs every provider in priority order, resolves variable
// references, decodes the merged result through the coercion hooks, and
// validates the outcome.
func (c *Container[C]) Load(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.loadTimeout)
	defer cancel()

	// reset config state so removed keys do not linger between loads
	c.newConfig()

	if len(c.loaders) > 0 {
		c.providers = nil
		for i, factory := range c.loaders {
			provider, err := factory(c)
			if err != nil {
				return errors.Wrap(err, errors.CategoryOperation, "failed to create provider").
					WithTextCode("PROVIDER_CREATION_FAILED").
					WithMetadata(map[string]any{
						"factory_index":   i,
						"total_factories": len(c.loaders),
					})
			}
			c.providers = append(c.providers, provider)
		}
	}

	if len(c.providers) == 0 && c.profilePath != "" {
		c.logger.Debug("no providers specified, loading default file provider...")
		f := OptionalProvider(FileProvider[C](c.profilePath))
		p, err := f(c)
		if err != nil {
			return errors.Wrap(err, errors.CategoryOperation, "failed to create default file provider").
				WithTextCode("DEFAULT_PROVIDER_FAILED").
				WithMetadata(map[string]any{
					"profile_path": c.profilePath,
				})
		}
		c.providers = append(c.providers, p)
	}

	for i, src := range c.providers {
		if err := src.Validate(); err != nil {
			return errors.Wrap(err, errors.CategoryValidation, "invalid provider source type").
				WithTextCode("INVALID_PROVIDER_TYPE").
				WithMetadata(map[string]any{
					"source_type":    string(src.Type()),
					"provider_index": i,
				})
		}
	}

	sort.Slice(c.providers, func(i, j int) bool {
		return c.providers[i].Priority() < c.providers[j].Priority()
	})

	for i, source := range c.providers {
		c.logger.Debug("= loading source", "source_type", source.Type())
		if err := source.Load(ctx, c.K); err != nil {
			return errors.Wrap(err, errors.CategoryOperation, "failed to load profile from source").
				WithTextCode("PROFILE_LOAD_FAILED").
				WithMetadata(map[string]any{
					"source_type":   string(source.Type()),
					"source_index":  i,
					"total_sources": len(c.providers),
				})
		}
	}

	for _, solver := range c.solvers {
		solver.Solve(c.K)
	}

	decoded, err := c.decode()
	if err != nil {
		return err
	}

	if n, ok := any(decoded).(normalizable); ok {
		if err := n.normalize(); err != nil {
			return errors.Wrap(err, errors.CategoryValidation, "failed to normalize profile").
				WithTextCode("PROFILE_NORMALIZE_FAILED")
		}
	}

	c.assignBase(decoded)

	if c.mustValidate {
		if err := c.Validate(); err != nil {
			return err // already wrapped in Validate
		}
	}

	return nil
}

// decode clones the base so defaults survive, then unmarshals the merged
// provider data over the clone through the coercion hooks.
func (c *Container[C]) decode() (C, error) {
	var zero C

	cloned, err := copystructure.Copy(c.base)
	if err != nil {
		return zero, errors.Wrap(err, errors.CategoryOperation, "failed to clone base profile").
			WithTextCode("PROFILE_CLONE_FAILED")
	}
	target, ok := cloned.(C)
	if !ok {
		return zero, errors.New("cloned base has unexpected type", errors.CategoryOperation).
			WithTextCode("PROFILE_CLONE_FAILED")
	}

	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       DecodeHooks(),
			Result:           target,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := c.K.UnmarshalWithConf("", target, conf); err != nil {
		return zero, errors.Wrap(err, errors.CategoryOperation, "failed to unmarshal profile data").
			WithTextCode("PROFILE_UNMARSHAL_FAILED").
			WithMetadata(map[string]any{
				"delimiter":    c.delimiter,
				"strict_merge": c.strictMerge,
			})
	}

	return target, nil
}

// Raw returns the loaded profile value.
func (c *Container[C]) Raw() C {
	return c.base
}

func (c *Container[C]) assignBase(value C) {
	baseVal := reflect.ValueOf(&c.base).Elem()
	newVal := reflect.ValueOf(value)

	if baseVal.Kind() == reflect.Pointer && newVal.Kind() == reflect.Pointer && baseVal.Type() == newVal.Type() {
		if baseVal.IsNil() || newVal.IsNil() {
			baseVal.Set(newVal)
			return
		}
		baseVal.Elem().Set(newVal.Elem())
		return
	}
	baseVal.Set(newVal)
}
