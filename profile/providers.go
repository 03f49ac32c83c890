package profile

import (
	"context"
	goerrors "errors"
	"os"
	"strings"
	"syscall"

	"github.com/goliatone/go-coerce/envmap"
	"github.com/goliatone/go-errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// ProviderBuilder creates a provider bound to a container.
type ProviderBuilder[C Validable] func(*Container[C]) (Provider, error)

type ProviderType string

type Provider interface {
	Type() ProviderType
	Priority() int
	Validate() error
	Load(context.Context, *koanf.Koanf) error
}

// Loader is the one Provider implementation; builders differ only in the
// load closure they install.
type Loader struct {
	order        int
	providerType ProviderType
	load         func(context.Context, *koanf.Koanf) error
}

func (l *Loader) Priority() int {
	return l.order
}

func (l *Loader) Type() ProviderType {
	return l.providerType
}

func (l *Loader) Load(ctx context.Context, k *koanf.Koanf) error {
	return l.load(ctx, k)
}

func (l *Loader) Validate() error {
	return l.providerType.validate()
}

const (
	ProviderTypeDefault   ProviderType = "default"
	ProviderTypeLocalFile ProviderType = "file"
	ProviderTypeEnv       ProviderType = "env"
	ProviderTypeFlag      ProviderType = "pflag"
	ProviderTypeStruct    ProviderType = "struct"
)

type Priority int

// WithOffset nudges a provider around its band, e.g.
// FileProvider("local.json", int(PriorityFile.WithOffset(10))).
func (p Priority) WithOffset(offset int) Priority {
	return Priority(int(p) + offset)
}

var (
	PriorityDefaults Priority = 0
	PriorityStruct   Priority = 10
	PriorityFile     Priority = 20
	PriorityEnv      Priority = 30
	PriorityFlags    Priority = 40
)

var (
	DefaultEnvPrefix    = "EDITOR_"
	DefaultEnvDelimiter = "__" // so composed_words survive the mapping
)

func (s ProviderType) String() string {
	return string(s)
}

func (p ProviderType) validate() error {
	switch p {
	case ProviderTypeDefault, ProviderTypeLocalFile, ProviderTypeEnv, ProviderTypeFlag, ProviderTypeStruct:
		return nil
	default:
		return errors.New("invalid loader type", errors.CategoryValidation).
			WithTextCode("INVALID_LOADER_TYPE").
			WithMetadata(map[string]any{
				"loader_type": string(p),
				"valid_types": []string{
					string(ProviderTypeDefault),
					string(ProviderTypeLocalFile),
					string(ProviderTypeEnv),
					string(ProviderTypeFlag),
					string(ProviderTypeStruct),
				},
			})
	}
}

func getOrder(def Priority, order ...int) int {
	if len(order) > 0 {
		return order[0]
	}
	return int(def)
}

// DefaultValuesProvider loads a plain map of raw values at the lowest
// priority.
func DefaultValuesProvider[C Validable](def map[string]any, order ...int) ProviderBuilder[C] {
	return func(c *Container[C]) (Provider, error) {
		kprovider := confmap.Provider(def, c.delimiter)

		prv := &Loader{
			providerType: ProviderTypeDefault,
			order:        getOrder(PriorityDefaults, order...),
			load: func(ctx context.Context, k *koanf.Koanf) error {
				if err := k.Load(kprovider, nil); err != nil {
					return errors.Wrap(err, errors.CategoryOperation, "failed to load default values").
						WithTextCode("DEFAULT_VALUES_LOAD_FAILED").
						WithMetadata(map[string]any{
							"values_count": len(def),
						})
				}
				return nil
			},
		}

		return prv, nil
	}
}

// FileProvider loads a profile file; the format is inferred from the
// extension (json, yaml, toml).
func FileProvider[C Validable](filepath string, orders ...int) ProviderBuilder[C] {
	filetype := inferFiletype(filepath)

	return func(c *Container[C]) (Provider, error) {
		parser := filetype.Parser()
		kprovider := file.Provider(filepath)

		p := &Loader{
			providerType: ProviderTypeLocalFile,
			order:        getOrder(PriorityFile, orders...),
			load: func(ctx context.Context, k *koanf.Koanf) error {
				c.logger.Debug("file provider", "filepath", filepath)
				merger := koanf.WithMergeFunc(MergeIgnoringNull)
				if err := k.Load(kprovider, parser, merger); err != nil {
					return errors.Wrap(err, errors.CategoryOperation, "failed to load profile from file").
						WithTextCode("FILE_LOAD_FAILED").
						WithMetadata(map[string]any{
							"filepath":  filepath,
							"file_type": string(filetype),
						})
				}
				return nil
			},
		}
		return p, nil
	}
}

// EnvProvider loads prefixed environment variables, nesting on delim:
// EDITOR_MARGIN=0.3s, EDITOR_EXPORT__CODEC=h264.
func EnvProvider[C Validable](prefix, delim string, order ...int) ProviderBuilder[C] {
	return func(c *Container[C]) (Provider, error) {
		prv := &Loader{
			providerType: ProviderTypeEnv,
			order:        getOrder(PriorityEnv, order...),
			load: func(ctx context.Context, k *koanf.Koanf) error {
				parser := json.Parser()
				merger := koanf.WithMergeFunc(MergeIgnoringNull)
				kprov := envmap.Provider(prefix, ".", func(s string) string {
					return strings.Replace(strings.ToLower(
						strings.TrimPrefix(s, prefix)), delim, ".", -1)
				})

				kprov.SetLogger(c.logger)

				c.logger.Debug("env provider")
				if err := k.Load(kprov, parser, merger); err != nil {
					return errors.Wrap(err, errors.CategoryOperation, "failed to load environment variables").
						WithTextCode("ENV_LOAD_FAILED").
						WithMetadata(map[string]any{
							"prefix":    prefix,
							"delimiter": delim,
						})
				}
				return nil
			},
		}

		return prv, nil
	}
}

// FlagsProvider loads a parsed pflag set at the highest priority. Use
// BindFlags to register coercion-aware flags on the set first.
func FlagsProvider[C Validable](flagset *pflag.FlagSet, order ...int) ProviderBuilder[C] {
	return func(c *Container[C]) (Provider, error) {
		if flagset == nil {
			return &Loader{}, errors.New("flagset cannot be nil", errors.CategoryBadInput).
				WithTextCode("NIL_FLAGSET")
		}

		prv := &Loader{
			providerType: ProviderTypeFlag,
			order:        getOrder(PriorityFlags, order...),
			load: func(ctx context.Context, k *koanf.Koanf) error {
				c.logger.Debug("flags provider")
				prv := posflag.Provider(flagset, c.delimiter, k)
				if err := k.Load(prv, nil); err != nil {
					return errors.Wrap(err, errors.CategoryOperation, "failed to load profile from posix flags").
						WithTextCode("FLAGS_LOAD_FAILED").
						WithMetadata(map[string]any{
							"delimiter": c.delimiter,
						})
				}
				return nil
			},
		}

		return prv, nil
	}
}

// StructProvider layers an already-populated profile struct.
func StructProvider[C Validable](v Validable, order ...int) ProviderBuilder[C] {
	if v == nil {
		return func(c *Container[C]) (Provider, error) {
			return &Loader{}, errors.New("struct cannot be nil", errors.CategoryBadInput).
				WithTextCode("NIL_STRUCT")
		}
	}

	return func(c *Container[C]) (Provider, error) {
		kprv := structs.Provider(v, "koanf")

		prv := &Loader{
			providerType: ProviderTypeStruct,
			order:        getOrder(PriorityStruct, order...),
			load: func(ctx context.Context, k *koanf.Koanf) error {
				c.logger.Debug("struct provider")
				merger := koanf.WithMergeFunc(MergeIgnoringNull)
				if err := k.Load(kprv, nil, merger); err != nil {
					return errors.Wrap(err,
						errors.CategoryOperation,
						"failed to load profile from struct",
					).
						WithTextCode("STRUCT_LOAD_FAILED")
				}
				return nil
			},
		}
		return prv, nil
	}
}

type ErrorFilter func(err error) bool

// DefaultErrorFilter ignores absent files but surfaces everything else,
// e.g. a parse failure in a file that does exist.
func DefaultErrorFilter(allowedErrors ...error) ErrorFilter {
	return func(err error) bool {
		if err == nil {
			return false
		}

		if len(allowedErrors) == 0 {
			return os.IsNotExist(err) || goerrors.Is(err, syscall.ENOENT)
		}

		for _, allowed := range allowedErrors {
			if goerrors.Is(err, allowed) {
				return true
			}
		}

		return false
	}
}

// OptionalProvider wraps a provider so errors accepted by the filter are
// ignored.
func OptionalProvider[C Validable](f ProviderBuilder[C], errIgnoreFuncs ...ErrorFilter) ProviderBuilder[C] {
	errIgnore := DefaultErrorFilter()
	if len(errIgnoreFuncs) > 0 {
		errIgnore = errIgnoreFuncs[0]
	}

	return func(c *Container[C]) (Provider, error) {
		baseProvider, err := f(c)
		if err != nil {
			return &Loader{}, err
		}

		p := &Loader{
			providerType: baseProvider.Type(),
			order:        baseProvider.Priority(),
			load: func(ctx context.Context, k *koanf.Koanf) error {
				if err := baseProvider.Load(ctx, k); err != nil {
					if errIgnore(err) {
						c.logger.Debug("optional provider skipped", "source_type", baseProvider.Type())
						return nil
					}
					return err
				}
				return nil
			},
		}
		return p, nil
	}
}
