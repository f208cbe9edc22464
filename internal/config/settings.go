package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/gorilla/schema"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type Validator interface {
	Validate() error
}

// Environ collects variables named PREFIX_SOME_KEY into "some_key" values.
func Environ(prefix string, environ []string) url.Values {
	values := url.Values{}
	prefix = strings.ToUpper(prefix) + "_"
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, prefix) {
			continue
		}
		values.Set(strings.ToLower(strings.TrimPrefix(k, prefix)), v)
	}
	return values
}

func key(flagName string) string {
	return strings.ReplaceAll(flagName, "-", "_")
}

// Load parses args and fills every dst from the environment and the
// flags given on the command line, flags taking precedence. Fields of
// dst that are set in neither keep their current values.
func Load(fs *pflag.FlagSet, prefix string, args []string, dsts ...any) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	values := Environ(prefix, os.Environ())
	fs.Visit(func(f *pflag.Flag) {
		values.Set(key(f.Name), f.Value.String())
	})

	for _, dst := range dsts {
		if err := decoder.Decode(dst, values); err != nil {
			return fmt.Errorf("unable to decode settings: %w", err)
		}
	}
	return nil
}

// Validate runs every validator and reports all failures at once.
func Validate(vs ...Validator) error {
	var result *multierror.Error
	for _, v := range vs {
		if err := v.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
