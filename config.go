package gopages

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidRoute = errors.New("route must contain the " + RoutePlaceholder + " placeholder")

// Config is the file form of a Paginator.
//
//	target: notes
//	factor: 10
//	route: notes/{n}/index.html
type Config struct {
	// Target - name of the dependency to paginate.
	Target string `yaml:"target" json:"target"`
	// Factor - maximum number of items per page. Defaults to DefaultFactor.
	Factor int `yaml:"factor" json:"factor"`
	// Route - output path template, see PatternRouter.
	Route string `yaml:"route" json:"route"`
}

// DefaultConfig returns a Config with DefaultFactor and no target or route.
func DefaultConfig() Config {
	return Config{
		Factor: DefaultFactor,
	}
}

// LoadConfig decodes a YAML config from r on top of DefaultConfig. Unknown
// keys are rejected. The result is not validated.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("cannot load config: empty document")
		}

		return Config{}, fmt.Errorf("cannot load config: %w", err)
	}

	return cfg, nil
}

// ReadConfigFile loads the YAML config stored at path.
func ReadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// Validate checks every field; the first problem found is returned.
func (c Config) Validate() error {
	if c.Target == "" {
		return ErrEmptyTarget
	}
	if err := ValidateFactor(c.Factor); err != nil {
		return err
	}
	if !strings.Contains(c.Route, RoutePlaceholder) {
		return fmt.Errorf("%w: '%s'", ErrInvalidRoute, c.Route)
	}

	return nil
}

// Paginator validates the config and builds the Paginator it describes.
func (c Config) Paginator() (*Paginator, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return NewPaginator(c.Target, c.Factor, PatternRouter(c.Route))
}
