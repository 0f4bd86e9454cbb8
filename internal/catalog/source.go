package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"github.com/spf13/viper"
)

//go:embed seed.yaml
var seedYAML []byte

// Source produces catalog data. Implementations are consulted once, at startup.
type Source interface {
	Load(ctx context.Context) (Data, error)
}

// EmbeddedSource reads the seed compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(_ context.Context) (Data, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(seedYAML)); err != nil {
		return Data{}, fmt.Errorf("read embedded seed: %w", err)
	}
	return decode(v)
}

// FileSource reads a YAML or JSON file; the format follows the extension.
type FileSource struct {
	Path string
}

func (s FileSource) Load(_ context.Context) (Data, error) {
	if s.Path == "" {
		return Data{}, fmt.Errorf("catalog file path is empty")
	}
	v := viper.New()
	v.SetConfigFile(s.Path)
	if err := v.ReadInConfig(); err != nil {
		return Data{}, fmt.Errorf("read catalog file %s: %w", s.Path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (Data, error) {
	var d Data
	if err := v.Unmarshal(&d); err != nil {
		return Data{}, fmt.Errorf("decode catalog: %w", err)
	}
	return d, nil
}

// Load reads src and builds the catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	d, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(d)
}
