package config

import (
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pelletier/go-toml/v2"
	"github.com/rightson/overleaf/errors"
	"github.com/rightson/overleaf/fs/core"
	"gopkg.in/yaml.v3"
)

// Load reads the base configuration file at paths[0] and merges each
// following file over it in order. Files ending in .toml are parsed as
// TOML and .yaml or .yml as YAML; .cue and .json files are evaluated with
// CUE, so CUE constraints in the file apply. The result is not finalized.
func Load(fsys core.ReadFS, paths ...string) (*Config, error) {
	if len(paths) == 0 {
		return nil, errors.New(errors.CodeInvalidInput, "no configuration files given")
	}

	cfg, err := loadFile(fsys, paths[0])
	if err != nil {
		return nil, err
	}
	for _, path := range paths[1:] {
		overlay, err := loadFile(fsys, path)
		if err != nil {
			return nil, err
		}
		cfg.Merge(overlay)
	}
	return cfg, nil
}

func loadFile(fsys core.ReadFS, path string) (*Config, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		info := map[string]interface{}{"path": path}
		if core.IsNotExist(err) {
			return nil, errors.NotFound("config file not found", err, info)
		}
		return nil, errors.Read("failed to read config file", err, info)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".cue", ".json":
		err = decodeCUE(data, path, &cfg)
	default:
		return nil, errors.WrapWithContext(core.ErrUnsupported, errors.CodeInvalidInput,
			"unsupported config format", map[string]interface{}{"path": path, "extension": ext})
	}
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to parse config file",
			map[string]interface{}{"path": path})
	}
	return &cfg, nil
}

func decodeCUE(data []byte, path string, target *Config) error {
	val := cuecontext.New().CompileBytes(data, cue.Filename(path))
	if err := val.Err(); err != nil {
		return err
	}
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return val.Decode(target)
}
