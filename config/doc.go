// Package config holds the settings of a filesystem persistor.
//
// A Config is read from a CUE, JSON, TOML or YAML file with Load, optionally
// overlaid by further files, then completed with Finalize, which applies
// defaults, environment overrides and validation:
//
//	cfg, err := config.Load(fsys, "persistor.toml", "persistor.prod.cue")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Finalize(config.DefaultEnv()); err != nil {
//	    return err
//	}
//
// Sizes are human readable ("32KiB", "64MB") and parsed with go-units.
package config
