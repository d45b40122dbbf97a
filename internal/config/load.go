package config

import "os"

// Sources names the layers Load reads.
type Sources struct {
	// File is an HCL config file; empty skips the layer.
	File string
	// EnvFile is a .env file; empty or missing skips it.
	EnvFile string
	// Terminal is exposed to the HCL file.
	Terminal Terminal
	// Lookup reads the process environment; nil means os.LookupEnv.
	Lookup LookupFunc
}

// Load builds a Config from defaults, the HCL file and the environment.
// Flags are applied by the caller afterwards, then Resolve and Validate.
func Load(src Sources) (Config, error) {
	cfg := Default()
	if src.File != "" {
		if err := LoadFile(src.File, src.Terminal, &cfg); err != nil {
			return cfg, err
		}
	}

	lookup := src.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if src.EnvFile != "" {
		vars, err := ReadDotEnv(src.EnvFile)
		if err != nil {
			return cfg, err
		}
		lookup = withFallback(lookup, vars)
	}
	if err := ApplyEnv(lookup, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
