package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Terminal is the screen size exposed to HCL expressions as terminal.cols
// and terminal.rows.
type Terminal struct {
	Cols int
	Rows int
}

// hclFile is the decoding target; nil fields were not set in the file.
type hclFile struct {
	Side  *int   `hcl:"side,optional"`
	Start *int   `hcl:"start,optional"`
	End   *int   `hcl:"end,optional"`
	From  *int   `hcl:"from,optional"`
	Seed  *int64 `hcl:"seed,optional"`
	Sound *bool  `hcl:"sound,optional"`

	Delays *hclDelays `hcl:"delays,block"`
	Log    *hclLog    `hcl:"log,block"`
}

type hclDelays struct {
	Step   *string `hcl:"step,optional"`
	Settle *string `hcl:"settle,optional"`
	Path   *string `hcl:"path,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
	File   *string `hcl:"file,optional"`
}

// evalContext exposes the terminal size and a few numeric functions, so a
// file can size the maze to the window:
//
//	side = floor(min((terminal.cols / 2 - 1) / 2, (terminal.rows - 2) / 2))
func evalContext(term Terminal) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"terminal": cty.ObjectVal(map[string]cty.Value{
				"cols": cty.NumberIntVal(int64(term.Cols)),
				"rows": cty.NumberIntVal(int64(term.Rows)),
			}),
		},
		Functions: map[string]function.Function{
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
		},
	}
}

// LoadFile decodes the HCL file at path over cfg. Only attributes present in
// the file change cfg.
func LoadFile(path string, term Terminal, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(term), &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	return parsed.apply(cfg)
}

func (f *hclFile) apply(cfg *Config) error {
	setInt(&cfg.Side, f.Side)
	setInt(&cfg.Start, f.Start)
	setInt(&cfg.End, f.End)
	setInt(&cfg.From, f.From)
	if f.Seed != nil {
		cfg.Seed = *f.Seed
	}
	if f.Sound != nil {
		cfg.Sound = *f.Sound
	}
	if d := f.Delays; d != nil {
		for _, p := range []struct {
			name string
			src  *string
			dst  *time.Duration
		}{
			{"delays.step", d.Step, &cfg.StepDelay},
			{"delays.settle", d.Settle, &cfg.SettleDelay},
			{"delays.path", d.Path, &cfg.PathDelay},
		} {
			if p.src == nil {
				continue
			}
			v, err := time.ParseDuration(*p.src)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalid, p.name, err)
			}
			*p.dst = v
		}
	}
	if l := f.Log; l != nil {
		setString(&cfg.Log.Level, l.Level)
		setString(&cfg.Log.Format, l.Format)
		setString(&cfg.Log.File, l.File)
	}

	return nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
