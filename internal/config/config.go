// Package config loads CLI and server defaults from an optional HCL
// file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"svw.info/sudokukit/internal/domain"
)

// Config holds everything the commands read at startup.
type Config struct {
	Board     Board
	Generator Generator
	Server    Server
	Log       Log
}

// Board selects the region shape; the board is Width*Height cells on a
// side.
type Board struct {
	RegionWidth  int `hcl:"region_width,optional"`
	RegionHeight int `hcl:"region_height,optional"`
}

// Generator carries the default generation parameters.
type Generator struct {
	Difficulty  string `hcl:"difficulty,optional"`
	Handicap    int    `hcl:"handicap,optional"`
	MaxRestarts int    `hcl:"max_restarts,optional"`
}

// Server configures the HTTP API.
type Server struct {
	Addr    string `hcl:"addr,optional"`
	Persist string `hcl:"persist,optional"`
}

// Log selects slog level and output format.
type Log struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Default returns the built-in settings: a classic 9x9 board, normal
// difficulty, and a local data directory.
func Default() Config {
	return Config{
		Board:     Board{RegionWidth: 3, RegionHeight: 3},
		Generator: Generator{Difficulty: "normal", MaxRestarts: 250},
		Server:    Server{Addr: ":8080", Persist: "./data"},
		Log:       Log{Level: "info", Format: "text"},
	}
}

// Cell returns the configured region shape.
func (c Config) Cell() domain.CellSize {
	return domain.CellSize{Width: c.Board.RegionWidth, Height: c.Board.RegionHeight}
}

// Difficulty parses the configured tier.
func (c Config) Difficulty() (domain.Difficulty, error) {
	return domain.ParseDifficulty(c.Generator.Difficulty)
}

// fileRoot mirrors the top-level blocks of a config file. Every block
// is optional.
type fileRoot struct {
	Board     *Board     `hcl:"board,block"`
	Generator *Generator `hcl:"generator,block"`
	Server    *Server    `hcl:"server,block"`
	Log       *Log       `hcl:"log,block"`
}

// Load merges the HCL file at path over Default. Attribute values may
// reference env, an object holding the process environment, so
// settings like `persist = env.HOME` work.
func Load(path string) (Config, error) {
	cfg := Default()

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, evalContext(), &root)
	if diags.HasErrors() {
		return cfg, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	if b := root.Board; b != nil {
		if b.RegionWidth != 0 {
			cfg.Board.RegionWidth = b.RegionWidth
		}
		if b.RegionHeight != 0 {
			cfg.Board.RegionHeight = b.RegionHeight
		}
	}
	if g := root.Generator; g != nil {
		if g.Difficulty != "" {
			cfg.Generator.Difficulty = g.Difficulty
		}
		cfg.Generator.Handicap = g.Handicap
		if g.MaxRestarts != 0 {
			cfg.Generator.MaxRestarts = g.MaxRestarts
		}
	}
	if s := root.Server; s != nil {
		if s.Addr != "" {
			cfg.Server.Addr = s.Addr
		}
		if s.Persist != "" {
			cfg.Server.Persist = s.Persist
		}
	}
	if l := root.Log; l != nil {
		if l.Level != "" {
			cfg.Log.Level = l.Level
		}
		if l.Format != "" {
			cfg.Log.Format = l.Format
		}
	}

	return cfg, cfg.validate()
}

// validate rejects settings the engine would refuse later anyway, so
// mistakes surface at load time instead of mid-run.
func (c Config) validate() error {
	if _, err := c.Difficulty(); err != nil {
		return err
	}
	if _, err := domain.NewGrid(c.Cell()); err != nil {
		return err
	}
	return nil
}

// evalContext exposes the process environment as env.NAME.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 && pair[0] != "" {
			vars[pair[0]] = cty.StringVal(pair[1])
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}
