package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"novac/pkg/descriptor"
	"novac/pkg/output"
	"novac/pkg/render"
)

// CLI is the top-level command structure. Defaults may be supplied through a
// novac.{json,yaml,toml} config file; flags and env override config values.
type CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)." default:"info" env:"NOVAC_LOG_LEVEL"`

	Lower LowerCmd `cmd:"" help:"Lower descriptor files to TypeScript definitions."`
}

// LowerCmd reads one descriptor file, lowers every unit in it, and writes the
// emitted TypeScript.
type LowerCmd struct {
	File string `arg:"" help:"Descriptor file (YAML or JSON)." type:"existingfile"`
	Out  string `help:"Write output to file instead of stdout." short:"o" placeholder:"FILE"`
}

func (c *LowerCmd) Run(logger *slog.Logger) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	file, err := descriptor.Parse(data)
	if err != nil {
		return err
	}
	logger.Debug("parsed descriptor file",
		"file", c.File, "modules", len(file.Modules), "injectors", len(file.Injectors))

	code := emitFile(file)
	if c.Out == "" {
		fmt.Print(code)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(code), 0o644); err != nil {
		return err
	}
	logger.Info("wrote lowered definitions", "file", c.Out)
	return nil
}

// emitFile lowers every unit and assembles one compilation unit: imports
// first, then per-unit definition constants and their auxiliary statements.
func emitFile(file *descriptor.File) string {
	em := output.NewEmitter()
	for _, mod := range file.Modules {
		emitUnit(em, mod.Name, render.CompileModule(mod.Render()))
	}
	for _, inj := range file.Injectors {
		emitUnit(em, inj.Name, render.CompileInjector(inj.Render()))
	}

	var header strings.Builder
	for _, imp := range em.Imports() {
		fmt.Fprintf(&header, "import * as %s from %q;\n", imp.Alias, imp.ModuleName)
	}
	if header.Len() > 0 {
		header.WriteString("\n")
	}
	return header.String() + em.String()
}

func emitUnit(em *output.Emitter, name string, result render.CompiledResult) {
	em.WriteString(fmt.Sprintf("const %sDef", name))
	if result.Type != nil {
		em.WriteString(": ")
		em.EmitType(result.Type)
	}
	em.WriteString(" = ")
	em.EmitExpression(result.Expression)
	em.WriteString(";\n")
	for _, stmt := range result.Statements {
		em.EmitStatement(stmt)
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("novac"),
		kong.Description("Definition compiler for the Nova framework."),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env
		// override config values.
		kong.Configuration(kong.JSON, "novac.json", "/etc/novac/novac.json"),
		kong.Configuration(kongyaml.Loader, "novac.yaml", "/etc/novac/novac.yaml"),
		kong.Configuration(kongtoml.Loader, "novac.toml", "/etc/novac/novac.toml"),
	)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx.Bind(logger)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
