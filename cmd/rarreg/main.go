package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mahdiidarabi/rarreg-keygen/internal/config"
	"github.com/mahdiidarabi/rarreg-keygen/internal/logging"
	"github.com/mahdiidarabi/rarreg-keygen/pkg/rarreg"
)

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("rarreg", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath  = fs.String("config", "", "Path to config.yaml (optional)")
		username    = fs.String("username", "", "Username written to the key file (default \"User\")")
		licenseType = fs.String("license", "", "License type written to the key file (default \"Single PC usage license\")")
		output      = fs.String("out", "", "Output path (default \"rarreg.key\" in the working directory)")
		verifyPath  = fs.String("verify", "", "Verify an existing key file instead of generating one")
		logLevel    = fs.String("log-level", "", "Log level: debug, info, warn or error")
		logFormat   = fs.String("log-format", "", "Log format: text or json")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	override(&cfg.Username, *username)
	override(&cfg.LicenseType, *licenseType)
	override(&cfg.Output, *output)
	override(&cfg.Log.Level, *logLevel)
	override(&cfg.Log.Format, *logFormat)

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if *verifyPath != "" {
		return verify(*verifyPath, cfg.RecordLayout(), stdout, logger)
	}

	gen := rarreg.NewGenerator().
		WithLayout(cfg.RecordLayout()).
		WithLogger(logger)

	result, err := gen.Generate(ctx, cfg.License())
	if err != nil {
		return err
	}

	path, err := rarreg.WriteFile(cfg.Output, result.Document, gen.Layout())
	if err != nil {
		return err
	}
	logger.Info("wrote key file", "path", path, "username", cfg.Username)

	fmt.Fprintf(stdout, "RAR registration key generated and saved as '%s'.\n", path)
	return nil
}

func verify(path string, layout rarreg.Layout, stdout io.Writer, logger *slog.Logger) error {
	parser := &rarreg.KeyFileParser{Layout: layout}
	doc, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	if err := rarreg.Verify(doc, layout); err != nil {
		return err
	}
	logger.Info("verified key file", "path", path, "username", doc.Username)

	fmt.Fprintf(stdout, "%s: OK (%s, %s)\n", path, doc.Username, doc.LicenseType)
	return nil
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
