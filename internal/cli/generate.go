package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/swagdoc/internal/generator"
	"github.com/example/swagdoc/internal/validator"
)

func newGenerateCommand() *cobra.Command {
	var (
		configPath  string
		outputPath  string
		format      string
		validateDoc bool
		debug       bool
	)

	cmd := &cobra.Command{
		Use:   "generate [patterns...]",
		Short: "Generate a Swagger document from annotated source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts, err := loadOptions(configPath)
			if err != nil {
				return err
			}

			g := generator.New(opts)
			g.SetDebug(debug)
			g.SetLogger(newLogger(debug))
			if err := g.ParseGlobs(args); err != nil {
				return err
			}

			doc, err := g.Generate()
			if err != nil {
				return err
			}

			if validateDoc {
				data, err := doc.JSON()
				if err != nil {
					return fmt.Errorf("serialize document: %w", err)
				}
				if err := validator.ValidateDocument(data); err != nil {
					return fmt.Errorf("document validation failed: %w", err)
				}
			}
			return writeDocument(doc, outputPath, format)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with document metadata (info, host, basePath, schemes, tags)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "swagger.json", "Output file path or '-' for stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json or yaml)")
	cmd.Flags().BoolVar(&validateDoc, "validate", false, "Check the structure of the generated document before writing")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log skipped and undecodable documentation blocks")

	return cmd
}

func writeDocument(doc *generator.Document, outputPath, format string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(format) {
	case "json":
		data, err = doc.JSON()
	case "yaml", "yml":
		data, err = doc.YAML()
	default:
		return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}

	if outputPath == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	fmt.Printf("Swagger document generated: %s (%d paths, %d definitions)\n",
		outputPath, mapLen(doc.Paths), mapLen(doc.Definitions))
	return nil
}

func mapLen(m *generator.OrderedMap) int {
	if m == nil {
		return 0
	}
	return m.Len()
}
