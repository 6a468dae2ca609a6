package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vvka-141/axmldump/internal/config"
	"github.com/vvka-141/axmldump/internal/logging"
	"github.com/vvka-141/axmldump/internal/xmlfmt"
	"github.com/vvka-141/axmldump/pkg/axml"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <AndroidManifest.xml>",
	Short: "Decode a binary manifest to XML text",
	Long: `Decode a compiled binary AndroidManifest.xml and print it as XML text.

The XML text goes to stdout (or to a file with --output); all diagnostics
go to stderr, so the output can be piped safely.

Printer defaults (indent width, namespace declarations on the root element)
can be set in a ` + config.ConfigFileName + ` file next to the manifest; flags
override the file.

Examples:
  # Print a decoded manifest
  axmldump decode AndroidManifest.xml

  # Write to a file with four-space indentation
  axmldump decode AndroidManifest.xml --output manifest.xml --indent 4

  # Suppress the synthetic xmlns:android declaration
  axmldump decode AndroidManifest.xml --no-namespaces`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

var decodeFlags struct {
	output       string
	indent       int
	noNamespaces bool
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVarP(&decodeFlags.output, "output", "o", "", "Write XML text to a file instead of stdout")
	decodeCmd.Flags().IntVar(&decodeFlags.indent, "indent", xmlfmt.DefaultIndent, "Spaces per nesting level")
	decodeCmd.Flags().BoolVar(&decodeFlags.noNamespaces, "no-namespaces", false, "Do not inject namespace declarations on the root element")
}

// resetDecodeFlags restores flag defaults between test runs.
func resetDecodeFlags() {
	decodeFlags.output = ""
	decodeFlags.indent = xmlfmt.DefaultIndent
	decodeFlags.noNamespaces = false
}

func runDecode(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	logger.Verbose("Reading %s", manifestPath)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}

	doc, err := axml.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", manifestPath, err)
	}
	logger.Verbose("Decoded %d pool strings, %d resource ids", doc.StringCount, len(doc.ResourceIDs))

	opts := printerOptions(cmd, filepath.Dir(manifestPath), logger)
	text := xmlfmt.Format(doc, opts)

	if decodeFlags.output != "" {
		if err := os.WriteFile(decodeFlags.output, []byte(text), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", decodeFlags.output, err)
		}
		logger.Info("✓ Wrote %s", decodeFlags.output)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// printerOptions merges built-in defaults, the optional config file next to
// the manifest, and command-line flags, in increasing precedence.
func printerOptions(cmd *cobra.Command, manifestDir string, logger logging.Logger) xmlfmt.Options {
	opts := xmlfmt.DefaultOptions()

	cfg, err := config.Load(manifestDir)
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		// Defaults apply.
	case err != nil:
		logger.Error("Ignoring unreadable %s: %v", config.ConfigFileName, err)
	default:
		logger.Verbose("Loaded printer defaults from %s", filepath.Join(manifestDir, config.ConfigFileName))
		if cfg.Output.Indent > 0 {
			opts.Indent = cfg.Output.Indent
		}
		if cfg.Output.Namespaces != nil {
			opts.Namespaces = cfg.Output.Namespaces
		}
	}

	if cmd.Flags().Changed("indent") {
		opts.Indent = decodeFlags.indent
	}
	if decodeFlags.noNamespaces {
		opts.Namespaces = nil
	}
	return opts
}
