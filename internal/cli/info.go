package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vvka-141/axmldump/internal/logging"
	"github.com/vvka-141/axmldump/pkg/axml"
)

var infoCmd = &cobra.Command{
	Use:   "info <AndroidManifest.xml>",
	Short: "Show the structure of a binary manifest",
	Long: `Show a structural summary of a compiled binary AndroidManifest.xml
without printing the decoded tree.

The summary covers:
1. String pool size and entry encoding (UTF-8 or UTF-16)
2. Resource-id map size (the ids themselves with --verbose)
3. Element, attribute and text-node counts plus nesting depth
4. The root element tag

Examples:
  # Human-readable summary
  axmldump info AndroidManifest.xml

  # Machine-readable summary
  axmldump info AndroidManifest.xml --json

  # Include every resource id
  axmldump info AndroidManifest.xml --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

var infoJSON bool

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output the summary as JSON")
}

func runInfo(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	logger.Verbose("Reading %s", manifestPath)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}

	doc, err := axml.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", manifestPath, err)
	}

	stats := collectStats(doc.Root)

	if infoJSON {
		encoding := "utf-16"
		if doc.UTF8Pool {
			encoding = "utf-8"
		}
		result := map[string]interface{}{
			"root_tag":          doc.Root.Tag,
			"string_count":      doc.StringCount,
			"string_encoding":   encoding,
			"resource_id_count": len(doc.ResourceIDs),
			"elements":          stats.elements,
			"attributes":        stats.attributes,
			"text_nodes":        stats.textNodes,
			"max_depth":         stats.maxDepth,
		}
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonBytes))
		return nil
	}

	encoding := "UTF-16"
	if doc.UTF8Pool {
		encoding = "UTF-8"
	}

	fmt.Fprintf(os.Stderr, "\nManifest Summary:\n")
	fmt.Fprintf(os.Stderr, "  Root element: <%s>\n", doc.Root.Tag)
	fmt.Fprintf(os.Stderr, "  String pool: %d entries (%s)\n", doc.StringCount, encoding)
	fmt.Fprintf(os.Stderr, "  Resource map: %d ids\n", len(doc.ResourceIDs))
	fmt.Fprintf(os.Stderr, "  Elements: %d\n", stats.elements)
	fmt.Fprintf(os.Stderr, "  Attributes: %d\n", stats.attributes)
	fmt.Fprintf(os.Stderr, "  Text nodes: %d\n", stats.textNodes)
	fmt.Fprintf(os.Stderr, "  Max depth: %d\n", stats.maxDepth)

	if verbose && len(doc.ResourceIDs) > 0 {
		fmt.Fprintln(os.Stderr, "\nResource ids:")
		for i, id := range doc.ResourceIDs {
			fmt.Fprintf(os.Stderr, "  [%d] 0x%08x\n", i, id)
		}
	}
	fmt.Fprintln(os.Stderr)

	return nil
}

// treeStats accumulates structural counters over a decoded tree.
type treeStats struct {
	elements   int
	attributes int
	textNodes  int
	maxDepth   int
}

func collectStats(root *axml.Element) treeStats {
	var stats treeStats
	walkNode(root, 1, &stats)
	return stats
}

func walkNode(n axml.Node, depth int, stats *treeStats) {
	switch node := n.(type) {
	case *axml.Element:
		stats.elements++
		stats.attributes += len(node.Attributes)
		if depth > stats.maxDepth {
			stats.maxDepth = depth
		}
		for _, child := range node.Children {
			walkNode(child, depth+1, stats)
		}
	case *axml.CharData:
		stats.textNodes++
	}
}
