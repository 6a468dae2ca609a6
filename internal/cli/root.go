package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `                      _     _
  __ ___  ___ __ ___ | | __| |_   _ _ __ ___  _ __
 / _` + "`" + ` \ \/ / '_ ` + "`" + ` _ \| |/ _` + "`" + ` | | | | '_ ` + "`" + ` _ \| '_ \
| (_| |>  <| | | | | | | (_| | |_| | | | | | | |_) |
 \__,_/_/\_\_| |_| |_|_|\__,_|\__,_|_| |_| |_| .__/
                                             |_|`

var rootCmd = &cobra.Command{
	Use:   "axmldump",
	Short: "Decode Android compiled binary XML",
	Long: asciiLogo + `

axmldump decodes the compiled binary XML (AXML) format Android uses for
AndroidManifest.xml inside APKs, and prints it back as readable XML text.

It decodes the chunk stream directly, so no resources.arsc is needed;
resource references come out as placeholders instead of resolved values.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Input is not well-formed binary XML
  11 - Input is truncated
  12 - Input uses an unsupported format feature
  13 - Input ended with elements still open`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for axmldump")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
