// share.go implements the "mandator share" commands for result tokens.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandator-dev/mandator/internal/share"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Encode and decode shareable result tokens",
}

var shareEncodeCmd = &cobra.Command{
	Use:   "encode <history-id>",
	Short: "Encode a saved result as a shareable token",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareEncode,
}

var shareDecodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Decode a shared token and print the results",
	Args:  cobra.ExactArgs(1),
	RunE:  runShareDecode,
}

func init() {
	shareCmd.AddCommand(shareEncodeCmd)
	shareCmd.AddCommand(shareDecodeCmd)
}

func runShareEncode(cmd *cobra.Command, args []string) error {
	env, err := buildHistoryEnv()
	if err != nil {
		return err
	}
	defer env.close()

	item, ok := env.store.ByID(args[0])
	if !ok {
		return fmt.Errorf("no saved result with id %q", args[0])
	}

	token, err := share.Encode(item.Results)
	if err != nil {
		return fmt.Errorf("encoding share token: %w", err)
	}

	fmt.Println(token)
	return nil
}

func runShareDecode(cmd *cobra.Command, args []string) error {
	matches, ok := share.Decode(args[0])
	if !ok {
		return fmt.Errorf("invalid share token")
	}

	for i, m := range matches {
		fmt.Printf("%2d. %-28s %5.1f %%\n", i+1, m.Name, m.MatchPercentage)
		if m.Reasoning != "" {
			fmt.Printf("    %s\n", m.Reasoning)
		}
	}
	return nil
}
