// history.go implements the "mandator history" commands for saved results.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mandator-dev/mandator/internal/history"
	"github.com/mandator-dev/mandator/internal/quiz"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved quiz results",
	Long: `Display saved results, newest first. Use "history show <id>" to
print the full breakdown of a single result.`,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one saved result in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	env, err := buildHistoryEnv()
	if err != nil {
		return err
	}
	defer env.close()

	items := env.store.Items()
	if len(items) == 0 {
		fmt.Println("No saved results yet. Run 'mandator' to take the quiz.")
		return nil
	}

	for _, item := range items {
		top := "-"
		if len(item.Results) > 0 {
			top = fmt.Sprintf("%s (%.0f %%)", item.Results[0].Name, item.Results[0].MatchPercentage)
		}
		fmt.Printf("  %-36s  %-22s  %s\n", item.ID, item.Date, top)
	}
	fmt.Printf("\n%d saved result(s)\n", len(items))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	env, err := buildHistoryEnv()
	if err != nil {
		return err
	}
	defer env.close()

	item, ok := env.store.ByID(args[0])
	if !ok {
		return fmt.Errorf("no saved result with id %q", args[0])
	}

	printSavedResult(item)
	return nil
}

// printSavedResult writes the full breakdown of one saved result.
func printSavedResult(item history.SavedResult) {
	fmt.Printf("Result %s (%s)\n\n", item.ID, item.Date)

	for i, r := range item.Results {
		fmt.Printf("%2d. %-28s %5.1f %%\n", i+1, r.Name, r.MatchPercentage)
		if r.Reasoning != "" {
			fmt.Printf("    %s\n", r.Reasoning)
		}
	}

	if len(item.Answers) > 0 {
		fmt.Printf("\nAnswers (%d):\n", len(item.Answers))
		for _, a := range item.Answers {
			mark := "ne"
			if a.Choice == quiz.ChoiceYes {
				mark = "ano"
			}
			line := fmt.Sprintf("  [%s] %s", mark, a.QuestionText)
			if a.IsImportant {
				line += " *"
			}
			fmt.Println(line)
			if a.Reason != "" {
				fmt.Printf("        %s\n", a.Reason)
			}
		}
	}
}
