// init.go implements the "mandator init" command.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mandator-dev/mandator/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the mandator config in your home directory",
	Long: `Write a default ~/.mandator/config.yaml with the election metadata,
question count, and evaluation threshold. Edit the file to customize.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolving home directory: %w", err)
	}

	// Check for an existing config before overwriting.
	path := filepath.Join(home, config.Dir, "config.yaml")
	if _, statErr := os.Stat(path); statErr == nil {
		fmt.Printf("Warning: %s already exists.\n", path)
		fmt.Print("Overwrite with defaults? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if err := config.WriteConfig(home, cfg); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	fmt.Printf("Election: %s (%d)\n", cfg.Election.Name, cfg.Election.Year)
	fmt.Printf("Questions: %d, evaluation from %d answers\n", cfg.Quiz.QuestionCount, cfg.Quiz.MinAnswers)
	fmt.Println("\nSet GEMINI_API_KEY and run 'mandator' to start the quiz.")
	return nil
}
