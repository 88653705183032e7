package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the offline question bank",
}

var bankSubjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List subjects and how many questions each has",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank(viperForCmd(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("%-24s  %s\n", "Subject", "Questions")
		fmt.Println(strings.Repeat("─", 36))
		for _, s := range bank.Subjects() {
			fmt.Printf("%-24s  %9d\n", s, bank.Count(s))
		}
		fmt.Printf("\n%d questions\n", bank.Len())
		return nil
	},
}

var bankListCmd = &cobra.Command{
	Use:   "list [subject...]",
	Short: "Print bank questions as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank(viperForCmd(cmd))
		if err != nil {
			return err
		}

		subjects := args
		if len(subjects) == 0 {
			subjects = bank.Subjects()
		}
		qs := bank.Lookup(subjects)
		if len(qs) == 0 {
			return fmt.Errorf("no questions for %s", strings.Join(subjects, ", "))
		}

		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(qs)
	},
}

func init() {
	bankCmd.AddCommand(bankSubjectsCmd)
	bankCmd.AddCommand(bankListCmd)
}
