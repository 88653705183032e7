package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edcenter/mocktest/internal/history"
	"github.com/edcenter/mocktest/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [session-id]",
	Short: "List past exams, or show the answers of one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)
		st, err := openStore(v)
		if err != nil {
			return err
		}
		defer st.Close()

		rec := history.NewRecorder(st.EventRepo(), nil)
		ctx := cmd.Context()

		if len(args) == 1 {
			answers, err := rec.Answers(ctx, args[0])
			if err != nil {
				return fmt.Errorf("query answers: %w", err)
			}
			printAnswers(answers)
			return nil
		}

		limit, _ := cmd.Flags().GetInt("limit")
		attempts, err := rec.List(ctx, limit)
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No exams recorded yet.")
			return nil
		}

		fmt.Printf("%-36s  %-16s  %-24s  %7s  %6s  %-8s  %s\n",
			"Session", "Finished", "Subjects", "Score", "%", "Time", "Reason")
		fmt.Println(strings.Repeat("─", 120))
		for _, a := range attempts {
			fmt.Printf("%-36s  %-16s  %-24s  %3d/%-3d  %5.1f%%  %-8s  %s\n",
				a.SessionID,
				a.Timestamp.Local().Format("2006-01-02 15:04"),
				truncate(strings.Join(a.Subjects, ","), 24),
				a.CorrectAnswers, a.TotalQuestions, a.Percent,
				formatSecs(a.ElapsedSecs),
				a.FinishReason)
		}
		return nil
	},
}

func printAnswers(answers []store.ExamAnswerData) {
	if len(answers) == 0 {
		fmt.Println("No answers recorded for that session.")
		return
	}
	for i, a := range answers {
		mark := "✓"
		if !a.Correct {
			mark = "✗"
		}
		chosen := "-"
		if a.ChosenIndex >= 0 {
			chosen = string(rune('A' + a.ChosenIndex))
		}
		review := ""
		if a.MarkedForReview {
			review = " (marked)"
		}
		fmt.Printf("%2d. %s [%s, %s, %s] chose %s, answer %c%s\n    %s\n",
			i+1, mark, a.Subject, a.Difficulty, a.Cognitive,
			chosen, rune('A'+a.CorrectIndex), review, a.Stem)
	}
}

func formatSecs(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of exams to show")
}
