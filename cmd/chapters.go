package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mathgeniusvn/mathgenius/internal/curriculum"
)

var chaptersCmd = &cobra.Command{
	Use:   "chapters",
	Short: "List the chapter catalog",
	RunE:  runChapters,
}

func init() {
	chaptersCmd.Flags().String("grade", "", "Limit to one grade (6-9)")
	chaptersCmd.Flags().String("textbook", "", "Limit to one textbook (kntt, cd, ctst)")
}

func runChapters(cmd *cobra.Command, args []string) error {
	gradeVal, _ := cmd.Flags().GetString("grade")
	textbookVal, _ := cmd.Flags().GetString("textbook")

	grades := curriculum.Grades()
	if gradeVal != "" {
		g, err := curriculum.ParseGrade(gradeVal)
		if err != nil {
			return err
		}
		grades = []curriculum.Grade{g}
	}

	textbooks := curriculum.Textbooks()
	if textbookVal != "" {
		tb, err := curriculum.ParseTextbook(textbookVal)
		if err != nil {
			return err
		}
		textbooks = []curriculum.Textbook{tb}
	}

	for _, g := range grades {
		for _, tb := range textbooks {
			chapters := curriculum.Chapters(g, tb)
			if len(chapters) == 0 {
				continue
			}
			fmt.Printf("%s — %s\n", g, tb)
			for _, c := range chapters {
				fmt.Printf("  %s\n", c)
			}
			fmt.Println()
		}
	}
	return nil
}
