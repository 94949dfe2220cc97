package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathgeniusvn/mathgenius/internal/curriculum"
	"github.com/mathgeniusvn/mathgenius/internal/llm"
	"github.com/mathgeniusvn/mathgenius/internal/problem"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate and answer problems in the terminal (no TUI)",
	Long: `Generate and interactively answer problems for a curriculum selection.

This is a stateless developer tool for evaluating question quality.
Answers are read from stdin and checked the same way the app checks them.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("grade", "6", "Grade: 6-9 or \"Lớp 6\"")
	previewCmd.Flags().String("textbook", "kntt", "Textbook: kntt, cd or ctst")
	previewCmd.Flags().String("chapter", "", "Chapter title (default: first chapter of the selection)")
	previewCmd.Flags().String("difficulty", "easy", "Difficulty: easy, medium or hard")
	previewCmd.Flags().Int("count", 5, "Number of problems to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	gradeVal, _ := cmd.Flags().GetString("grade")
	textbookVal, _ := cmd.Flags().GetString("textbook")
	chapterVal, _ := cmd.Flags().GetString("chapter")
	difficultyVal, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	grade, err := curriculum.ParseGrade(gradeVal)
	if err != nil {
		return err
	}
	textbook, err := curriculum.ParseTextbook(textbookVal)
	if err != nil {
		return err
	}
	difficulty, err := curriculum.ParseDifficulty(difficultyVal)
	if err != nil {
		return err
	}

	chapters := curriculum.Chapters(grade, textbook)
	if len(chapters) == 0 {
		return fmt.Errorf("no chapters for %s / %s", grade, textbook)
	}
	chapter := chapters[0]
	if chapterVal != "" {
		chapter = ""
		for _, c := range chapters {
			if strings.EqualFold(c, chapterVal) || strings.Contains(strings.ToLower(c), strings.ToLower(chapterVal)) {
				chapter = c
				break
			}
		}
		if chapter == "" {
			return fmt.Errorf("chapter %q not found for %s / %s", chapterVal, grade, textbook)
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := cfg.LLM.Validate(); err != nil {
		warnMissingKey(err)
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := problem.New(provider, cfg.Problem, logger)
	input := problem.GenerateInput{
		Grade:      grade,
		Textbook:   textbook,
		Chapter:    chapter,
		Difficulty: difficulty,
	}

	fmt.Printf("%s · %s · %s\n%s\n", grade, textbook, difficulty, chapter)
	fmt.Printf("Generating %d problems...\n\n", count)

	scanner := bufio.NewScanner(os.Stdin)
	var correct int

	for i := 1; i <= count; i++ {
		p := gen.Generate(cmd.Context(), input)

		fmt.Printf("── Câu %d/%d ──\n", i, count)
		fmt.Println(p.Question)
		for _, opt := range p.Options {
			fmt.Printf("  %s\n", opt)
		}

		if problem.IsFallback(p) {
			fmt.Println("(generation failed, skipping)")
			fmt.Println()
			continue
		}

		fmt.Print("\nĐáp án của bạn: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := scanner.Text()
		if !problem.Submittable(answer) {
			fmt.Println("(bỏ qua)")
			fmt.Println()
			continue
		}

		if problem.Evaluate(p, answer) {
			correct++
			fmt.Println("\033[32m✓ Chính xác!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Chưa đúng.\033[0m Đáp án: %s\n", p.CorrectAnswer)
		}
		if p.Hint != "" {
			fmt.Printf("Gợi ý: %s\n", p.Hint)
		}
		fmt.Println()
	}

	fmt.Printf("── Kết quả: %d/%d đúng ──\n", correct, count)
	return nil
}
