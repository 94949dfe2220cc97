package problem

import (
	"fmt"
	"strings"

	"github.com/mathgeniusvn/mathgenius/internal/curriculum"
)

const systemPrompt = `Bạn là một giáo viên dạy toán Trung học cơ sở (THCS) tại Việt Nam.
Bài toán cần rõ ràng, chính xác, bám sát nội dung sách giáo khoa và phù hợp với chương trình giáo dục Việt Nam.
Nếu là câu trắc nghiệm, hãy đưa ra 4 lựa chọn được đánh dấu A, B, C, D và ghi đáp án đúng theo đúng nội dung lựa chọn.
Hãy trả về kết quả dưới dạng JSON.`

// GenerateInput is the caller-supplied context for one generation
// request. It is not stored on the resulting Problem.
type GenerateInput struct {
	Grade      curriculum.Grade
	Difficulty curriculum.Difficulty
	Textbook   curriculum.Textbook
	Chapter    string
}

// buildUserMessage constructs the generation instruction embedding all
// four selection parameters.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hãy tạo một bài toán trắc nghiệm hoặc trả lời ngắn cho học sinh %s, bộ sách %q, nội dung %q, mức độ %s.\n",
		input.Grade, input.Textbook, input.Chapter, input.Difficulty)
	fmt.Fprintf(&b, "Bài toán phải bám sát nội dung sách giáo khoa %q.", input.Textbook)

	return b.String()
}
