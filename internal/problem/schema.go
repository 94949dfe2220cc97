package problem

import "github.com/mathgeniusvn/mathgenius/internal/llm"

// ProblemSchema defines the JSON schema for generated problems. Field
// descriptions are in Vietnamese because they are sent to the model
// alongside a Vietnamese prompt.
var ProblemSchema = &llm.Schema{
	Name:        "math-problem",
	Description: "Một bài toán luyện tập cho học sinh THCS",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "Nội dung câu hỏi toán học",
			},
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"multiple_choice", "short_answer"},
				"description": "Loại câu hỏi",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Các lựa chọn trả lời (nếu là trắc nghiệm)",
			},
			"correctAnswer": map[string]any{
				"type":        "string",
				"description": "Đáp án đúng chính xác",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "Gợi ý ngắn gọn để giải bài toán",
			},
		},
		"required": []any{"question", "type", "correctAnswer", "hint"},
	},
}
