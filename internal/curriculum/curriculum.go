// Package curriculum holds the static catalog of chapters per grade and
// textbook edition for the Vietnamese lower-secondary (THCS) math program.
// The catalog is authored data: read-only, initialized at startup, never
// mutated.
package curriculum

import (
	"fmt"
	"strings"
)

// Grade is a lower-secondary school year. The value doubles as the
// Vietnamese display label and is embedded verbatim in prompts.
type Grade string

const (
	Grade6 Grade = "Lớp 6"
	Grade7 Grade = "Lớp 7"
	Grade8 Grade = "Lớp 8"
	Grade9 Grade = "Lớp 9"
)

// Grades lists all grade levels in ascending order.
func Grades() []Grade {
	return []Grade{Grade6, Grade7, Grade8, Grade9}
}

// Textbook is one of the officially approved curriculum textbook sets.
type Textbook string

const (
	KetNoi   Textbook = "Kết nối tri thức"
	CanhDieu Textbook = "Cánh Diều"
	ChanTroi Textbook = "Chân trời sáng tạo"
)

// Textbooks lists all textbook editions.
func Textbooks() []Textbook {
	return []Textbook{KetNoi, CanhDieu, ChanTroi}
}

// Difficulty is a problem difficulty tier.
type Difficulty string

const (
	Easy   Difficulty = "Cơ bản"
	Medium Difficulty = "Vận dụng"
	Hard   Difficulty = "Vận dụng cao"
)

// Difficulties lists all difficulty tiers from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Chapters returns the ordered chapter list for a grade and textbook pair.
// The returned slice is shared; callers must not mutate it. An unknown
// pair or a pair with no authored chapters yields an empty slice — the
// caller is expected to surface a "no curriculum data" notice and hold
// off generation rather than treat this as an error.
func Chapters(g Grade, tb Textbook) []string {
	byBook, ok := catalog[g]
	if !ok {
		return nil
	}
	return byBook[tb]
}

// ParseGrade maps CLI-friendly tokens ("6", "lop8") and exact labels to a
// Grade.
func ParseGrade(s string) (Grade, error) {
	switch normalizeToken(s) {
	case "6", "lop6":
		return Grade6, nil
	case "7", "lop7":
		return Grade7, nil
	case "8", "lop8":
		return Grade8, nil
	case "9", "lop9":
		return Grade9, nil
	}
	for _, g := range Grades() {
		if s == string(g) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown grade %q: use 6, 7, 8 or 9", s)
}

// ParseTextbook maps CLI-friendly tokens ("kntt", "cd", "ctst") and exact
// labels to a Textbook.
func ParseTextbook(s string) (Textbook, error) {
	switch normalizeToken(s) {
	case "kntt", "ketnoi":
		return KetNoi, nil
	case "cd", "canhdieu":
		return CanhDieu, nil
	case "ctst", "chantroi":
		return ChanTroi, nil
	}
	for _, tb := range Textbooks() {
		if s == string(tb) {
			return tb, nil
		}
	}
	return "", fmt.Errorf("unknown textbook %q: use kntt, cd or ctst", s)
}

// ParseDifficulty maps CLI-friendly tokens ("easy", "medium", "hard") and
// exact labels to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch normalizeToken(s) {
	case "easy", "coban":
		return Easy, nil
	case "medium", "vandung":
		return Medium, nil
	case "hard", "vandungcao":
		return Hard, nil
	}
	for _, d := range Difficulties() {
		if s == string(d) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q: use easy, medium or hard", s)
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}
