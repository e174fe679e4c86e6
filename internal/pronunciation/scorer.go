package pronunciation

import (
	"fmt"
	"math"
	"strings"
)

// Word status buckets by accuracy: [95,100] perfect, [80,95) good,
// [60,80) needs-work, [0,60) error.
const (
	StatusPerfect   = "perfect"
	StatusGood      = "good"
	StatusNeedsWork = "needs-work"
	StatusError     = "error"
)

// WordRecognition is the per-word scoring breakdown for one attempt.
type WordRecognition struct {
	Word         string `json:"word"`
	ExpectedWord string `json:"expected_word"`
	IsCorrect    bool   `json:"is_correct"`
	Accuracy     int    `json:"accuracy"` // 0-100
	Status       string `json:"status"`
	Feedback     string `json:"feedback"`
}

// Result is a sentence-level pronunciation score with its word breakdown.
// Results are ephemeral; nothing in this package persists them.
type Result struct {
	Words        []WordRecognition `json:"words"`
	OverallScore int               `json:"overall_score"` // 0-100
}

// Analyze scores a recognized transcript against the expected sentence and
// blends word accuracy with the recognizer's confidence (70/30).
//
// Words are aligned by position, not by edit distance: the i-th expected word
// is compared with the i-th actual word. That is cheap and works well for
// read-aloud practice where both sentences are nearly the same length, but a
// dropped or inserted word shifts everything after it out of alignment. This
// is the reference behavior and is kept deliberately.
//
// Callers must pre-clamp confidence to [0,1]; out-of-range values are used as
// given. The function is total: any string input produces a result, and an
// empty expected sentence yields score 0 with no words.
func Analyze(expected, actual string, confidence float64) Result {
	expectedWords := normalizeWords(expected)
	actualWords := normalizeWords(actual)

	if len(expectedWords) == 0 {
		return Result{}
	}

	words := make([]WordRecognition, 0, len(expectedWords))
	total := 0
	for i, exp := range expectedWords {
		var act string
		if i < len(actualWords) {
			act = actualWords[i]
		}

		accuracy := wordAccuracy(exp, act)
		total += accuracy

		heard := act
		if heard == "" {
			heard = "(missing)"
		}

		words = append(words, WordRecognition{
			Word:         heard,
			ExpectedWord: exp,
			IsCorrect:    exp == act,
			Accuracy:     accuracy,
			Status:       wordStatus(accuracy),
			Feedback:     wordFeedback(exp, act, accuracy),
		})
	}

	mean := float64(total) / float64(len(expectedWords))
	score := int(math.Round(mean*0.7 + confidence*100*0.3))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return Result{Words: words, OverallScore: score}
}

// normalizeWords lowercases, splits on whitespace and strips sentence
// punctuation from each token.
func normalizeWords(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		words = append(words, strings.Map(dropPunct, f))
	}
	return words
}

func dropPunct(r rune) rune {
	switch r {
	case '.', ',', '!', '?', ';', ':':
		return -1
	}
	return r
}

// wordAccuracy scores a single aligned word pair: 100 for an exact match,
// 0 for a missing word, otherwise edit-distance similarity.
func wordAccuracy(expected, actual string) int {
	if expected == actual {
		return 100
	}
	if actual == "" {
		return 0
	}

	distance := levenshtein(expected, actual)
	maxLen := len([]rune(expected))
	if l := len([]rune(actual)); l > maxLen {
		maxLen = l
	}

	similarity := float64(maxLen-distance) / float64(maxLen) * 100
	if similarity < 0 {
		similarity = 0
	}
	return int(math.Round(similarity))
}

func wordStatus(accuracy int) string {
	switch {
	case accuracy >= 95:
		return StatusPerfect
	case accuracy >= 80:
		return StatusGood
	case accuracy >= 60:
		return StatusNeedsWork
	default:
		return StatusError
	}
}

func wordFeedback(expected, actual string, accuracy int) string {
	switch {
	case accuracy == 100:
		return "Perfect pronunciation!"
	case accuracy >= 80:
		return "Very close! Minor adjustment needed."
	case accuracy >= 60:
		return "Good attempt, practice this word more."
	case actual == "":
		return fmt.Sprintf("Missing word: %q", expected)
	default:
		return fmt.Sprintf("Try again: expected %q, heard %q", expected, actual)
	}
}
