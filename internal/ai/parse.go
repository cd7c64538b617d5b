package ai

import (
	"strings"

	"github.com/dmitrijs2005/studyhub/internal/common"
	"github.com/dmitrijs2005/studyhub/internal/models"
)

const (
	questionLabel = "QUESTION:"
	answerLabel   = "ANSWER:"
)

// ParsePairs extracts QUESTION:/ANSWER: blocks from text. An answer runs
// until the next QUESTION: label or the end of text and may span lines.
// Blocks with an empty side are dropped. Zero pairs is a *common.ParseError.
func ParsePairs(text string) ([]models.Pair, error) {
	blocks := strings.Split(text, questionLabel)

	pairs := make([]models.Pair, 0, len(blocks))
	for _, block := range blocks[1:] {
		q, a, ok := strings.Cut(block, answerLabel)
		if !ok {
			continue
		}
		q, a = strings.TrimSpace(q), strings.TrimSpace(a)
		if q == "" || a == "" {
			continue
		}
		pairs = append(pairs, models.Pair{Question: q, Answer: a})
	}

	if len(pairs) == 0 {
		return nil, &common.ParseError{Reason: "no QUESTION/ANSWER pairs found"}
	}
	return pairs, nil
}
