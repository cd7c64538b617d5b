package models

import "strings"

const (
	CategoryComputerScience = "Computer Science"
	CategoryMathematics     = "Mathematics"
	CategoryPhysics         = "Physics"
	CategoryChemistry       = "Chemistry"
	CategoryBiology         = "Biology"
	CategoryHistory         = "History"
	CategoryEnglish         = "English"
	CategoryOther           = "Other"

	// CategoryAll is the filter sentinel that matches every category.
	CategoryAll = "all"
)

// Categories lists the fixed category enumeration in display order.
var Categories = []string{
	CategoryComputerScience,
	CategoryMathematics,
	CategoryPhysics,
	CategoryChemistry,
	CategoryBiology,
	CategoryHistory,
	CategoryEnglish,
	CategoryOther,
}

// NormalizeCategory maps free input onto the enumeration. Matching ignores
// case and surrounding space; unknown values become Other and an empty value
// becomes def.
func NormalizeCategory(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	for _, c := range Categories {
		if strings.EqualFold(c, s) {
			return c
		}
	}
	return CategoryOther
}

var topicKeywords = []struct {
	category string
	words    []string
}{
	{CategoryComputerScience, []string{"programming", "code", "javascript", "python", "react", "java", "computer", "software"}},
	{CategoryMathematics, []string{"math", "calculus", "algebra", "geometry"}},
	{CategoryPhysics, []string{"physics", "mechanics", "quantum"}},
	{CategoryChemistry, []string{"chemistry", "chemical", "organic"}},
	{CategoryBiology, []string{"biology", "cell", "genetics", "photosynthesis"}},
	{CategoryHistory, []string{"history", "war", "ancient"}},
	{CategoryEnglish, []string{"literature", "english", "writing"}},
}

// CategorizeTopic guesses a category from keywords in a study topic. The
// first matching row wins; no match yields Other.
func CategorizeTopic(topic string) string {
	lower := strings.ToLower(topic)
	for _, row := range topicKeywords {
		for _, w := range row.words {
			if strings.Contains(lower, w) {
				return row.category
			}
		}
	}
	return CategoryOther
}
