package nlp

import "context"

// Entity is a named entity recognized in the input text, with character
// offsets into the original string.
type Entity struct {
	Text      string `json:"text"`
	Label     string `json:"label"`
	StartChar int    `json:"start_char"`
	EndChar   int    `json:"end_char"`
}

// Token carries the dependency label and punctuation flag for one token.
type Token struct {
	Dep     string `json:"dep"`
	IsPunct bool   `json:"is_punct"`
}

type ParseResult struct {
	Entities []Entity `json:"entities"`
	Tokens   []Token  `json:"tokens"`
}

// Parser is an interface for linguistic analysis of raw text
// This allows mocking in tests without a running NLP model
type Parser interface {
	Parse(ctx context.Context, text string) (*ParseResult, error)
}

// ZeroShotClassifier ranks candidate labels for a text without
// task-specific training. Implementations format each label through the
// hypothesis template (e.g. "This is a %s question.") and return the
// labels ordered by descending score.
type ZeroShotClassifier interface {
	Classify(ctx context.Context, text string, labels []string, hypothesisTemplate string) ([]string, error)
}
