package models

import (
	"time"
)

// SearchResult pairs a matching chunk with its owning document and a
// cosine similarity score in [-1, 1]
type SearchResult struct {
	Chunk    DocumentChunk `json:"chunk"`
	Document Document      `json:"document"`
	Score    float64       `json:"score"`

	// Human-readable explanation of why the chunk matched. Explanatory
	// metadata only, never used for ranking.
	RelevanceReason string `json:"relevance_reason"`
}

// QuestionIntent classifies a question by cheap lexical rules
type QuestionIntent string

const (
	IntentDefinition QuestionIntent = "definition" // "what is", "define", ...
	IntentHowTo      QuestionIntent = "howto"      // "how to", "how do"
	IntentWhy        QuestionIntent = "why"        // starts with "why"
	IntentGeneral    QuestionIntent = "general"
)

// QAResult is an answered question. Immutable once constructed; appended
// to the session-scoped history list.
type QAResult struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`

	// Sources are the ranked search results the answer was drawn from,
	// ordered by descending score
	Sources []SearchResult `json:"sources"`

	// Confidence is a derived [0,1] score estimating answer reliability
	// from retrieval score statistics
	Confidence float64 `json:"confidence"`

	Timestamp time.Time `json:"timestamp"`
}
