package insight

import (
	"github.com/abhisek/lipredict/internal/classifier"
	"github.com/abhisek/lipredict/internal/contrib"
	"github.com/abhisek/lipredict/internal/features"
)

// Request is everything the narrative is allowed to talk about.
type Request struct {
	Selections    features.Selections
	Result        classifier.Result
	Contributions []contrib.Contribution
}

// Source records where a narrative came from.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Narrative is a short plain-language explanation of one prediction.
type Narrative struct {
	Headline string
	Summary  string
	Factors  []string
	Source   Source
}
