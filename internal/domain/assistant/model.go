package assistant

import "time"

// ResponseType is the category of assistant interaction.
type ResponseType string

const (
	TypeAnalysis   ResponseType = "analysis"
	TypeSuggestion ResponseType = "suggestion"
	TypeChat       ResponseType = "chat"
)

// Response is one assistant answer. Created exactly once per user action and
// never modified afterwards.
type Response struct {
	ID              string       `json:"id"`
	Type            ResponseType `json:"type"`
	Title           string       `json:"title"`
	Content         string       `json:"content"`
	Recommendations []string     `json:"recommendations"`
	Timestamp       time.Time    `json:"timestamp"`
	ProjectID       string       `json:"projectId,omitempty"`
}

var analysisRecommendations = []string{
	"Set up automated testing pipeline",
	"Create detailed project timeline",
	"Plan regular team check-ins",
	"Document technical requirements",
}

var suggestionRecommendations = []string{
	"Prioritize MVP features first",
	"Set realistic deadlines",
	"Assign tasks based on expertise",
	"Plan regular progress reviews",
}

// recommendationsFor returns the canned follow-ups shown next to a response.
// Chat answers carry none.
func recommendationsFor(t ResponseType) []string {
	switch t {
	case TypeAnalysis:
		return analysisRecommendations
	case TypeSuggestion:
		return suggestionRecommendations
	default:
		return nil
	}
}
