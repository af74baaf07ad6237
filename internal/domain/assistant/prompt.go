package assistant

import (
	"fmt"
	"strings"

	"github.com/collaborox/collaboro-gateway/internal/domain/project"
)

// Prompt construction is pure: the same project and input always produce the
// same prompt string.

func analysisPrompt(p project.Project) string {
	return fmt.Sprintf(`Analyze this software project and provide detailed insights:

Project: %s
Description: %s
Priority: %s
Technologies: %s
Team Size: %d
Created: %s

Provide: health assessment, risks, recommendations, and next steps.`,
		p.Name, p.Description, p.Priority, strings.Join(p.Tags, ", "),
		len(p.Members), p.CreatedAt.Format("1/2/2006"))
}

func suggestionPrompt(p project.Project) string {
	return fmt.Sprintf(`Generate specific, actionable task suggestions for this project:

Project: %s
Description: %s
Tech Stack: %s
Priority: %s

Provide 5-7 specific tasks with clear deliverables and estimated effort.`,
		p.Name, p.Description, strings.Join(p.Tags, ", "), p.Priority)
}

func chatPrompt(p project.Project, input string) string {
	return fmt.Sprintf(`%s

Project Context:
- Working on: %s
- Description: %s
- Technologies: %s
- Priority: %s

Please provide helpful, specific advice.`,
		input, p.Name, p.Description, strings.Join(p.Tags, ", "), p.Priority)
}
