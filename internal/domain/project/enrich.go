package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/collaborox/collaboro-gateway/internal/domain/directory"
)

// Enrich joins raw projects with the user collection and fills in the
// presentation metrics. Member resolution takes the de-duplicated union of
// manager and members in first-seen order; ids with no matching user are
// dropped without error.
func Enrich(projects []Project, users []directory.User, now time.Time) []Enriched {
	byID := make(map[string]directory.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	enriched := make([]Enriched, 0, len(projects))
	for _, p := range projects {
		m := metricsFor(p.ID, now)

		e := Enriched{
			ID:             p.ID,
			Name:           p.Name,
			Description:    p.Description,
			Tags:           p.Tags,
			Priority:       p.Priority,
			CreatedAt:      p.CreatedAt,
			Members:        resolveMembers(p, byID),
			Progress:       m.Progress,
			TotalTasks:     m.TotalTasks,
			CompletedTasks: m.CompletedTasks,
			OverdueTasks:   m.OverdueTasks,
			DueDate:        m.DueDate,
			LastActivity:   m.LastActivity,
			Status:         StatusForProgress(m.Progress),
		}
		if !e.Priority.Valid() {
			e.Priority = PriorityMedium
		}
		if e.Description == "" {
			e.Description = describe(p)
		}
		enriched = append(enriched, e)
	}
	return enriched
}

func resolveMembers(p Project, users map[string]directory.User) []Member {
	ids := make([]string, 0, len(p.Members)+1)
	seen := make(map[string]bool, len(p.Members)+1)
	for _, id := range append([]string{p.ManagerID}, p.Members...) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	members := make([]Member, 0, len(ids))
	for _, id := range ids {
		u, ok := users[id]
		if !ok {
			continue
		}
		name := u.FullName()
		members = append(members, Member{
			ID:        u.ID,
			Name:      name,
			AvatarURL: AvatarURL(name),
		})
	}
	return members
}

func describe(p Project) string {
	focus := "innovation"
	if len(p.Tags) > 0 {
		focus = strings.Join(p.Tags, ", ")
	}
	return fmt.Sprintf("%s - A collaborative project focusing on %s.", p.Name, focus)
}
