package project

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"
	"time"
)

// The upstream API carries no task metrics, so the board shows placeholder
// values. They are seeded by project ID to keep the display stable across
// refreshes; they are decorative, not authoritative.

var lastActivityChoices = []string{
	"5 minutes ago", "30 minutes ago", "1 hour ago", "2 hours ago",
	"1 day ago", "2 days ago", "3 days ago", "1 week ago",
}

type metrics struct {
	Progress       int
	TotalTasks     int
	CompletedTasks int
	OverdueTasks   int
	DueDate        string
	LastActivity   string
}

func metricsFor(projectID string, now time.Time) metrics {
	h := fnv.New64a()
	h.Write([]byte(projectID))
	r := rand.New(rand.NewSource(int64(h.Sum64())))

	m := metrics{
		Progress:   r.Intn(101),
		TotalTasks: r.Intn(30) + 5,
	}
	m.CompletedTasks = r.Intn(m.TotalTasks)
	if remaining := m.TotalTasks - m.CompletedTasks; remaining > 0 {
		// Roughly a fifth of the remaining tasks slip past their dates.
		m.OverdueTasks = r.Intn(remaining) / 5
	}

	due := now.Add(time.Duration(r.Int63n(int64(90 * 24 * time.Hour))))
	m.DueDate = due.Format("Jan 2, 2006")
	m.LastActivity = lastActivityChoices[r.Intn(len(lastActivityChoices))]
	return m
}

// AvatarURL builds a deterministic avatar for a display name. Two users with
// the same normalized name share an avatar; that collision is accepted.
func AvatarURL(name string) string {
	seed := strings.ReplaceAll(strings.ToLower(name), " ", "")
	return fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf", seed)
}
