package kudos

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TimoKask/Creditstar-Kudos/internal/domain"
)

// statsWindowMonths is the trailing leaderboard window.
const statsWindowMonths = 3

// topN is the leaderboard depth.
const topN = 5

// rankMarkers decorate ranks 1-3; ranks 4-5 render unmarked.
var rankMarkers = []string{":first_place_medal:", ":second_place_medal:", ":third_place_medal:"}

// LeaderboardEntry is one user and their count within the window.
type LeaderboardEntry struct {
	UserID string
	Count  int
}

// Leaderboard holds the top givers and receivers of the stats window.
type Leaderboard struct {
	TopGivers    []LeaderboardEntry
	TopReceivers []LeaderboardEntry
}

// Empty reports whether the window contained no events.
func (l Leaderboard) Empty() bool {
	return len(l.TopGivers) == 0 && len(l.TopReceivers) == 0
}

// Aggregate reduces a window of kudos events into top-5 givers and receivers.
// An event with N recipients contributes 1 to each of the N receiver counters
// and 1 to a single giver counter. Input ordering is irrelevant: ties are
// broken by ascending user ID, so the result is deterministic.
func Aggregate(events []domain.KudosEvent) Leaderboard {
	givers := make(map[string]int)
	receivers := make(map[string]int)

	for _, event := range events {
		givers[event.SenderID]++
		for _, id := range event.RecipientIDs {
			receivers[id]++
		}
	}

	return Leaderboard{
		TopGivers:    topEntries(givers),
		TopReceivers: topEntries(receivers),
	}
}

func topEntries(counts map[string]int) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(counts))
	for id, count := range counts {
		entries = append(entries, LeaderboardEntry{UserID: id, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].UserID < entries[j].UserID
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

// RenderLeaderboard formats a leaderboard as Slack message text. User IDs are
// emitted as mention tokens so the client renders display names.
func RenderLeaderboard(lb Leaderboard) string {
	if lb.Empty() {
		return "No kudos sent in the last 3 months yet. Be the first! :tada:"
	}

	var b strings.Builder
	b.WriteString("*Kudos leaderboard — last 3 months*\n\n")
	b.WriteString("*Top givers*\n")
	writeEntries(&b, lb.TopGivers)
	b.WriteString("\n*Top receivers*\n")
	writeEntries(&b, lb.TopReceivers)
	return b.String()
}

func writeEntries(b *strings.Builder, entries []LeaderboardEntry) {
	for i, e := range entries {
		if i < len(rankMarkers) {
			fmt.Fprintf(b, "%s <@%s> — %d\n", rankMarkers[i], e.UserID, e.Count)
		} else {
			fmt.Fprintf(b, "%d. <@%s> — %d\n", i+1, e.UserID, e.Count)
		}
	}
}
