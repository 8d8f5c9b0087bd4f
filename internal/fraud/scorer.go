// Package fraud accumulates a bounded risk score per conversation from
// suspicious conversational patterns. The score is advisory input to order
// status decisioning, never a hard gate.
package fraud

import (
	"regexp"

	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/dialogue"
	"github.com/creativeworkssakib-source/autofloy4-sub004/internal/models"
)

const (
	deltaProbeKeywords  = 20
	deltaRandomKeywords = 15
	deltaRushedAddress  = 25
	deltaTooShort       = 10
	deltaMalformedPhone = 15

	maxScore = 100
)

var (
	probePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\btest\b`),
		regexp.MustCompile(`(?i)testing`),
		regexp.MustCompile(`(?i)just checking`),
		regexp.MustCompile(`(?i)check korlam`),
		regexp.MustCompile(`টেস্ট`),
		regexp.MustCompile(`পরীক্ষা`),
	}
	randomPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\brandom\b`),
		regexp.MustCompile(`(?i)anything`),
		regexp.MustCompile(`(?i)whatever`),
		regexp.MustCompile(`(?i)jekono`),
		regexp.MustCompile(`যেকোনো`),
		regexp.MustCompile(`যা খুশি`),
	}
)

// Score computes the conversation's new fake-order score from its prior
// score, the processed message text, the state just reached, and how many
// history entries existed before this message. The result never decreases
// and stays within [0, 100].
func Score(prior int, text string, state models.ConversationState, historyLen int) int {
	score := prior

	for _, p := range probePatterns {
		if p.MatchString(text) {
			score += deltaProbeKeywords
			break
		}
	}

	for _, p := range randomPatterns {
		if p.MatchString(text) {
			score += deltaRandomKeywords
			break
		}
	}

	if state == models.StateCollectingAddress && historyLen < 2 {
		score += deltaRushedAddress
	}

	if isCollecting(state) && len([]rune(text)) < 3 {
		score += deltaTooShort
	}

	if state == models.StateCollectingPhone && !dialogue.HasValidPhone(text) {
		score += deltaMalformedPhone
	}

	if score > maxScore {
		score = maxScore
	}
	if score < prior {
		score = prior
	}
	return score
}

func isCollecting(state models.ConversationState) bool {
	switch state {
	case models.StateCollectingName, models.StateCollectingPhone, models.StateCollectingAddress:
		return true
	}
	return false
}
