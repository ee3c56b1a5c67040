// README: Response shaping helpers shared by classifier implementations.
package ai

import "strings"

// FoldYes reports whether a classifier response means yes: the trimmed,
// lower-cased text must equal "yes" exactly. Anything else, malformed output
// included, is no.
func FoldYes(response string) bool {
	return strings.EqualFold(strings.TrimSpace(response), "yes")
}

// SplitQuestions turns raw generation output into an ordered question list,
// one per line. Blank lines become blank questions; dropping them is a caller
// policy, not done here, so question/answer pairing stays stable.
func SplitQuestions(raw string) []string {
	lines := strings.Split(raw, "\n")
	questions := make([]string, len(lines))
	for i, line := range lines {
		questions[i] = strings.TrimSuffix(line, "\r")
	}
	return questions
}
