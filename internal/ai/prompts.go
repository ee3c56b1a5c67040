// README: Prompt builders for the four classifier operations.
package ai

import (
	"fmt"
	"strings"

	"railmadad/internal/modules/grievance"
)

func categoryPrompt(text string) string {
	return fmt.Sprintf(`Classify the following grievance into one of the following categories:
%s

Grievance: "%s"

Category:`, strings.Join(grievance.KnownCategories, ", "), text)
}

func domainPrompt(text string) string {
	return fmt.Sprintf(`Identify whether the following grievance is related to a train or station:

Grievance: "%s"

Response (Train/Station):`, text)
}

func goodsPrompt(text string) string {
	return fmt.Sprintf(`Is the following grievance related to goods (Yes/No)?

Grievance: "%s"

Response:`, text)
}

func followupPrompt(text, category string) string {
	return fmt.Sprintf(`Based on the following grievance in the category "%s", generate 3-4 follow-up questions.

Grievance: "%s"

Questions:`, category, text)
}
