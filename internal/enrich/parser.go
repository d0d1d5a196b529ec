package enrich

import (
	"fmt"
	"strings"

	"github.com/nsellier/brigade/internal/model"
)

// parseSuggestion extracts a Suggestion from the line-oriented response
// format. A missing or empty OCCUPATION line makes the response malformed.
func parseSuggestion(raw string) (Suggestion, error) {
	var s Suggestion

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "OCCUPATION:"):
			s.PrimaryOccupation = normalizeKey(strings.TrimPrefix(line, "OCCUPATION:"))
		case strings.HasPrefix(line, "SECONDARY:"):
			s.SecondaryOccupation = normalizeKey(strings.TrimPrefix(line, "SECONDARY:"))
		case strings.HasPrefix(line, "MISSING:"):
			for _, field := range strings.Split(strings.TrimPrefix(line, "MISSING:"), ",") {
				if field = strings.TrimSpace(field); field != "" {
					s.MissingFields = append(s.MissingFields, field)
				}
			}
		}
	}

	if s.PrimaryOccupation == "" {
		return Suggestion{}, fmt.Errorf("no OCCUPATION line in response")
	}

	return s, nil
}

// parseDraft extracts a Draft from the line-oriented response format. The
// description may continue over several lines until the end of the response.
func parseDraft(raw string) (model.Draft, error) {
	var draft model.Draft
	var description []string
	inDescription := false

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "TITLE:"):
			draft.Title = strings.TrimSpace(strings.TrimPrefix(trimmed, "TITLE:"))
			inDescription = false
		case strings.HasPrefix(trimmed, "DESCRIPTION:"):
			inDescription = true
			if rest := strings.TrimSpace(strings.TrimPrefix(trimmed, "DESCRIPTION:")); rest != "" {
				description = append(description, rest)
			}
		case inDescription && trimmed != "":
			description = append(description, trimmed)
		}
	}

	draft.Description = strings.Join(description, " ")
	draft.Source = model.DraftEnriched

	if draft.Title == "" || draft.Description == "" {
		return model.Draft{}, fmt.Errorf("response missing TITLE or DESCRIPTION")
	}

	return draft, nil
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
