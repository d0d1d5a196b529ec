package classify

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nsellier/brigade/internal/lexicon"
	"github.com/nsellier/brigade/internal/model"
)

// Confidence assigned to occupations injected by the enrichment fallback
// when the deterministic pass did not detect them at all.
const (
	fallbackPrimaryConfidence   = 0.6
	fallbackSecondaryConfidence = 0.4
)

// enrichmentConfidenceFloor marks needs whose top detection is too weak to
// publish without consulting the fallback.
const enrichmentConfidenceFloor = 0.5

// Assembler composes the classification stages into one immutable ParsedNeed.
type Assembler struct {
	detector *Detector
}

// NewAssembler creates an assembler backed by the given lexicon store.
func NewAssembler(store *lexicon.Store) *Assembler {
	return &Assembler{detector: NewDetector(store)}
}

// Assemble runs the full deterministic pipeline over one submission. It is
// total: empty or unrecognizable text yields a degenerate record with an
// empty occupation list and incomplete readiness, never an error.
func (a *Assembler) Assemble(text string) *model.ParsedNeed {
	occupations := a.detector.Detect(text)
	role := ClassifyRole(text)
	context := ExtractContext(text)
	readiness := ComputeReadiness(occupations, context)

	need := &model.ParsedNeed{
		ID:          uuid.NewString(),
		RawText:     text,
		Occupations: occupations,
		Primary:     occupations.Top(),
		Context:     context,
		Role:        role,
		Direction:   role.Role.Direction(),
		Readiness:   readiness,
		CreatedAt:   time.Now().UTC(),
	}
	need.NeedsEnrichment = needsEnrichment(need)

	return need
}

// MergeSuggestion folds an enrichment suggestion into a need, producing a
// new record: the suggested primary is promoted to the front (or prepended
// with a fixed moderate confidence), the secondary appended when absent, and
// readiness recomputed over the merged list.
func (a *Assembler) MergeSuggestion(need *model.ParsedNeed, primary, secondary string) *model.ParsedNeed {
	primary = strings.TrimSpace(primary)
	if primary == "" {
		return need
	}

	occupations := need.Occupations.Promote(primary, fallbackPrimaryConfidence)

	if secondary = strings.TrimSpace(secondary); secondary != "" && !occupations.Contains(secondary) {
		occupations = append(occupations, model.DetectedOccupation{
			Key:        secondary,
			Confidence: fallbackSecondaryConfidence,
		})
	}

	merged := need.WithOccupations(occupations)
	merged.Readiness = ComputeReadiness(merged.Occupations, merged.Context)
	return merged
}

func needsEnrichment(need *model.ParsedNeed) bool {
	if need.Primary == nil {
		return true
	}
	if need.Primary.Confidence < enrichmentConfidenceFloor {
		return true
	}
	return need.Readiness.Status == model.StatusIncomplete
}
