package classify

import (
	"regexp"

	"github.com/nsellier/brigade/internal/model"
	"github.com/nsellier/brigade/internal/textnorm"
)

// RoleAmbiguityMargin is the minimum gap between the seeker and offerer
// scores before a role is assigned. Below it the role stays unknown.
const RoleAmbiguityMargin = 1.5

type roleTarget int

const (
	targetSeeker roleTarget = iota
	targetOfferer
)

// roleRule is one phrase heuristic. Rules run against normalized text
// (lowercase, diacritics stripped), are independent, and accumulate: several
// can fire on the same submission.
type roleRule struct {
	name   string
	regex  *regexp.Regexp
	target roleTarget
	weight float64
}

func seekerRule(name, pattern string, weight float64) roleRule {
	return roleRule{name: name, regex: regexp.MustCompile(pattern), target: targetSeeker, weight: weight}
}

func offererRule(name, pattern string, weight float64) roleRule {
	return roleRule{name: name, regex: regexp.MustCompile(pattern), target: targetOfferer, weight: weight}
}

// roleRules is the fixed battery run by ClassifyRole. Job-seeking phrases
// outweigh the generic "looking for" patterns so that "je cherche une
// mission" resolves to candidate despite also matching the seeker side.
var roleRules = []roleRule{
	// Seeker of labor (recruiter).
	seekerRule("fr recruiting verb", `\b(nous recrutons|je recrute|on recrute|recrutons)\b`, 3),
	seekerRule("fr recruitment noun", `\brecrutement\b`, 2),
	seekerRule("fr hiring verb", `\bembauch(e|ons|er)\b`, 2),
	seekerRule("fr looking for someone", `\b(cherche|recherche|cherchons|recherchons)\s+(un|une|des|deux|plusieurs)\b`, 2),
	seekerRule("fr need someone", `\bbesoin\s+(d\s?un|d\s?une|de)\b`, 2),
	seekerRule("en we are hiring", `\b(we\s+are\s+hiring|we\s+re\s+hiring|now\s+hiring)\b`, 3),
	seekerRule("en hiring", `\bhiring\b`, 2),
	seekerRule("en looking for someone", `\blooking\s+for\s+(a|an|some)\b`, 2),
	seekerRule("en need someone", `\bneed\s+(a|an)\b`, 2),
	seekerRule("ar wanted", `مطلوب`, 3),
	seekerRule("ar we search for", `نبحث عن`, 2),

	// Offerer of own labor (candidate).
	offererRule("fr job seeking", `\b(cherche|recherche)\s+(un\s+|une\s+|des\s+)?(emploi|travail|mission|missions|poste|job|extra|extras)\b`, 4),
	offererRule("fr first person", `\bje\s+suis\b`, 1),
	offererRule("fr offering services", `\b(propose\s+mes\s+services|mes\s+services)\b`, 3),
	offererRule("fr available for", `\bdisponible\s+pour\b`, 2),
	offererRule("fr wants to work", `\bcherche\s+a\s+travailler\b`, 3),
	offererRule("en job seeking", `\blooking\s+for\s+(a\s+)?(job|work|gig|shift|shifts|mission)\b`, 4),
	offererRule("en available for work", `\bavailable\s+for\s+work\b`, 2),
	offererRule("freelance", `\bfreelance\b`, 1),
	offererRule("ar job seeking", `أبحث عن عمل`, 4),
}

// ClassifyRole scores the text for hiring-side and working-side signals and
// derives the requester role. Both scores are returned for inspection.
func ClassifyRole(text string) model.RoleSignal {
	normalized := textnorm.Normalize(text)

	var seeker, offerer float64
	for _, rule := range roleRules {
		if !rule.regex.MatchString(normalized) {
			continue
		}
		switch rule.target {
		case targetSeeker:
			seeker += rule.weight
		case targetOfferer:
			offerer += rule.weight
		}
	}

	return model.RoleSignal{
		SeekerScore:  seeker,
		OffererScore: offerer,
		Role:         model.DeriveRole(seeker, offerer, RoleAmbiguityMargin),
	}
}
