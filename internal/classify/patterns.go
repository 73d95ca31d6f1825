package classify

import "regexp"

// patternSet is a fixed list of keyword patterns matched case-insensitively
// against the query. Compiled once at startup, read-only afterwards.
type patternSet struct {
	patterns []*regexp.Regexp
}

func newPatternSet(expressions []string) *patternSet {
	compiled := make([]*regexp.Regexp, 0, len(expressions))
	for _, expression := range expressions {
		compiled = append(compiled, regexp.MustCompile(expression))
	}
	return &patternSet{patterns: compiled}
}

// matches reports whether any pattern matches the lowered query.
func (p *patternSet) matches(lowerQuery string) bool {
	for _, pattern := range p.patterns {
		if pattern.MatchString(lowerQuery) {
			return true
		}
	}
	return false
}

// count returns how many patterns match the lowered query at least once.
func (p *patternSet) count(lowerQuery string) int {
	matched := 0
	for _, pattern := range p.patterns {
		if pattern.MatchString(lowerQuery) {
			matched++
		}
	}
	return matched
}

type span struct {
	text  string
	start int
	end   int
}

// occurrences returns every match of every pattern, in pattern order then
// position order. Repeated occurrences of the same pattern are all kept.
func (p *patternSet) occurrences(lowerQuery string) []span {
	var spans []span
	for _, pattern := range p.patterns {
		for _, loc := range pattern.FindAllStringIndex(lowerQuery, -1) {
			spans = append(spans, span{
				text:  lowerQuery[loc[0]:loc[1]],
				start: loc[0],
				end:   loc[1],
			})
		}
	}
	return spans
}

var (
	complianceKeywords = newPatternSet([]string{
		`compliance`, `regulation`, `requirement`, `audit`,
		`control`, `policy`, `procedure`, `sox`, `sarbanes`,
		`oxley`, `internal control`, `framework`,
	})

	temporalIndicators = newPatternSet([]string{
		`when`, `date`, `period`, `timeline`, `history`,
		`past`, `future`, `schedule`, `deadline`,
	})

	complexIndicators = newPatternSet([]string{
		`compare`, `analyze`, `evaluate`, `assess`,
		`implications`, `impact`, `relationship`,
	})

	expertIndicators = newPatternSet([]string{
		`strategic`, `optimization`, `integration`,
		`architecture`, `framework`, `methodology`,
	})
)
