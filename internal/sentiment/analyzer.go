package sentiment

import (
	"strings"
	"unicode"
)

const (
	// negationFactor scales the polarity of a negated word.
	negationFactor = -0.5

	// emoticonSubjectivity is the subjectivity of every emoticon.
	emoticonSubjectivity = 1.0
)

// Assessment is one scored word group, such as "not very good" or ":)".
type Assessment struct {
	Words        []string `json:"words"`
	Polarity     float64  `json:"polarity"`
	Subjectivity float64  `json:"subjectivity"`
}

// Score is the sentiment of a text.
type Score struct {
	// Polarity in [-1, 1], negative to positive.
	Polarity float64 `json:"polarity"`

	// Subjectivity in [0, 1], factual to opinionated.
	Subjectivity float64 `json:"subjectivity"`

	// Assessments are the scored word groups the means are taken over.
	Assessments []Assessment `json:"assessments"`
}

// Analyzer scores text against a lexicon. It is safe for concurrent use.
type Analyzer struct {
	lex *Lexicon
}

// NewAnalyzer returns an Analyzer using lex.
func NewAnalyzer(lex *Lexicon) *Analyzer {
	return &Analyzer{lex: lex}
}

// Analyze scores text with the embedded lexicon.
func Analyze(text string) Score {
	return NewAnalyzer(DefaultLexicon()).Analyze(text)
}

// pending is an assessment still open to modification by the next word.
type pending struct {
	words        []string
	polarity     float64
	subjectivity float64
	intensity    float64
	negated      bool
}

// Analyze scores text.
func (a *Analyzer) Analyze(text string) Score {
	var (
		groups   []*pending
		modifier *pending
		negation string
	)

	reset := func() {
		modifier = nil
		negation = ""
	}

	for _, field := range strings.Fields(text) {
		if p, ok := a.lex.emoticons[field]; ok {
			groups = append(groups, &pending{
				words:        []string{field},
				polarity:     p,
				subjectivity: emoticonSubjectivity,
				intensity:    1,
			})
			reset()
			continue
		}

		for _, word := range tokenize(field) {
			if a.isNegation(word) {
				negation = word
				modifier = nil
				continue
			}

			e, known := a.lex.words[word]
			if !known {
				// Single letters such as "a" keep a pending negation.
				if len(strings.Trim(word, "'")) > 1 {
					reset()
				}
				continue
			}

			var g *pending
			if modifier != nil {
				g = modifier
				g.words = append(g.words, word)
				g.polarity = clampFloat(e.polarity*g.intensity, -1, 1)
				g.subjectivity = clampFloat(e.subjectivity*g.intensity, 0, 1)
				g.intensity = e.intensity
			} else {
				g = &pending{
					words:        []string{word},
					polarity:     e.polarity,
					subjectivity: e.subjectivity,
					intensity:    e.intensity,
				}
				groups = append(groups, g)
			}

			if negation != "" {
				g.words = append([]string{negation}, g.words...)
				g.negated = true
				negation = ""
			}

			if e.modifier() {
				modifier = g
			} else {
				modifier = nil
			}
		}
	}

	return summarize(groups)
}

func (a *Analyzer) isNegation(word string) bool {
	return a.lex.negations[word] || strings.HasSuffix(word, "n't")
}

func summarize(groups []*pending) Score {
	score := Score{Assessments: make([]Assessment, 0, len(groups))}
	if len(groups) == 0 {
		return score
	}

	var polarity, subjectivity float64
	for _, g := range groups {
		p := g.polarity
		if g.negated {
			p *= negationFactor
		}
		score.Assessments = append(score.Assessments, Assessment{
			Words:        g.words,
			Polarity:     p,
			Subjectivity: g.subjectivity,
		})
		polarity += p
		subjectivity += g.subjectivity
	}

	n := float64(len(groups))
	score.Polarity = clampFloat(polarity/n, -1, 1)
	if score.Polarity == 0 {
		// Drop the sign of a negated zero.
		score.Polarity = 0
	}
	score.Subjectivity = clampFloat(subjectivity/n, 0, 1)
	return score
}

// tokenize lowercases a whitespace-separated field and splits it into
// words. Letters and apostrophes form words; everything else separates them.
func tokenize(field string) []string {
	field = strings.ToLower(strings.ReplaceAll(field, "’", "'"))
	return strings.FieldsFunc(field, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
