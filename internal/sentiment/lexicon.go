package sentiment

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

// entry is the score of one lexicon word.
type entry struct {
	polarity     float64
	subjectivity float64
	intensity    float64
}

// modifier reports whether the word scales the word that follows it.
func (e entry) modifier() bool {
	return e.intensity != 1
}

// Lexicon holds the word scores an Analyzer uses.
type Lexicon struct {
	words     map[string]entry
	negations map[string]bool
	emoticons map[string]float64
}

// lexiconFile is the YAML layout of a lexicon.
type lexiconFile struct {
	Words     map[string][]float64 `yaml:"words"`
	Negations []string             `yaml:"negations"`
	Emoticons map[string]float64   `yaml:"emoticons"`
}

// ParseLexicon parses a YAML lexicon. Words map to
// [polarity, subjectivity, intensity].
func ParseLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}

	lex := &Lexicon{
		words:     make(map[string]entry, len(f.Words)),
		negations: make(map[string]bool, len(f.Negations)),
		emoticons: make(map[string]float64, len(f.Emoticons)),
	}

	for word, v := range f.Words {
		if len(v) != 3 {
			return nil, fmt.Errorf("lexicon word %q: want [polarity, subjectivity, intensity], got %d values", word, len(v))
		}
		e := entry{polarity: v[0], subjectivity: v[1], intensity: v[2]}
		if e.polarity < -1 || e.polarity > 1 {
			return nil, fmt.Errorf("lexicon word %q: polarity %.2f out of [-1, 1]", word, e.polarity)
		}
		if e.subjectivity < 0 || e.subjectivity > 1 {
			return nil, fmt.Errorf("lexicon word %q: subjectivity %.2f out of [0, 1]", word, e.subjectivity)
		}
		if e.intensity <= 0 {
			return nil, fmt.Errorf("lexicon word %q: intensity %.2f must be > 0", word, e.intensity)
		}
		lex.words[strings.ToLower(word)] = e
	}
	for _, n := range f.Negations {
		lex.negations[strings.ToLower(n)] = true
	}
	for emo, p := range f.Emoticons {
		if p < -1 || p > 1 {
			return nil, fmt.Errorf("emoticon %q: polarity %.2f out of [-1, 1]", emo, p)
		}
		lex.emoticons[emo] = p
	}

	return lex, nil
}

// Len returns the number of scored words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

var defaultLexicon = sync.OnceValue(func() *Lexicon {
	lex, err := ParseLexicon(lexiconYAML)
	if err != nil {
		panic(fmt.Sprintf("sentiment: embedded lexicon: %v", err))
	}
	return lex
})

// DefaultLexicon returns the embedded English lexicon.
func DefaultLexicon() *Lexicon {
	return defaultLexicon()
}
