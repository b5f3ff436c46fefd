package sentiment

// Polarity labels.
const (
	LabelPositive = "Positive Comment"
	LabelNegative = "Negative Comment"
	LabelNeutral  = "Neutral Comment"
)

// Subjectivity labels.
const (
	LabelObjective  = "Completely objective"
	LabelSubjective = "Highly subjective"
)

// Verdict is a raw score with its label.
type Verdict struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// PolarityLabel classifies a polarity score.
func PolarityLabel(polarity float64) string {
	switch {
	case polarity > 0:
		return LabelPositive
	case polarity < 0:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// SubjectivityLabel classifies a subjectivity score. Only exactly zero is
// objective.
func SubjectivityLabel(subjectivity float64) string {
	if subjectivity == 0 {
		return LabelObjective
	}
	return LabelSubjective
}

// CheckPolarity scores text and labels its polarity.
func CheckPolarity(text string) Verdict {
	p := Analyze(text).Polarity
	return Verdict{Score: p, Label: PolarityLabel(p)}
}

// CheckSubjectivity scores text and labels its subjectivity.
func CheckSubjectivity(text string) Verdict {
	s := Analyze(text).Subjectivity
	return Verdict{Score: s, Label: SubjectivityLabel(s)}
}
