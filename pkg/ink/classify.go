package ink

// Intent is the semantic class assigned to a stroke at export time.
type Intent int

const (
	IntentProse Intent = iota
	IntentMath
)

func (i Intent) String() string {
	switch i {
	case IntentMath:
		return "math"
	}

	return "prose"
}

// Classifier maps the tool attribute of a stroke to an Intent. Only strokes
// inked in exactly MathColor are math; everything else, including strokes of
// tools without color, is prose.
type Classifier struct {
	MathColor Color
}

func NewClassifier() *Classifier {
	return &Classifier{
		MathColor: Green,
	}
}

func (c *Classifier) Intent(s Stroke) Intent {
	if s.Tool.Inks() && s.Tool.Color == c.MathColor {
		return IntentMath
	}

	return IntentProse
}

type Classification struct {
	Prose []Stroke
	Math  []Stroke
}

// Classify partitions strokes into prose and math keeping drawing order
// within each class.
func (c *Classifier) Classify(strokes []Stroke) Classification {
	var result Classification

	for _, s := range strokes {
		switch c.Intent(s) {
		case IntentMath:
			result.Math = append(result.Math, s)

		default:
			result.Prose = append(result.Prose, s)
		}
	}

	return result
}
