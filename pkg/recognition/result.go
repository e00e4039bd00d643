package recognition

// Result is the terminal outcome of a recognition call: either recognized
// text or absence. Absence is not an error.
type Result struct {
	text  string
	valid bool
}

var Absent = Result{}

func Text(s string) Result {
	return Result{
		text:  s,
		valid: true,
	}
}

func (r Result) Value() (string, bool) {
	return r.text, r.valid
}

func (r Result) IsAbsent() bool {
	return !r.valid
}

func (r Result) String() string {
	if !r.valid {
		return "<absent>"
	}

	return r.text
}
