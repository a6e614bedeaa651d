package report

// Status is the size annotation shown for each batch.
type Status int

const (
	StatusStable Status = iota
	StatusLarge
)

// Label is the text written after "STATUS: ".
func (s Status) Label() string {
	if s == StatusLarge {
		return "⚠️ LARGE COMPONENT"
	}
	return "✅ STABLE"
}

func (s Status) String() string {
	if s == StatusLarge {
		return "large"
	}
	return "stable"
}

// Classify marks an entry LARGE when its newline count exceeds threshold.
// A count equal to the threshold is still stable.
func Classify(lineCount, threshold int) Status {
	if lineCount > threshold {
		return StatusLarge
	}
	return StatusStable
}
