package datemath

import "time"

// Mention is a relative-date phrase found in free text, resolved
// against a base time.
type Mention struct {
	Phrase       string
	AbsoluteTime time.Time
}
