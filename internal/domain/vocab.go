package domain

// MasteryThreshold is the exposure count at which a learning term is recycled:
// it leaves the learning bucket and returns to unseen with its count reset.
// The recycle-to-unseen behavior (rather than retiring the term as "done") is
// deliberate spaced-exposure recycling and is pinned by tests.
const MasteryThreshold = 5

// TermState is the bucket a vocabulary term occupies for one course.
// A term is always in exactly one state; the storage schema keys terms by
// (course, term) so the two buckets cannot overlap.
type TermState string

const (
	// TermUnseen: the term has appeared in consumed content but carries no
	// exposure count.
	TermUnseen TermState = "UNSEEN"
	// TermLearning: the user has explicitly inspected the term; it carries an
	// exposure count >= 0.
	TermLearning TermState = "LEARNING"
)

// Valid reports whether s is a known term state.
func (s TermState) Valid() bool {
	return s == TermUnseen || s == TermLearning
}

// VocabTerm is one tracked term within a course.
type VocabTerm struct {
	Term          string
	State         TermState
	ExposureCount int
}
