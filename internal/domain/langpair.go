package domain

// LangPair scopes a user's course and vocabulary state: the language the
// material is explained in, and the language being learned.
type LangPair struct {
	InstructLang string
	LearnLang    string
}

// Validate checks that both language codes are present.
func (p LangPair) Validate() error {
	if p.InstructLang == "" {
		return NewValidationError("instructLang", "required")
	}
	if p.LearnLang == "" {
		return NewValidationError("learnLang", "required")
	}
	return nil
}

// String renders the pair as "en->hi".
func (p LangPair) String() string {
	return p.InstructLang + "->" + p.LearnLang
}
