package domain

// Outcome captures what one source attempt produced.
type Outcome struct {
	Items int
	Err   error
}

// Usable reports whether an attempt is good enough to publish. A
// structurally successful retrieval that extracted zero items only
// disqualifies when emptyIsFailure is set.
func (o Outcome) Usable(emptyIsFailure bool) bool {
	if o.Err != nil {
		return false
	}
	if emptyIsFailure && o.Items == 0 {
		return false
	}
	return true
}

// Advance returns the stage that follows s after its attempt failed.
// hasSecondary tells whether a fallback feed source is configured at all.
func (s Stage) Advance(hasSecondary bool) Stage {
	switch s {
	case StageTryPrimary:
		if hasSecondary {
			return StageTrySecondary
		}
		return StageTryPlaceholder
	case StageTrySecondary:
		return StageTryPlaceholder
	default:
		return StageDone
	}
}

// DecideOutput resolves the placeholder stage. An existing artifact always
// beats a placeholder.
func DecideOutput(priorExists bool) Decision {
	if priorExists {
		return DecisionPreserve
	}
	return DecisionPublish
}
