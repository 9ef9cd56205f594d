package quiz

// IsCorrect reports whether answer matches the question's correct answer.
// Multi-select answers compare as sets. The unanswered sentinel and answers
// of the wrong shape are incorrect. Neither argument is modified.
func IsCorrect(q Question, answer Answer) bool {
	if !answer.IsAnswered() {
		return false
	}
	switch q.Type {
	case SingleChoice:
		got, ok := answer.Index()
		want, wantOK := q.CorrectAnswer.Index()
		return ok && wantOK && got == want
	case TrueFalse:
		got, ok := answer.Boolean()
		want, wantOK := q.CorrectAnswer.Boolean()
		return ok && wantOK && got == want
	case MultiSelect:
		if answer.kind != kindIndices || q.CorrectAnswer.kind != kindIndices {
			return false
		}
		return sameSet(answer.indices, q.CorrectAnswer.indices)
	}
	return false
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	members := make(map[int]struct{}, len(a))
	for _, i := range a {
		members[i] = struct{}{}
	}
	for _, i := range b {
		if _, ok := members[i]; !ok {
			return false
		}
	}
	return true
}
