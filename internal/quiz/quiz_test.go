package quiz_test

import (
	"time"

	"github.com/vytor/cyberquest/internal/quiz"
)

func singleChoice(id string, correct int) quiz.Question {
	return quiz.Question{
		ID:            id,
		Type:          quiz.SingleChoice,
		Prompt:        "¿Qué contraseña es más segura?",
		Options:       []string{"123456", "M1-p3rr0!Azul", "contraseña"},
		CorrectAnswer: quiz.Choice(correct),
		Explanation:   "Mezcla letras, números y símbolos.",
	}
}

func trueFalse(id string, correct bool) quiz.Question {
	return quiz.Question{
		ID:            id,
		Type:          quiz.TrueFalse,
		Prompt:        "Es seguro compartir tu contraseña con tu mejor amigo.",
		CorrectAnswer: quiz.Bool(correct),
		Difficulty:    quiz.Medium,
		Explanation:   "Las contraseñas no se comparten.",
	}
}

func multiSelect(id string, correct ...int) quiz.Question {
	return quiz.Question{
		ID:            id,
		Type:          quiz.MultiSelect,
		Prompt:        "¿Qué señales indican un correo de phishing?",
		Options:       []string{"Urgencia", "Tu nombre bien escrito", "Enlaces raros", "Logo oficial", "Faltas de ortografía"},
		CorrectAnswer: quiz.Choices(correct...),
		Difficulty:    quiz.Hard,
	}
}

func threeQuestions() []quiz.Question {
	return []quiz.Question{
		singleChoice("q1", 1),
		trueFalse("q2", false),
		multiSelect("q3", 0, 2, 4),
	}
}

var fixedStart = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func stepClock() func() time.Time {
	t := fixedStart
	return func() time.Time {
		now := t
		t = t.Add(time.Minute)
		return now
	}
}
