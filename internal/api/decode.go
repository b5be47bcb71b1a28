package api

import (
	"fmt"
	"strings"
)

// decodeQuestions reconciles the two raw question representations into the
// canonical shape. Lettered alternativas win when present; valued opcoes are
// the fallback. A question with neither, or with an empty list, is a hard
// decode error; a partially loaded quiz must never be presented.
func decodeQuestions(raw []perguntaPayload) ([]Question, error) {
	questions := make([]Question, 0, len(raw))
	for _, p := range raw {
		options, err := decodeOptions(p)
		if err != nil {
			return nil, err
		}
		questions = append(questions, Question{
			ID:      p.IDPergunta,
			Text:    p.Descricao,
			Options: options,
		})
	}
	return questions, nil
}

func decodeOptions(p perguntaPayload) ([]Option, error) {
	if len(p.Alternativas) > 0 {
		options := make([]Option, len(p.Alternativas))
		for i, alt := range p.Alternativas {
			options[i] = Option{
				Label: alt.Texto,
				Value: strings.ToUpper(alt.Letra),
			}
		}
		return options, nil
	}

	if len(p.Opcoes) > 0 {
		options := make([]Option, len(p.Opcoes))
		for i, opt := range p.Opcoes {
			options[i] = Option{
				Label: opt.Texto,
				Value: strings.ToUpper(opt.Valor),
			}
		}
		return options, nil
	}

	return nil, &ErrInvalidPayload{
		Err: fmt.Errorf("question %d has no alternativas or opcoes", p.IDPergunta),
	}
}
