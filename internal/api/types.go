package api

// Option is one selectable answer for a question. Value is the normalized
// uppercase option code sent back to the API.
type Option struct {
	Label string
	Value string
}

// Question is the canonical question shape after decoding, independent of
// which raw representation the API used.
type Question struct {
	ID      int
	Text    string
	Options []Option
}

// SessionInfo carries the API-assigned session metadata. Version and Status
// are echoed for display only; no client logic depends on their values.
type SessionInfo struct {
	ID        string
	Version   int
	Status    string
	StartedAt string
}

// StartSession is the decoded response of the start-test operation.
type StartSession struct {
	Session          SessionInfo
	Title            string
	Description      string
	EstimatedMinutes int
	TotalQuestions   int
	Questions        []Question
}

// Result is the scoring response. Complete is the only authority on whether
// the full report may be shown. Field tags match the wire format so a
// persisted Result round-trips byte-compatible with the API payload.
type Result struct {
	Complete bool   `json:"informacoesCompletas"`
	Profile  string `json:"perfil"`
	Phrase   string `json:"frase"`
	FullText string `json:"texto,omitempty"`
}

// Answer is one submitted answer pair.
type Answer struct {
	QuestionID int    `json:"idPergunta"`
	Option     string `json:"alternativaLetra"`
}

// ResultRequest is the body of the get-result operation. Answers must be
// sorted ascending by question id for deterministic request bodies.
type ResultRequest struct {
	TestCode string   `json:"tipoTeste"`
	Answers  []Answer `json:"respostas"`
}

// Wire shapes for the start-test response. Questions arrive in one of two
// representations: lettered alternativas or valued opcoes.

type startResponse struct {
	Sessao sessaoPayload `json:"sessao"`
	Teste  testePayload  `json:"teste"`
}

type sessaoPayload struct {
	Identificador string `json:"identificador"`
	Version       int    `json:"version"`
	Status        string `json:"status"`
	HorarioInicio string `json:"horarioInicio"`
}

type testePayload struct {
	Titulo                  string            `json:"titulo"`
	Descricao               string            `json:"descricao"`
	MinutosEstimados        int               `json:"minutosEstimados"`
	QuantidadeTotalPergunta int               `json:"quantidadeTotalPergunta"`
	Perguntas               []perguntaPayload `json:"perguntas"`
}

type perguntaPayload struct {
	IDPergunta   int                  `json:"idPergunta"`
	Descricao    string               `json:"descricao"`
	Alternativas []alternativaPayload `json:"alternativas"`
	Opcoes       []opcaoPayload       `json:"opcoes"`
}

type alternativaPayload struct {
	Letra string `json:"letra"`
	Texto string `json:"texto"`
}

type opcaoPayload struct {
	Texto  string `json:"texto"`
	Valor  string `json:"valor"`
	Perfil string `json:"perfil"`
}
