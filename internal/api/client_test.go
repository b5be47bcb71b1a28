package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const startBodyAlternativas = `{
	"sessao": {"identificador": "abc-123", "version": 2, "status": "EM_ANDAMENTO", "horarioInicio": "2026-08-01T10:00:00Z"},
	"teste": {
		"titulo": "Teste de Personalidade",
		"descricao": "desc",
		"minutosEstimados": 5,
		"quantidadeTotalPergunta": 2,
		"perguntas": [
			{"idPergunta": 1, "descricao": "Q1", "alternativas": [
				{"letra": "a", "texto": "um"},
				{"letra": "b", "texto": "dois"}
			]},
			{"idPergunta": 2, "descricao": "Q2", "alternativas": [
				{"letra": "A", "texto": "sim"},
				{"letra": "B", "texto": "não"}
			]}
		]
	}
}`

const startBodyOpcoes = `{
	"sessao": {"identificador": "def-456"},
	"teste": {
		"perguntas": [
			{"idPergunta": 7, "descricao": "Q7", "opcoes": [
				{"texto": "concordo", "valor": "a", "perfil": "X"},
				{"texto": "discordo", "valor": "b", "perfil": "Y"}
			]}
		]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func TestStartTestDecodesAlternativas(t *testing.T) {
	var gotBody map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/app/iniciar-teste", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(startBodyAlternativas))
	})

	started, err := client.StartTest(context.Background(), "PE")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"tipoTeste": "PE"}, gotBody)
	assert.Equal(t, "abc-123", started.Session.ID)
	assert.Equal(t, 2, started.Session.Version)
	assert.Equal(t, "EM_ANDAMENTO", started.Session.Status)
	assert.Equal(t, 2, started.TotalQuestions)

	require.Len(t, started.Questions, 2)
	q1 := started.Questions[0]
	assert.Equal(t, 1, q1.ID)
	assert.Equal(t, "Q1", q1.Text)
	require.Len(t, q1.Options, 2)
	// Letter codes normalize to uppercase.
	assert.Equal(t, Option{Label: "um", Value: "A"}, q1.Options[0])
	assert.Equal(t, Option{Label: "dois", Value: "B"}, q1.Options[1])
}

func TestStartTestFallsBackToOpcoes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(startBodyOpcoes))
	})

	started, err := client.StartTest(context.Background(), "AG")
	require.NoError(t, err)

	require.Len(t, started.Questions, 1)
	opts := started.Questions[0].Options
	require.Len(t, opts, 2)
	assert.Equal(t, Option{Label: "concordo", Value: "A"}, opts[0])
	assert.Equal(t, Option{Label: "discordo", Value: "B"}, opts[1])
}

func TestStartTestAlternativasWinOverOpcoes(t *testing.T) {
	body := `{
		"sessao": {"identificador": "x"},
		"teste": {"perguntas": [
			{"idPergunta": 1, "descricao": "Q",
			 "alternativas": [{"letra": "a", "texto": "alt"}],
			 "opcoes": [{"texto": "opc", "valor": "z"}]}
		]}
	}`
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	started, err := client.StartTest(context.Background(), "PE")
	require.NoError(t, err)
	require.Len(t, started.Questions[0].Options, 1)
	assert.Equal(t, "alt", started.Questions[0].Options[0].Label)
}

func TestStartTestQuestionWithoutOptionsFails(t *testing.T) {
	body := `{
		"sessao": {"identificador": "x"},
		"teste": {"perguntas": [{"idPergunta": 3, "descricao": "Q3"}]}
	}`
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	_, err := client.StartTest(context.Background(), "PE")
	require.Error(t, err)

	var invalid *ErrInvalidPayload
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "question 3")
}

func TestStartTestSchemaViolation(t *testing.T) {
	// Missing session identifier.
	body := `{"sessao": {}, "teste": {"perguntas": [{"idPergunta": 1, "descricao": "Q"}]}}`
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	_, err := client.StartTest(context.Background(), "PE")
	var invalid *ErrInvalidPayload
	require.ErrorAs(t, err, &invalid)
}

func TestStartTestServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.StartTest(context.Background(), "PE")
	var unavailable *ErrUnavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, http.StatusBadGateway, unavailable.Status)
}

func TestStartTestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL)
	_, err := client.StartTest(context.Background(), "PE")

	var unavailable *ErrUnavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Zero(t, unavailable.Status)
	assert.Error(t, errors.Unwrap(err))
}

func TestGetResult(t *testing.T) {
	var gotReq ResultRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/app/obter-resultado", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(`{"informacoesCompletas": false, "perfil": "Analista", "frase": "Pensa antes de agir."}`))
	})

	req := ResultRequest{
		TestCode: "PE",
		Answers: []Answer{
			{QuestionID: 1, Option: "A"},
			{QuestionID: 2, Option: "B"},
		},
	}
	res, err := client.GetResult(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, req, gotReq)
	assert.False(t, res.Complete)
	assert.Equal(t, "Analista", res.Profile)
	assert.Empty(t, res.FullText)
}

func TestGetResultComplete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"informacoesCompletas": true, "perfil": "P", "frase": "f", "texto": "relatório completo"}`))
	})

	res, err := client.GetResult(context.Background(), ResultRequest{TestCode: "QI", Answers: []Answer{{QuestionID: 1, Option: "A"}}})
	require.NoError(t, err)
	assert.True(t, res.Complete)
	assert.Equal(t, "relatório completo", res.FullText)
}

func TestGetResultSchemaViolation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"perfil": "P"}`))
	})

	_, err := client.GetResult(context.Background(), ResultRequest{TestCode: "QI"})
	var invalid *ErrInvalidPayload
	require.ErrorAs(t, err, &invalid)
}

func TestGetResultMalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.GetResult(context.Background(), ResultRequest{TestCode: "QI"})
	var invalid *ErrInvalidPayload
	require.ErrorAs(t, err, &invalid)
}

func TestNewClientDefaultsToProduction(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultBaseURL, c.baseURL)
}
