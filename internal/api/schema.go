package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// startSchema pins the minimum shape of the start-test response. Question
// options are validated separately by the tagged-union decoder, which owns
// the alternativas/opcoes fallback rule.
var startSchema = schemaDef{
	name: "iniciar-teste",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"sessao": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"identificador": map[string]any{"type": "string", "minLength": 1},
					"version":       map[string]any{"type": "integer"},
					"status":        map[string]any{"type": "string"},
				},
				"required": []any{"identificador"},
			},
			"teste": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"perguntas": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"idPergunta": map[string]any{"type": "integer"},
								"descricao":  map[string]any{"type": "string"},
							},
							"required": []any{"idPergunta", "descricao"},
						},
					},
				},
				"required": []any{"perguntas"},
			},
		},
		"required": []any{"sessao", "teste"},
	},
}

// resultSchema pins the shape of the get-result response.
var resultSchema = schemaDef{
	name: "obter-resultado",
	definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"informacoesCompletas": map[string]any{"type": "boolean"},
			"perfil":               map[string]any{"type": "string"},
			"frase":                map[string]any{"type": "string"},
			"texto":                map[string]any{"type": "string"},
		},
		"required": []any{"informacoesCompletas", "perfil", "frase"},
	},
}

type schemaDef struct {
	name       string
	definition map[string]any
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validatePayload checks raw JSON against a schema definition before it is
// unmarshalled into typed structs.
func validatePayload(def schemaDef, raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidPayload{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema(def)
	if err != nil {
		return &ErrInvalidPayload{Err: fmt.Errorf("compile schema %q: %w", def.name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidPayload{Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

func compiledSchema(def schemaDef) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(def.name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(def.definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", def.name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(def.name, compiled)
	return compiled, nil
}
