// Package contract decodes the payloads the quiz and results widgets consume,
// validating them against embedded JSON schemas before they reach Go types.
package contract

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"learnpath/internal/dto"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemasFS embed.FS

const (
	questionSchema = "question.json"
	dataSchema     = "data.json"
)

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

func schemas() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		out := make(map[string]*jsonschema.Schema, 2)
		for _, name := range []string{questionSchema, dataSchema} {
			raw, err := schemasFS.ReadFile("schemas/" + name)
			if err != nil {
				compileErr = fmt.Errorf("read schema %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
			if err != nil {
				compileErr = fmt.Errorf("parse schema %s: %w", name, err)
				return
			}
			url := "schema://learnpath/" + name
			if err := c.AddResource(url, doc); err != nil {
				compileErr = fmt.Errorf("add schema %s: %w", name, err)
				return
			}
			sch, err := c.Compile(url)
			if err != nil {
				compileErr = fmt.Errorf("compile schema %s: %w", name, err)
				return
			}
			out[name] = sch
		}
		compiled = out
	})
	return compiled, compileErr
}

func validate(name string, body []byte) error {
	all, err := schemas()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := all[name].Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// DecodeQuestion validates and decodes a /quiz/question payload. A question
// with zero answers is valid here; deciding what it means is up to the caller.
func DecodeQuestion(body []byte) (*dto.QuestionResponse, error) {
	if err := validate(questionSchema, body); err != nil {
		return nil, err
	}
	var q dto.QuestionResponse
	if err := json.Unmarshal(body, &q); err != nil {
		return nil, fmt.Errorf("decode question: %w", err)
	}
	return &q, nil
}

// DecodeData validates and decodes a /data payload.
func DecodeData(body []byte) (*dto.DataResponse, error) {
	if err := validate(dataSchema, body); err != nil {
		return nil, err
	}
	var d dto.DataResponse
	if err := json.Unmarshal(body, &d); err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	return &d, nil
}
