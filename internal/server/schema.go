package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const addTaskSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "text": {"type": "string"},
    "category": {"type": "string"},
    "status": {"type": "string"}
  },
  "required": ["text"],
  "additionalProperties": false
}`

const reorderSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "active_id": {"type": "string"},
    "over_id": {"type": "string"}
  },
  "required": ["active_id", "over_id"],
  "additionalProperties": false
}`

const filterSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "category": {"type": "string"}
  },
  "required": ["category"],
  "additionalProperties": false
}`

const selectionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "category": {"type": "string"},
    "status": {"type": "string"}
  },
  "minProperties": 1,
  "additionalProperties": false
}`

type schemas struct {
	addTask   *jsonschema.Schema
	reorder   *jsonschema.Schema
	filter    *jsonschema.Schema
	selection *jsonschema.Schema
}

func mustCompileSchemas() *schemas {
	return &schemas{
		addTask:   jsonschema.MustCompileString("add_task.json", addTaskSchema),
		reorder:   jsonschema.MustCompileString("reorder.json", reorderSchema),
		filter:    jsonschema.MustCompileString("filter.json", filterSchema),
		selection: jsonschema.MustCompileString("selection.json", selectionSchema),
	}
}

type addTaskRequest struct {
	Text     string  `json:"text"`
	Category *string `json:"category"`
	Status   *string `json:"status"`
}

type reorderRequest struct {
	ActiveID string `json:"active_id"`
	OverID   string `json:"over_id"`
}

type filterRequest struct {
	Category string `json:"category"`
}

type selectionRequest struct {
	Category *string `json:"category"`
	Status   *string `json:"status"`
}

// decodeBody reads a JSON body, checks it against schema and unmarshals it
// into dst. Errors are meant for the client.
func decodeBody(w http.ResponseWriter, r *http.Request, schema *jsonschema.Schema, dst any) error {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return schemaError(err)
	}
	return json.Unmarshal(data, dst)
}

// schemaError flattens a validation error into "path: message" pairs.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	var msgs []string
	collectSchemaErrors(ve, &msgs)
	return errors.New(strings.Join(msgs, "; "))
}

func collectSchemaErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		path := err.InstanceLocation
		if path == "" {
			path = "/"
		}
		*msgs = append(*msgs, path+": "+err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, msgs)
	}
}
