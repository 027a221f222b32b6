package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func configSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("config.schema.json", schemaJSON)
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a raw YAML document against the config schema.
// Empty documents are accepted.
func validateDocument(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	if doc == nil {
		return nil
	}

	// The schema validator works on JSON values, so round-trip through JSON.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: cannot convert yaml to json: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return fmt.Errorf("config: cannot decode json: %w", err)
	}

	schema, err := configSchema()
	if err != nil {
		return fmt.Errorf("config: cannot compile schema: %w", err)
	}
	if err := schema.Validate(value); err != nil {
		return fmt.Errorf("config: %s", describe(err))
	}
	return nil
}

// describe flattens a schema validation error into one line per cause.
func describe(err error) string {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}

	var leaves []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			leaves = append(leaves, loc+": "+e.Message)
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(verr)
	return strings.Join(leaves, "; ")
}

// Validate checks the effective configuration against the schema.
func (c Config) Validate() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	return validateDocument(data)
}
