package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/build_configuration.schema.json
var documentSchema []byte

var (
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
	compileSchemaOnce sync.Once
)

// DocumentSchema returns the JSON Schema every configuration file must satisfy.
func DocumentSchema() []byte {
	out := make([]byte, len(documentSchema))
	copy(out, documentSchema)
	return out
}

func schema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource("build_configuration.schema.json", bytes.NewReader(documentSchema)); err != nil {
			compiledSchemaErr = fmt.Errorf("failed to add configuration schema: %w", err)
			return
		}

		compiledSchema, compiledSchemaErr = compiler.Compile("build_configuration.schema.json")
		if compiledSchemaErr != nil {
			compiledSchemaErr = fmt.Errorf("failed to compile configuration schema: %w", compiledSchemaErr)
		}
	})
	return compiledSchema, compiledSchemaErr
}

// validateSchema checks raw YAML against the configuration schema.
func validateSchema(data []byte) error {
	s, err := schema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}

	// jsonschema v5 expects the raw JSON value decoded with UseNumber.
	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("failed to read configuration document: %w", err)
	}
	if t, _ := decoder.Token(); t != nil {
		return fmt.Errorf("failed to read configuration document: invalid character %v after top-level value", t)
	}

	if err := s.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// formatSchemaValidationError flattens nested schema errors into one line per
// failing location.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("schema validation failed: %s", err.Message)
	}
	return fmt.Errorf("schema validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
