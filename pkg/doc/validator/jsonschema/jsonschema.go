/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/trustbloc/logutil-go/pkg/log"
	"github.com/xeipuuv/gojsonschema"

	"github.com/trustbloc/vctrust/internal/logfields"
)

var logger = log.New("jsonschema")

// ErrSchemaNotFound is returned when validating against a schema ID that was never registered.
var ErrSchemaNotFound = errors.New("JSON schema not registered")

// Document holds the JSON schema document.
type Document map[string]interface{}

// Validator is a JSON schema validator.
type Validator interface {
	ValidateJSONSchema(data interface{}) error
}

type validatorFactory func(schema Document) (Validator, error)

// Registry compiles each JSON schema once, keyed by its '$id', and validates documents against it.
type Registry struct {
	cache           map[string]Validator
	createValidator validatorFactory
	mutex           sync.RWMutex
}

// NewRegistry returns an empty schema registry.
func NewRegistry() *Registry {
	return &Registry{
		cache:           make(map[string]Validator),
		createValidator: newValidator,
	}
}

// Register compiles the schema and returns its '$id'. Registering the same ID again
// keeps the first compiled schema.
func (r *Registry) Register(schema []byte) (string, error) {
	var schemaDoc Document

	if err := json.Unmarshal(schema, &schemaDoc); err != nil {
		return "", fmt.Errorf("unmarshal JSON schema: %w", err)
	}

	schemaIDObj, ok := schemaDoc["$id"]
	if !ok {
		return "", fmt.Errorf("field '$id' not found in JSON schema")
	}

	schemaID, ok := schemaIDObj.(string)
	if !ok {
		return "", fmt.Errorf("expecting the value of field '$id' in JSON schema to be a string type but was %s",
			reflect.TypeOf(schemaIDObj))
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.cache[schemaID]; exists {
		return schemaID, nil
	}

	v, err := r.createValidator(schemaDoc)
	if err != nil {
		return "", fmt.Errorf("create validator [%s]: %w", schemaID, err)
	}

	r.cache[schemaID] = v

	logger.Debug("Registered JSON schema", logfields.WithJSONSchemaID(schemaID))

	return schemaID, nil
}

// MustRegister is Register for schemas embedded at build time.
func (r *Registry) MustRegister(schema []byte) string {
	id, err := r.Register(schema)
	if err != nil {
		panic(err)
	}

	return id
}

// Validate validates the given JSON document against a registered schema.
func (r *Registry) Validate(data interface{}, schemaID string) error {
	r.mutex.RLock()
	v, ok := r.cache[schemaID]
	r.mutex.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSchemaNotFound, schemaID)
	}

	return v.ValidateJSONSchema(data)
}

func newValidator(schema Document) (Validator, error) {
	schemaValidator, err := gojsonschema.NewSchemaLoader().Compile(gojsonschema.NewGoLoader(schema))
	if err != nil {
		return nil, fmt.Errorf("compile JSON schema: %w", err)
	}

	return &validator{schema: schemaValidator}, nil
}

type validator struct {
	schema *gojsonschema.Schema
}

func (v *validator) ValidateJSONSchema(data interface{}) error {
	result, err := v.schema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return fmt.Errorf("loader error: %w", err)
	}

	if !result.Valid() {
		verr := &ValidationError{}

		for _, re := range result.Errors() {
			verr.Details = append(verr.Details, re.String())
		}

		return verr
	}

	return nil
}

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: [%s]", strings.Join(e.Details, "; "))
}
