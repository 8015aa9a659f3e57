// Package openapiform derives initial form field sets from OpenAPI 3
// documents. Given an operation id it reads the request body schema and
// produces a map of field name → default (or type-appropriate zero) value,
// ready to hand to form.New.
package openapiform

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Fields builds the initial field set for the operation identified by
// operationID in doc. Schema defaults win; properties without one get the
// zero value for their type. The operation must declare a structured
// request body.
func Fields(ctx context.Context, doc []byte, operationID string) (map[string]any, error) {
	if len(doc) == 0 {
		return nil, errors.New("openapiform: document payload is empty")
	}
	operationID = strings.TrimSpace(operationID)
	if operationID == "" {
		return nil, errors.New("openapiform: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc)
	if err != nil {
		return nil, fmt.Errorf("openapiform: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("openapiform: operation %q not found", operationID)
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, fmt.Errorf("openapiform: operation %q has no structured request body", operationID)
	}

	fields := make(map[string]any, len(schema.Properties))
	for name, property := range schema.Properties {
		fields[name] = fieldValue(property)
	}
	return fields, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(requestBody *openapi3.RequestBodyRef) *openapi3.Schema {
	if requestBody == nil || requestBody.Value == nil {
		return nil
	}
	content := requestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// fieldValue resolves the initial value for one property: declared default
// first, then the zero value for the schema type.
func fieldValue(ref *openapi3.SchemaRef) any {
	if ref == nil || ref.Value == nil {
		return nil
	}
	schema := ref.Value
	if schema.Default != nil {
		return schema.Default
	}

	switch firstType(schema.Type) {
	case "string":
		return ""
	case "integer":
		return 0
	case "number":
		return 0.0
	case "boolean":
		return false
	case "array":
		return []any{}
	case "object":
		if len(schema.Properties) == 0 {
			return map[string]any{}
		}
		nested := make(map[string]any, len(schema.Properties))
		for name, property := range schema.Properties {
			nested[name] = fieldValue(property)
		}
		return nested
	default:
		return nil
	}
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
