package menu

import (
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const datasetSchemaURL = "schema://menu-dataset.json"

// datasetSchema describes {category: {item: [ingredient]}} where a category
// value may also hold {subcategory: {item: [ingredient]}}.
const datasetSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "minProperties": 1,
  "additionalProperties": {
    "type": "object",
    "minProperties": 1,
    "additionalProperties": {
      "oneOf": [
        {"$ref": "#/$defs/ingredients"},
        {
          "type": "object",
          "minProperties": 1,
          "additionalProperties": {"$ref": "#/$defs/ingredients"}
        }
      ]
    }
  },
  "$defs": {
    "ingredients": {
      "type": "array",
      "minItems": 1,
      "items": {"type": "string", "minLength": 1, "pattern": "\\S"}
    }
  }
}`

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(datasetSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse dataset schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(datasetSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add dataset schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(datasetSchemaURL)
	})
	return compiledSchema, compileErr
}
