package file

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "todo.schema.json"

// schemaJSON describes the on-disk task document.
const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": ["array", "null"],
  "items": {
    "type": "object",
    "required": ["description", "completed", "importance"],
    "properties": {
      "description": {"type": "string"},
      "completed": {"type": "boolean"},
      "importance": {"enum": ["HIGH", "MID", "LOW"]}
    }
  }
}`

var documentSchema = jsonschema.MustCompileString(schemaURL, schemaJSON)
