package commit

import (
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// Schema describes Commit as a JSON schema for the remote function
// declaration. Every field is required and no extra properties are allowed.
func Schema() (*jsonschema.Definition, error) {
	schema, err := jsonschema.GenerateSchemaForType(Commit{})
	if err != nil {
		return nil, fmt.Errorf("failed to generate commit schema: %w", err)
	}
	return schema, nil
}
