package render

import (
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"exusiai.dev/snippets/internal/model"
)

type nodePayload struct {
	Inputs      []model.SnippetInput `json:"inputs"`
	Script      string               `json:"script"`
	Description string               `json:"description"`
}

// Node renders the snippet as a JSON payload for the generic runtime.
type Node struct{}

func (Node) Render(snippet *model.Snippet) (*Artifact, error) {
	inputs := snippet.Inputs
	if inputs == nil {
		inputs = []model.SnippetInput{}
	}

	body, err := json.Marshal(nodePayload{
		Inputs:      inputs,
		Script:      snippet.Script,
		Description: snippet.Description,
	})
	if err != nil {
		return nil, err
	}

	return &Artifact{
		ContentType: fiber.MIMEApplicationJSONCharsetUTF8,
		Body:        body,
	}, nil
}
