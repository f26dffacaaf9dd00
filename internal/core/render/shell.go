package render

import (
	"strings"

	"exusiai.dev/snippets/internal/model"
)

const (
	ShellContentType = "text/x-shellscript; charset=utf-8"
	shebang          = "#!/bin/bash"
)

// Shell renders a bash script that reads every input into a variable of the
// same name before running the stored body. Names and descriptions are
// written out as-is.
type Shell struct{}

func (Shell) Render(snippet *model.Snippet) (*Artifact, error) {
	var b strings.Builder
	b.WriteString(shebang)
	b.WriteByte('\n')

	for _, input := range snippet.Inputs {
		prompt := input.Description
		if prompt == "" {
			prompt = input.Name
		}
		b.WriteString("echo ")
		b.WriteString(prompt)
		b.WriteString("?\nread ")
		b.WriteString(input.Name)
		b.WriteByte('\n')
	}

	b.WriteString(snippet.Script)

	return &Artifact{
		ContentType: ShellContentType,
		Body:        []byte(b.String()),
	}, nil
}
