package model

// SnippetInput is an interactive parameter a shell rendering prompts for.
type SnippetInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Snippet is the record persisted in the resource store.
type Snippet struct {
	ID          string         `json:"id"`
	Platform    Platform       `json:"platform"`
	Owner       string         `json:"owner"`
	Name        string         `json:"name"`
	Script      string         `json:"script"`
	Inputs      []SnippetInput `json:"inputs"`
	Description string         `json:"description"`
}

func (s *Snippet) Projection() SnippetProjection {
	return SnippetProjection{
		Platform: s.Platform,
		Owner:    s.Owner,
		Name:     s.Name,
	}
}

// Redacted returns a copy of the snippet without its script body.
func (s *Snippet) Redacted() *Snippet {
	c := *s
	c.Script = ""
	return &c
}

// SnippetProjection is the public listing shape of a snippet.
type SnippetProjection struct {
	Platform Platform `json:"platform"`
	Owner    string   `json:"owner"`
	Name     string   `json:"name"`
}

// WriteSnippetRequest is the body accepted when writing a snippet. Fields not
// listed here are dropped while decoding.
type WriteSnippetRequest struct {
	Script      string         `json:"script"`
	Inputs      []SnippetInput `json:"inputs" validate:"omitempty,unique=Name,dive"`
	Description string         `json:"description"`
}
