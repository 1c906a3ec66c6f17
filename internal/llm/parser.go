package llm

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidReply = errors.New("invalid llm JSON output")

// ParseStory decodes the story object from a model reply. Any prose or
// markdown fence around the outermost {...} is ignored.
func ParseStory(reply string) (*Story, error) {
	jsonText := extractJSON(reply)
	if jsonText == "" {
		return nil, errors.Wrap(ErrInvalidReply, "no json object in reply")
	}

	var s Story
	if err := json.Unmarshal([]byte(jsonText), &s); err != nil {
		return nil, errors.Wrap(ErrInvalidReply, err.Error())
	}
	if s.Title == "" || s.Story == "" {
		return nil, errors.Wrap(ErrInvalidReply, "story without title or body")
	}
	return &s, nil
}

func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
