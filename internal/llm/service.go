package llm

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const maxWords = 10

var ErrInvalidWords = errors.New("words must be a list of 1 to 10 non-empty strings")

type StoryService struct {
	client ChatClient
	log    *zap.Logger
}

func NewStoryService(client ChatClient, log *zap.Logger) *StoryService {
	return &StoryService{client: client, log: log}
}

func (s *StoryService) Generate(ctx context.Context, words []string) (*Story, error) {
	if len(words) == 0 || len(words) > maxWords {
		return nil, ErrInvalidWords
	}
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			return nil, ErrInvalidWords
		}
	}

	reply, err := s.client.Complete(ctx, BuildStoryPrompt(words))
	if err != nil {
		return nil, errors.Wrap(err, "generate story")
	}

	story, err := ParseStory(reply)
	if err != nil {
		s.log.Debug("unparseable story reply", zap.String("reply", reply))
		return nil, err
	}
	return story, nil
}
