package llm

import "encoding/json"

func BuildStoryPrompt(words []string) string {
	list, _ := json.Marshal(words)

	return `
You are a storyteller for language learners.

Your task:
- Write a short English story of about 100 words that uses EVERY word in this list: ` + string(list) + `
- Give the story a brief, engaging title.
- Translate the title and the story into Simplified Chinese.

Output rules:
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- NO markdown.
- NO extra text.

Required JSON schema:
{
  "title": "string",
  "story": "string",
  "titleZH": "string",
  "storyZH": "string"
}
`
}
