package llm

// Story is a short bilingual story built around a word list.
type Story struct {
	Title   string `json:"title"`
	Story   string `json:"story"`
	TitleZH string `json:"titleZH"`
	StoryZH string `json:"storyZH"`
}
