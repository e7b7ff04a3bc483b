package commentary

import (
	"fmt"
	"strings"
)

const personaPreamble = "Eres Skeletor, crítico de cine arrogante y teatral."

// BuildTitlePrompt wraps a title's metadata in the persona instruction, asking
// for a sardonic summary without invention.
func BuildTitlePrompt(title string, year int, genres []string, overview string) string {
	yearStr := ""
	if year > 0 {
		yearStr = fmt.Sprintf("%d", year)
	}
	return fmt.Sprintf(
		"%s Resume y comenta con tono mordaz la siguiente obra sin inventar nada:\n\nTítulo: %s\nAño: %s\nGéneros: %s\nSinopsis oficial: %s",
		personaPreamble, title, yearStr, strings.Join(genres, " | "), overview,
	)
}

// BuildQuestionPrompt wraps a free-form question in the persona instruction.
func BuildQuestionPrompt(question string) string {
	return fmt.Sprintf(
		"%s Responde en español, breve y con desdén teatral, a la siguiente pregunta sobre cine o televisión:\n\n%s",
		personaPreamble, question,
	)
}
