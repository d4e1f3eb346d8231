package intent

import (
	"strings"

	"github.com/blogem/dues-ledger/models"
)

// BuildPrompt renders the classification prompt for one user input.
func BuildPrompt(input string) string {
	var b strings.Builder
	b.WriteString("You are a fraternity assistant bot for dues, payments, contact info, and reporting.\n")
	b.WriteString("Supported actions:\n")
	for _, action := range models.SupportedActions {
		b.WriteString("- ")
		b.WriteString(string(action))
		b.WriteString("\n")
	}
	b.WriteString("\nUse the keys action, name, amount, field and value as needed.\n")
	b.WriteString("Respond only in JSON like:\n")
	b.WriteString(`{ "action": "check_paid", "name": "Chris" }`)
	b.WriteString("\n\nInput: ")
	b.WriteString(input)
	b.WriteString("\n")
	return b.String()
}
