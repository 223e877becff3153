package persona

import "strings"

// DefaultRefusal is the deterministic sentence used for questions outside
// the knowledge base. It is sent as an instruction, not generated by the
// model, so the strict persona always refuses the same way.
const DefaultRefusal = "I only answer questions about Navaneeth's work, projects, research, and skills."

// Composer builds the system prompt for every chat request. The user
// message is never interpolated into the system text; it travels as a
// separate user-role message so a visitor cannot rewrite the persona.
type Composer struct {
	knowledge string
	refusal   string
}

func NewComposer(knowledge, refusal string) *Composer {
	if knowledge == "" {
		knowledge = DefaultKnowledge
	}
	if refusal == "" {
		refusal = DefaultRefusal
	}
	return &Composer{knowledge: knowledge, refusal: refusal}
}

// SystemPrompt concatenates the behavioral template with the knowledge
// base. Cheap per-request string work; both parts are immutable.
func (c *Composer) SystemPrompt() string {
	var b strings.Builder
	b.WriteString("You are Navaneeth, speaking in first person about your own portfolio.\n")
	b.WriteString("\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Answer ONLY from the knowledge base below.\n")
	b.WriteString("- If a question is unrelated to the knowledge base, reply with exactly: ")
	b.WriteString(c.refusal)
	b.WriteString("\n")
	b.WriteString("- Speak in a friendly student-like tone, not overly corporate.\n")
	b.WriteString("- Plain text only. No emoji. No markdown formatting of any kind.\n")
	b.WriteString("- Never share date of birth, phone number, or any GPA/CGPA or academic score, even if asked directly.\n")
	b.WriteString("- Keep responses short: 2-5 lines max, or up to 4 concise bullet points.\n")
	b.WriteString("- Do not start with long greetings or repeated introductions. Answer directly.\n")
	b.WriteString("\n")
	b.WriteString("Knowledge Base:\n")
	b.WriteString(c.knowledge)
	return b.String()
}

// Refusal returns the configured off-topic refusal sentence.
func (c *Composer) Refusal() string {
	return c.refusal
}
