package prompt

import (
	"fmt"
	"strings"
)

type Technique struct {
	Name        string
	Description string
}

// Techniques is the catalogue offered to the model, in template order.
var Techniques = []Technique{
	{"Chain-of-Thought Prompting", "Break complex tasks into step-by-step reasoning"},
	{"Zero-Shot Prompting", "Generate responses without examples"},
	{"Few-Shot Prompting", "Use examples to guide AI behavior"},
	{"ReAct Prompting", "Combine reasoning and action steps"},
	{"Self-Consistency Prompting", "Generate multiple solutions and find consensus"},
	{"Tree-of-Thought Prompting", "Explore multiple reasoning paths"},
	{"Least-to-Most Prompting", "Break tasks into smallest possible steps"},
	{"Instruction Tuning", "Optimize instructions for specific tasks"},
	{"Role-Based Prompting", "Assign specific personas to AI"},
	{"Socratic Prompting", "Use questions to guide reasoning"},
	{"Iterative Refinement Prompting", "Improve prompts through iterations"},
	{"Retrieval-Augmented Prompting", "Include relevant context/knowledge"},
	{"Deliberation Prompting", "Encourage careful consideration"},
	{"Meta Prompting", "Create prompts about prompt creation"},
	{"Prompt Chaining", "Connect multiple prompts in sequence"},
	{"CoT with Verification", "Add verification steps to reasoning"},
	{"Multimodal Prompting", "Handle text, images, and other media"},
	{"Decomposition Prompting", "Break complex problems into parts"},
	{"Reflexion Prompting", "Include self-reflection in prompts"},
	{"Guided Decoding Prompting", "Control output format and structure"},
	{"Expert-Agent Prompting", "Simulate domain expert behavior"},
	{"Tool-Augmented Prompting", "Include tool usage instructions"},
	{"In-Context Learning", "Provide relevant examples and context"},
	{"Prompt Injection Testing", "Test prompt robustness"},
	{"Persona-Based Prompting", "Create character-driven interactions"},
	{"Time-Aware Prompting", "Consider temporal context"},
	{"Scratchpad Prompting", "Allow intermediate calculations"},
	{"Planning-and-Execution Prompting", "Separate planning from execution"},
	{"Dynamic Prompt Engineering", "Adapt prompts based on context"},
	{"Simulated Feedback Prompting", "Include feedback loops"},
}

// CatalogueMarkdown renders the technique catalogue as a markdown ordered list.
func CatalogueMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Prompting techniques\n\n")
	for i, t := range Techniques {
		fmt.Fprintf(&sb, "%d. **%s**: %s\n", i+1, t.Name, t.Description)
	}
	return sb.String()
}
