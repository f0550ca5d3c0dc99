package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/model"
	"github.com/cheizdavi-dotcom/Entregavel-Planilha-sub000/internal/vocabulary"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// GeminiClassifier implements Classifier with the Gemini API. It expects the
// model to return a STRICT JSON array mirroring the request.
type GeminiClassifier struct {
	vocab     *vocabulary.Vocabulary
	modelName string
}

// NewGeminiClassifier creates a classifier bound to a vocabulary and model.
func NewGeminiClassifier(vocab *vocabulary.Vocabulary, modelName string) *GeminiClassifier {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiClassifier{vocab: vocab, modelName: modelName}
}

// Classify sends the batch to Gemini and decodes the response. A single
// attempt: transport errors, empty output and malformed JSON all surface as
// errors wrapping ErrContract where the shape is at fault.
func (g *GeminiClassifier) Classify(ctx context.Context, req Request) (Response, error) {
	prompt, err := buildPrompt(g.vocab, req)
	if err != nil {
		return Response{}, fmt.Errorf("Classify: building prompt: %w", err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return Response{}, fmt.Errorf("Classify: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.modelName, contents, nil)
	if err != nil {
		return Response{}, fmt.Errorf("Classify: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return Response{}, fmt.Errorf("Classify: empty response from model: %w", ErrContract)
	}

	return decodeResults(rawText, len(req.Transactions))
}

// buildPrompt renders the instructions, the vocabulary split by direction and
// the request batch as strict-JSON guidance for the model.
func buildPrompt(vocab *vocabulary.Vocabulary, req Request) (string, error) {
	batch, err := json.Marshal(req.Transactions)
	if err != nil {
		return "", fmt.Errorf("marshal batch: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are a personal-finance transaction categorizer.\n\n")
	b.WriteString("Task:\n")
	b.WriteString("- Assign a category to EVERY transaction in the input array below.\n")
	b.WriteString("- Output STRICT JSON only (no comments, no trailing commas, no extra text).\n")
	b.WriteString("- Output a JSON array with EXACTLY one object per input, in the SAME order.\n\n")
	b.WriteString("Each output object must have these fields:\n")
	b.WriteString("- \"description\": string, copied from the input\n")
	b.WriteString("- \"amount\": number, copied from the input\n")
	b.WriteString("- \"type\": string, copied from the input (\"income\" or \"expense\")\n")
	b.WriteString("- \"category\": string, one of the predefined categories below\n\n")

	b.WriteString("Use ONLY the following categories:\n\n")
	b.WriteString("For \"expense\" transactions:\n")
	for _, name := range vocab.Names(model.Expense) {
		b.WriteString("  - " + name + "\n")
	}
	b.WriteString("\nFor \"income\" transactions:\n")
	for _, name := range vocab.Names(model.Income) {
		b.WriteString("  - " + name + "\n")
	}

	b.WriteString("\nCATEGORY ASSIGNMENT RULES:\n")
	b.WriteString("1. Category must be EXACTLY one of the names above (case-sensitive).\n")
	b.WriteString("2. Never use an income category for an expense or vice versa.\n")
	b.WriteString(fmt.Sprintf("3. If unsure about an expense, use %q.\n", vocab.Default(model.Expense)))
	b.WriteString(fmt.Sprintf("4. If unsure about an income, use %q.\n", vocab.Default(model.Income)))
	b.WriteString("\nReturn ONLY valid raw JSON.\n")
	b.WriteString("Do NOT wrap the response in code fences.\n")
	b.WriteString("Output must begin with \"[\" and end with \"]\".\n\n")

	b.WriteString("Input transactions:\n")
	b.Write(batch)
	b.WriteString("\n")

	return b.String(), nil
}

// decodeResults parses the model output into a Response and enforces the
// length half of the contract. Category validity is the caller's concern,
// shared with fake classifiers in tests.
func decodeResults(rawText string, want int) (Response, error) {
	clean := cleanModelJSON(rawText)

	var results []Result
	if err := json.Unmarshal([]byte(clean), &results); err != nil {
		return Response{}, fmt.Errorf("decodeResults: unmarshal JSON: %v: %w", err, ErrContract)
	}
	if len(results) != want {
		return Response{}, fmt.Errorf("decodeResults: got %d results, want %d: %w", len(results), want, ErrContract)
	}
	return Response{CategorizedTransactions: results}, nil
}

// cleanModelJSON strips Markdown fences and surrounding junk when the model
// ignores the raw-JSON instruction.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	// Keep only the outermost JSON array if there is still junk around it.
	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
