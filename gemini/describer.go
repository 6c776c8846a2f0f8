// Package gemini implements LLM doc generation using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/zjregee/knowlix"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Describer implements knowlix.Describer at compile time.
var _ knowlix.Describer = (*Describer)(nil)

// Describer implements knowlix.Describer using Google Gemini.
type Describer struct {
	client *genai.Client
	model  string
}

// NewDescriber creates a new Describer. An empty model selects DefaultModel.
func NewDescriber(client *genai.Client, model string) *Describer {
	if model == "" {
		model = DefaultModel
	}
	return &Describer{client: client, model: model}
}

// Model returns the model the describer generates with.
func (d *Describer) Model() string {
	return d.model
}

// Describe generates Markdown documentation for an API item.
func (d *Describer) Describe(ctx context.Context, item knowlix.Item) (string, error) {
	if item.Name == "" {
		return "", knowlix.Errorf(knowlix.EINVALID, "item name required")
	}

	result, err := d.client.Models.GenerateContent(ctx, d.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(item)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", knowlix.Errorf(knowlix.EINTERNAL, "gemini returned nil result")
	}

	return strings.TrimSpace(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert Go API documentation writer. " +
					"Generate concise, high-quality Markdown documentation. " +
					"Focus on what the API does, parameters/returns, and usage notes. " +
					"Do not invent behavior that is not implied by the signature or name. " +
					"Keep it readable and structured.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt describing one API item.
func BuildUserPrompt(item knowlix.Item) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Package: %s\n", item.Package)
	fmt.Fprintf(&sb, "Import: %s\n", item.ImportPath)
	fmt.Fprintf(&sb, "Kind: %s\n", item.Kind)
	fmt.Fprintf(&sb, "Name: %s\n", item.Name)
	fmt.Fprintf(&sb, "Signature: %s\n", item.Signature)
	if item.Receiver != "" {
		fmt.Fprintf(&sb, "Receiver: %s\n", item.Receiver)
	}
	if item.Params != "" {
		fmt.Fprintf(&sb, "Params: %s\n", item.Params)
	}
	if item.Returns != "" {
		fmt.Fprintf(&sb, "Returns: %s\n", item.Returns)
	}
	if item.Kind == knowlix.KindType {
		fmt.Fprintf(&sb, "TypeKind: %s\n", item.TypeKind)
		if len(item.Fields) > 0 {
			fmt.Fprintf(&sb, "Fields:\n%s\n", strings.Join(item.Fields, "\n"))
		}
		if len(item.Methods) > 0 {
			fmt.Fprintf(&sb, "Methods:\n%s\n", strings.Join(item.Methods, "\n"))
		}
	}
	if item.Description != "" {
		fmt.Fprintf(&sb, "ExistingDescription: %s\n", item.Description)
	}
	sb.WriteString("\nOutput Markdown with these sections when applicable:\n")
	sb.WriteString("- Summary\n- Parameters\n- Returns\n- Notes")
	return sb.String()
}
