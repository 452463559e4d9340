package agent

import (
	"context"
	"fmt"

	"github.com/etnz/realty/docs"
	"github.com/etnz/realty/renderer"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Sections lists the KPI sections an analyst can look at.
var Sections = []string{"occupancy", "aging", "expiry", "bridge"}

// NewAnalyst creates an expert that comments the KPI pack r.
func NewAnalyst(model string, r *renderer.Report) *Expert {
	if model == "" {
		model = DefaultModel
	}
	lib := []Function{sectionFunc(r), topicFunc}

	return &Expert{
		Name: "Analyst",
		Description: `The Analyst is a real-estate asset manager. It reads the KPI pack of a portfolio
		and explains occupancy, arrears, lease expiries and the NOI bridge to property owners.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a real-estate asset manager writing the monthly commentary of a property portfolio.
			You are given a KPI pack: occupancy per property, arrears aging, lease expiries and
			the NOI bridge between two periods.

			Only state figures that are in the KPI pack. Use the Section tool to look at one
			section again and the Topic tool to read how a KPI is computed.

			Be concise: point out vacancies, arrears older than 90 days, the lease expiry
			concentration and the accounts that move NOI the most. Answer in markdown.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Brief is the first message sent to the analyst.
func Brief(r *renderer.Report, request string) string {
	if request == "" {
		request = "Write the commentary of this KPI pack."
	}
	return fmt.Sprintf("%s\n\n%s", request, renderer.RenderReport(r))
}

// Section renders a single section of the report.
func Section(r *renderer.Report, name string) (string, error) {
	v := *r
	v.HasOccupancy, v.HasAging, v.HasExpiry, v.HasBridge = false, false, false, false
	var present bool
	switch name {
	case "occupancy":
		present, v.HasOccupancy = r.HasOccupancy, true
	case "aging":
		present, v.HasAging = r.HasAging, true
	case "expiry":
		present, v.HasExpiry = r.HasExpiry, true
	case "bridge":
		present, v.HasBridge = r.HasBridge, true
	default:
		return "", fmt.Errorf("unknown section %q, want one of %v", name, Sections)
	}
	if !present {
		return "", fmt.Errorf("section %q is not part of this report", name)
	}
	return renderer.RenderReport(&v), nil
}

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", fmt.Errorf("missing argument %q", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
	}
	return s, nil
}

func sectionFunc(r *renderer.Report) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Section",
			Description: "Section returns one section of the KPI pack as a markdown table.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"section": {
						Type:        genai.TypeString,
						Description: "The KPI section to read.",
						Enum:        Sections,
					},
				},
				Required: []string{"section"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted section of the KPI pack.",
			},
		},
		Func: func(_ context.Context, args map[string]any) (string, error) {
			name, err := stringArg(args, "section")
			if err != nil {
				return "", err
			}
			return Section(r, name)
		},
	}
}

var topicFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "Topic",
		Description: "Topic returns the user documentation of a KPI: occupancy, aging, expiry, bridge or sources.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"topic": {
					Type:        genai.TypeString,
					Description: "The documentation topic.",
				},
			},
			Required: []string{"topic"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The markdown documentation of the topic.",
		},
	},
	Func: func(_ context.Context, args map[string]any) (string, error) {
		topic, err := stringArg(args, "topic")
		if err != nil {
			return "", err
		}
		return docs.GetTopic(topic)
	},
}
