package agent

import (
	"context"
	"fmt"

	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
	"github.com/laurenceescalante81/Good-Money-AI-sub001/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his personal finances: spending against budgets,
			savings goals, mortgage and retirement outlook, insurance cost.

			Devise a plan of questions to ask to each experts and come up with the best response to the
			user's request.

			The user will assume that you already looked at his ledger; check it first before asking him
			for figures he has already recorded.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewCoach returns a budgeting coach grounded in Google Search.
func NewCoach() *Expert {
	return &Expert{
		Name: "Coach",
		Description: `This is a personal-finance coach,
		well aware of budgeting methods, savings strategies, mortgage and
		retirement products, and the latest rates and news.
		Ask the Coach whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in personal finance. You can search and find about anything
			related to budgeting, savings, interest rates, superannuation and insurance.
			You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAccountant returns the expert in charge of reading the user's ledger.
func NewAccountant(s *goodmoney.Store, currency string) *Expert {
	lib := ledgerFunctions(s, currency)

	return &Expert{
		Name: "Accountant",
		Description: `This is the Accountant. He is in charge of reading the user's ledger.
		He can report the monthly summary, the savings goals, the insurance cost and the
		mortgage and retirement projections.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an accountant in charge of the user's personal ledger.
				You know how to use the Tools to extract relevant information about the user's money.
				You are part of a team of experts, yours is everything recorded in the ledger. They might
				ask you questions about it, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's ledger
				  - monthly summary of income, expenses and budgets
				  - savings goals
				  - mortgage and retirement projections
				  - insurance cost
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func ledgerFunctions(s *goodmoney.Store, currency string) []Function {
	summary := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "MonthlySummary",
			Description: `MonthlySummary reports one month of the ledger: total income, total
			expenses, the net, every budget with its spent figure, and the month's transactions.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"month": {
						Type:        genai.TypeString,
						Description: "The month to summarize, in YYYY-MM format. The current month is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted monthly summary.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			month, err := parseMonth(s, args)
			if err != nil {
				return errorResponse(id, "MonthlySummary", err)
			}
			sum := goodmoney.NewMonthlySummary(s, month)
			return outputResponse(id, "MonthlySummary", renderer.RenderSummary(renderer.NewSummary(sum, currency)))
		},
	}

	goals := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Goals",
			Description: `Goals lists every savings goal with its target, current balance and progress.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of savings goals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, "Goals", renderer.RenderGoals(renderer.NewGoals(s.Goals(), currency)))
		},
	}

	mortgage := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "MortgageProjection",
			Description: `MortgageProjection reports the recorded mortgage and its projection:
			monthly repayment, total payment, total interest, and years remaining.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted mortgage projection, or a note that no mortgage is on record.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			m, ok := s.Mortgage()
			if !ok {
				return outputResponse(id, "MortgageProjection", renderer.RenderMortgage(nil))
			}
			p := s.MortgageProjection()
			return outputResponse(id, "MortgageProjection", renderer.RenderMortgage(renderer.NewMortgage(&m, p, currency)))
		},
	}

	retirement := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "RetirementProjection",
			Description: `RetirementProjection reports the recorded superannuation details and the
			projected balance at retirement and monthly income in retirement.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted retirement projection.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			d, ok := s.Super()
			if !ok {
				return errorResponse(id, "RetirementProjection", fmt.Errorf("no superannuation details on record"))
			}
			p := s.RetirementProjection()
			return outputResponse(id, "RetirementProjection", renderer.RenderRetirement(renderer.NewRetirement(&d, p, currency)))
		},
	}

	insurance := &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Insurance",
			Description: `Insurance lists every policy and the total annualized premium cost.`,
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of insurance policies.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, "Insurance", renderer.RenderInsurance(renderer.NewInsurance(goodmoney.NewInsuranceSummary(s), currency)))
		},
	}

	return []Function{summary, goals, mortgage, retirement, insurance}
}

func parseMonth(s *goodmoney.Store, args map[string]any) (goodmoney.Month, error) {
	imonth, hasMonth := args["month"]
	if !hasMonth {
		return s.CurrentMonth(), nil
	}
	smonth, ok := imonth.(string)
	if !ok {
		return s.CurrentMonth(), fmt.Errorf("argument 'month' is not a string as expected but %T", imonth)
	}

	month, err := goodmoney.ParseMonth(smonth)
	if err != nil {
		return s.CurrentMonth(), fmt.Errorf("argument 'month' must be a valid YYYY-MM month, got %q", smonth)
	}
	return month, nil
}
