package features

// Option pairs a selectable label with the integer code the model was
// trained on. Codes are dense and start at 1.
type Option struct {
	Label string
	Code  int
}

// IncomeOptions lists the household income brackets in display order.
var IncomeOptions = []Option{
	{Label: "Less than $10k", Code: 1},
	{Label: "$10k to $20k", Code: 2},
	{Label: "$20k to $30k", Code: 3},
	{Label: "$30k to $40k", Code: 4},
	{Label: "$40k to $50k", Code: 5},
	{Label: "$50k to $75k", Code: 6},
	{Label: "$75k to $100k", Code: 7},
	{Label: "$100k to $150k", Code: 8},
	{Label: "$150k+", Code: 9},
}

// EducationOptions lists the education levels in display order.
var EducationOptions = []Option{
	{Label: "Less than high school", Code: 1},
	{Label: "HS incomplete", Code: 2},
	{Label: "HS diploma / GED", Code: 3},
	{Label: "Some college", Code: 4},
	{Label: "Associate degree", Code: 5},
	{Label: "Bachelor's degree", Code: 6},
	{Label: "Some graduate school", Code: 7},
	{Label: "Graduate/Professional degree", Code: 8},
}

// Binary choices in display order.
var (
	ParentOptions  = []Option{{Label: "Yes", Code: 1}, {Label: "No", Code: 0}}
	MaritalOptions = []Option{{Label: "Not Married", Code: 0}, {Label: "Married", Code: 1}}
	GenderOptions  = []Option{{Label: "Male", Code: 0}, {Label: "Female", Code: 1}}
)

// Labels returns the option labels in display order.
func Labels(opts []Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

// codeFor returns the code for label, or false if label is not an option.
func codeFor(opts []Option, label string) (int, bool) {
	for _, o := range opts {
		if o.Label == label {
			return o.Code, true
		}
	}
	return 0, false
}

// labelFor returns the label for code, or false if no option has that code.
func labelFor(opts []Option, code int) (string, bool) {
	for _, o := range opts {
		if o.Code == code {
			return o.Label, true
		}
	}
	return "", false
}

// IncomeCode looks up the code for an income bracket label.
func IncomeCode(label string) (int, bool) { return codeFor(IncomeOptions, label) }

// EducationCode looks up the code for an education label.
func EducationCode(label string) (int, bool) { return codeFor(EducationOptions, label) }

// IncomeLabel returns the bracket label for an income code.
func IncomeLabel(code int) (string, bool) { return labelFor(IncomeOptions, code) }

// EducationLabel returns the label for an education code.
func EducationLabel(code int) (string, bool) { return labelFor(EducationOptions, code) }
