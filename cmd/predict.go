package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/lipredict/internal/contrib"
	"github.com/abhisek/lipredict/internal/features"
	"github.com/abhisek/lipredict/internal/insight"
	"github.com/abhisek/lipredict/internal/predict"
	"github.com/abhisek/lipredict/internal/store"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Classify one set of inputs without the TUI",
	Long: `Classify one set of inputs and print the class, probability and the
per-feature strengths. Labels must match the form exactly, e.g.

  lipredict predict --income '$75k to $100k' --education "Bachelor's degree" \
      --parent No --married Married --gender Female --age 35`,
	RunE: runPredict,
}

func init() {
	def := features.DefaultSelections()
	f := predictCmd.Flags()
	f.String("income", def.Income, "Income bracket: "+strings.Join(features.Labels(features.IncomeOptions), " | "))
	f.String("education", def.Education, "Education level: "+strings.Join(features.Labels(features.EducationOptions), " | "))
	f.String("parent", def.Parent, "Parent of a child under 18 at home: Yes | No")
	f.String("married", def.Married, "Marital status: Not Married | Married")
	f.String("gender", def.Gender, "Gender: Male | Female")
	f.Int("age", def.Age, fmt.Sprintf("Age (%d-%d)", features.MinAge, features.MaxAge))
	f.Bool("json", false, "Print the result as JSON")
	f.Bool("explain", false, "Add a narrative explanation (uses the configured LLM provider, if any)")
	f.Bool("no-record", false, "Do not record the prediction in the history database")
}

type predictionJSON struct {
	Selections    features.Selections    `json:"selections"`
	Vector        features.Vector        `json:"vector"`
	Class         int                    `json:"class"`
	Label         string                 `json:"label"`
	Probability   float64                `json:"probability"`
	Contributions []contrib.Contribution `json:"contributions"`
	Narrative     *narrativeJSON         `json:"narrative,omitempty"`
}

type narrativeJSON struct {
	Headline string   `json:"headline"`
	Summary  string   `json:"summary"`
	Factors  []string `json:"factors"`
	Source   string   `json:"source"`
}

func selectionsFromFlags(cmd *cobra.Command) features.Selections {
	f := cmd.Flags()
	var sel features.Selections
	sel.Income, _ = f.GetString("income")
	sel.Education, _ = f.GetString("education")
	sel.Parent, _ = f.GetString("parent")
	sel.Married, _ = f.GetString("married")
	sel.Gender, _ = f.GetString("gender")
	sel.Age, _ = f.GetInt("age")
	return sel
}

func runPredict(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	model, err := loadModel(cfg, logger)
	if err != nil {
		return err
	}

	noRecord, _ := cmd.Flags().GetBool("no-record")
	explain, _ := cmd.Flags().GetBool("explain")

	// The store also backs LLM event logging for --explain.
	var predictions, llmEvents store.EventRepo
	if !noRecord || explain {
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		llmEvents = st.EventRepo()
		if !noRecord {
			predictions = st.EventRepo()
		}
	}

	svc := predict.NewService(model, predictions, logger, uuid.NewString())
	out, err := svc.Predict(ctx, selectionsFromFlags(cmd))
	if err != nil {
		return err
	}

	var narrative *insight.Narrative
	if explain {
		narrative = explainOutcome(cmd, out, newInsightService(cmd, cfg, llmEvents, logger), logger)
	}
	return printPrediction(cmd, out, narrative)
}

func explainOutcome(cmd *cobra.Command, out *predict.Outcome, svc *insight.Service, logger *zap.Logger) *insight.Narrative {
	req := insight.Request{
		Selections:    out.Selections,
		Result:        out.Result,
		Contributions: out.Contributions,
	}
	n, err := svc.Explain(cmd.Context(), req)
	if err != nil {
		logger.Warn("insight request failed", zap.Error(err))
		return insight.Fallback(req)
	}
	return n
}

func printPrediction(cmd *cobra.Command, out *predict.Outcome, n *insight.Narrative) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	w := cmd.OutOrStdout()
	if asJSON {
		return writePredictionJSON(w, out, n)
	}
	writePredictionText(w, out, n)
	return nil
}

func writePredictionJSON(w io.Writer, out *predict.Outcome, n *insight.Narrative) error {
	doc := predictionJSON{
		Selections:    out.Selections,
		Vector:        out.Vector,
		Class:         out.Result.Class,
		Label:         out.Result.Label(),
		Probability:   out.Result.Probability,
		Contributions: out.Contributions,
	}
	if doc.Contributions == nil {
		doc.Contributions = []contrib.Contribution{}
	}
	if n != nil {
		doc.Narrative = &narrativeJSON{
			Headline: n.Headline,
			Summary:  n.Summary,
			Factors:  n.Factors,
			Source:   string(n.Source),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writePredictionText(w io.Writer, out *predict.Outcome, n *insight.Narrative) {
	fmt.Fprintf(w, "Predicted Class:                %s\n", out.Result.Label())
	fmt.Fprintf(w, "Probability of Using LinkedIn:  %s\n", out.Result.ProbabilityText())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top Factors Affecting Your Prediction")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	if len(out.Contributions) == 0 {
		fmt.Fprintln(w, "(no input contributes more than 0.01)")
	}
	for _, c := range out.Contributions {
		fmt.Fprintf(w, "%-10s  %8.3f\n", c.Feature, c.Strength)
	}
	if n != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, n.Headline)
		if n.Summary != "" {
			fmt.Fprintln(w, n.Summary)
		}
		for _, f := range n.Factors {
			fmt.Fprintf(w, "  • %s\n", f)
		}
	}
}
