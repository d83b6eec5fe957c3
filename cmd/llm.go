package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lipredict/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withEventRepo(cmd, func(ctx context.Context, repo store.EventRepo) error {
			events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{Limit: limit, Purpose: purpose})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			writeLLMEvents(cmd.OutOrStdout(), events)
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withEventRepo(cmd, func(ctx context.Context, repo store.EventRepo) error {
			e, err := repo.GetLLMEvent(ctx, id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}
			writeLLMEvent(cmd.OutOrStdout(), e)
			return nil
		})
	},
}

// withEventRepo opens the configured store for the duration of fn.
func withEventRepo(cmd *cobra.Command, fn func(context.Context, store.EventRepo) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(cmd.Context(), s.EventRepo())
}

const timeLayout = "2006-01-02 15:04:05"

func writeLLMEvents(w io.Writer, events []store.LLMRequestEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No LLM events found.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-19s  %-10s  %-28s  %6s  %6s  %7s  %s\n",
		"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
	fmt.Fprintln(w, strings.Repeat("─", 96))
	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗"
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-10s  %-28s  %6d  %6d  %7d  %s\n",
			e.ID, e.Timestamp.Local().Format(timeLayout), truncate(e.Purpose, 10), truncate(e.Model, 28),
			e.InputTokens, e.OutputTokens, e.LatencyMs, ok)
	}
}

func writeLLMEvent(w io.Writer, e *store.LLMRequestEvent) {
	fields := [][2]string{
		{"ID", strconv.Itoa(e.ID)},
		{"Time", e.Timestamp.Local().Format(timeLayout)},
		{"Provider", e.Provider},
		{"Model", e.Model},
		{"Purpose", e.Purpose},
		{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
		{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		{"Success", strconv.FormatBool(e.Success)},
	}
	if e.ErrorMessage != "" {
		fields = append(fields, [2]string{"Error", e.ErrorMessage})
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%-10s %s\n", f[0]+":", f[1])
	}

	section := func(title, body string) {
		sep := strings.Repeat("─", 60)
		fmt.Fprintf(w, "\n%s\n%s\n%s\n", sep, title, sep)
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintln(w, body)
	}
	section("REQUEST", strings.TrimRight(e.RequestBody, "\n"))
	section("RESPONSE", prettyJSON(e.ResponseBody))
}

// prettyJSON indents body when it is JSON and returns it unchanged otherwise.
func prettyJSON(body string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(body), "", "  "); err != nil {
		return body
	}
	return buf.String()
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEventRepo(cmd, func(ctx context.Context, repo store.EventRepo) error {
			events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			writeUsage(cmd.OutOrStdout(), usageByPurpose(events))
			return nil
		})
	},
}

func writeUsage(w io.Writer, stats []purposeUsage) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No LLM usage recorded yet.")
		return
	}

	rule := strings.Repeat("─", 80)
	fmt.Fprintln(w, "Usage by Purpose")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-16s  %6s  %6s  %10s  %10s  %10s  %8s\n",
		"Purpose", "Calls", "Failed", "Input", "Output", "Total", "Avg Ms")
	fmt.Fprintln(w, rule)

	var total purposeUsage
	for _, st := range stats {
		fmt.Fprintf(w, "%-16s  %6d  %6d  %10d  %10d  %10d  %8d\n",
			st.Purpose, st.Calls, st.Failed, st.InputTokens, st.OutputTokens,
			st.InputTokens+st.OutputTokens, st.AvgLatencyMs())
		total.Calls += st.Calls
		total.Failed += st.Failed
		total.InputTokens += st.InputTokens
		total.OutputTokens += st.OutputTokens
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-16s  %6d  %6d  %10d  %10d  %10d\n",
		"TOTAL", total.Calls, total.Failed, total.InputTokens, total.OutputTokens,
		total.InputTokens+total.OutputTokens)
}

type purposeUsage struct {
	Purpose      string
	Calls        int
	Failed       int
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
}

func (u purposeUsage) AvgLatencyMs() int64 {
	if u.Calls == 0 {
		return 0
	}
	return u.LatencyMs / int64(u.Calls)
}

// usageByPurpose folds events into one row per purpose, sorted by purpose.
func usageByPurpose(events []store.LLMRequestEvent) []purposeUsage {
	byPurpose := make(map[string]*purposeUsage)
	for _, e := range events {
		u, ok := byPurpose[e.Purpose]
		if !ok {
			u = &purposeUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
		}
		u.Calls++
		if !e.Success {
			u.Failed++
		}
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		u.LatencyMs += e.LatencyMs
	}

	out := make([]purposeUsage, 0, len(byPurpose))
	for _, u := range byPurpose {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. insight)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
