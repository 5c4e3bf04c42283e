package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/internal/domain"
	"github.com/Oracle69digitalmarketing/Harmony-Marketing-Hub/pkg/utils"
	"github.com/spf13/cobra"
)

type options struct {
	server  string
	token   string
	timeout time.Duration
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// newRootCmd monta a árvore de comandos escrevendo as respostas em out.
func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "harmonyctl",
		Short: "Operate marketing plans on a Harmony server",
		Long: `Client for the plan lifecycle API.

Builds plans from raw text or uploaded artifacts, refines and approves them,
and triggers the monitoring loop. Suitable as an external cron trigger:

  harmonyctl monitor <plan-id>`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.server, "server", envOr("HARMONY_URL", "http://localhost:8000"), "API base URL (HARMONY_URL)")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("HARMONY_TOKEN"), "bearer token (HARMONY_TOKEN)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 3*time.Minute, "request timeout")

	root.AddCommand(
		newBuildCmd(opts, out),
		newListCmd(opts, out),
		newGetCmd(opts, out),
		newRefineCmd(opts, out),
		newApproveCmd(opts, out),
		newMonitorCmd(opts, out),
		newMetricsCmd(opts, out),
	)

	return root
}

// call executa a requisição e imprime a resposta formatada.
func call(cmd *cobra.Command, opts *options, out io.Writer, method, path string, payload any) error {
	client := newAPIClient(opts.server, opts.token, opts.timeout)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	raw, err := client.do(ctx, method, path, payload)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, utils.PrettyJson(raw))
	return err
}

func newBuildCmd(opts *options, out io.Writer) *cobra.Command {
	var (
		text      string
		bucket    string
		key       string
		mediaType string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a draft plan from raw text or an uploaded artifact",
		Example: `  harmonyctl build --text "A subscription box for dog toys"
  harmonyctl build --bucket uploads --key deck.pdf --media-type application/pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.BuildPlanInput{RawText: text}
			if bucket != "" || key != "" {
				input.Artifact = &domain.ArtifactRef{Bucket: bucket, Key: key, MediaType: mediaType}
			}
			return call(cmd, opts, out, http.MethodPost, "/v1/plans", input)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "raw business idea")
	cmd.Flags().StringVar(&bucket, "bucket", "", "artifact bucket")
	cmd.Flags().StringVar(&key, "key", "", "artifact object key")
	cmd.Flags().StringVar(&mediaType, "media-type", "", "artifact media type")
	cmd.MarkFlagsMutuallyExclusive("text", "bucket")
	cmd.MarkFlagsRequiredTogether("bucket", "key", "media-type")

	return cmd
}

func newListCmd(opts *options, out io.Writer) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plans, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/v1/plans"
			if status != "" {
				path += "?status=" + url.QueryEscape(status)
			}
			return call(cmd, opts, out, http.MethodGet, path, nil)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (draft, approved)")
	return cmd
}

func newGetCmd(opts *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "get <plan-id>",
		Short: "Show a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, opts, out, http.MethodGet, "/v1/plans/"+url.PathEscape(args[0]), nil)
		},
	}
}

func newRefineCmd(opts *options, out io.Writer) *cobra.Command {
	var instruction string

	cmd := &cobra.Command{
		Use:   "refine <plan-id>",
		Short: "Rewrite a plan body following an instruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]string{"refinementInstruction": instruction}
			return call(cmd, opts, out, http.MethodPost, "/v1/plans/"+url.PathEscape(args[0])+"/refine", payload)
		},
	}

	cmd.Flags().StringVarP(&instruction, "instruction", "i", "", "refinement instruction")
	_ = cmd.MarkFlagRequired("instruction")
	return cmd
}

func newApproveCmd(opts *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <plan-id>",
		Short: "Approve a draft plan and execute its campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return call(cmd, opts, out, http.MethodPost, "/v1/plans/"+url.PathEscape(args[0])+"/approve", nil)
		},
	}
}

func newMonitorCmd(opts *options, out io.Writer) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "monitor [plan-id]",
		Short: "Evaluate campaign metrics and refine the plan if needed",
		Long: `Evaluate one plan against the current campaign metrics.

With --all, trigger a monitoring round on the server scheduler instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return call(cmd, opts, out, http.MethodPost, "/v1/cron/monitoring/run", nil)
			}
			if len(args) == 0 {
				return fmt.Errorf("plan id is required unless --all is set")
			}
			return call(cmd, opts, out, http.MethodPost, "/v1/plans/"+url.PathEscape(args[0])+"/monitor", nil)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "run a monitoring round over every approved plan")
	return cmd
}

func newMetricsCmd(opts *options, out io.Writer) *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "List campaign metric records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/v1/metrics"
			if planID != "" {
				path = "/v1/plans/" + url.PathEscape(planID) + "/metrics"
			}
			return call(cmd, opts, out, http.MethodGet, path, nil)
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "only metrics produced by this plan")
	return cmd
}
