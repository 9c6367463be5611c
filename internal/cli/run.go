package cli

import (
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sam/internal/executor"
	"github.com/Dicklesworthstone/sam/internal/subagent"
)

func newRunCmd() *cobra.Command {
	var (
		runOverrides []string
		execJSON     bool
		oss          bool
		fullAuto     bool
		bypass       bool
		yolo         bool
		sandbox      subagent.SandboxMode
		cwd          string
		profile      string
		model        string
	)

	cmd := &cobra.Command{
		Use:   "run <name> [prompt]",
		Short: "Run a subagent through the configured executor",
		Long: `Run one subagent by handing an assembled invocation to the external
executor. The target subagent is force-enabled for the run, and its system
prompt, if any, is passed down as the executor's base instructions.

Overrides layer positionally, last one wins:

  sam -c model=o3 run reviewer -c model=gpt-5 "check this"

runs with model=gpt-5. The --enable/--disable toggles sit above both.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(runOverrides)
			if err != nil {
				return err
			}

			// Resolve the target before anything touches the executor so an
			// unknown name fails fast with a clean error.
			def, err := subagent.NewStore(cfg).Get(args[0])
			if err != nil {
				return err
			}

			runner, err := executor.New(cfg)
			if err != nil {
				return err
			}

			var prompt *string
			if len(args) > 1 {
				prompt = &args[1]
			}

			merged := subagent.MergeOverrides(rootOverrides, runOverrides, toggles(), def)
			inv := subagent.BuildInvocation(subagent.RunRequest{
				Name:                      def.Name,
				Prompt:                    prompt,
				JSON:                      execJSON,
				OSS:                       oss,
				FullAuto:                  fullAuto,
				BypassApprovalsAndSandbox: bypass || yolo,
				Sandbox:                   sandbox,
				Cwd:                       cwd,
				Profile:                   profile,
				Model:                     model,
			}, merged)

			return runner.Dispatch(cmd.Context(), inv)
		},
	}

	f := cmd.Flags()
	// Local -c/--json shadow the inherited flags of the same name: overrides
	// given after "run" land in the run scope, which outranks the root scope.
	f.StringArrayVarP(&runOverrides, "override", "c", nil, "override a config value as key=value (repeatable)")
	f.BoolVar(&execJSON, "json", false, "ask the executor for JSONL event output")
	f.BoolVar(&oss, "oss", false, "use a local open source model provider")
	f.BoolVar(&fullAuto, "full-auto", false, "low-friction sandboxed automatic execution")
	f.BoolVar(&bypass, "dangerously-bypass-approvals-and-sandbox", false, "skip all approval prompts and sandboxing (dangerous)")
	f.BoolVar(&yolo, "yolo", false, "alias for --dangerously-bypass-approvals-and-sandbox")
	f.VarP(&sandbox, "sandbox", "s", "sandbox policy: read-only, workspace-write, or danger-full-access")
	f.StringVarP(&cwd, "cd", "C", "", "working directory for the executor")
	f.StringVarP(&profile, "profile", "p", "", "executor configuration profile")
	f.StringVarP(&model, "model", "m", "", "model the executor should use")
	_ = f.MarkHidden("yolo")

	return cmd
}
