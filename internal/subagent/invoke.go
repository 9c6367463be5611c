package subagent

import "fmt"

// SandboxMode selects the executor's sandbox policy. The zero value means
// "not specified" and emits no flag.
type SandboxMode string

const (
	SandboxUnset            SandboxMode = ""
	SandboxReadOnly         SandboxMode = "read-only"
	SandboxWorkspaceWrite   SandboxMode = "workspace-write"
	SandboxDangerFullAccess SandboxMode = "danger-full-access"
)

// String returns the canonical kebab-case name. Implements pflag.Value.
func (m *SandboxMode) String() string {
	return string(*m)
}

// Set validates and assigns a sandbox mode from its canonical name.
// Implements pflag.Value.
func (m *SandboxMode) Set(v string) error {
	switch SandboxMode(v) {
	case SandboxReadOnly, SandboxWorkspaceWrite, SandboxDangerFullAccess:
		*m = SandboxMode(v)
		return nil
	}
	return fmt.Errorf("invalid sandbox mode %q (read-only, workspace-write, danger-full-access)", v)
}

// Type describes the flag value for help output. Implements pflag.Value.
func (m *SandboxMode) Type() string {
	return "mode"
}

// RunRequest is a validated request to run a subagent.
type RunRequest struct {
	Name string
	// Prompt is the positional prompt; nil means none was given. An
	// explicit empty prompt is still forwarded to the executor.
	Prompt   *string
	JSON     bool
	OSS      bool
	FullAuto bool
	// BypassApprovalsAndSandbox disables both approval prompts and the
	// sandbox in the executor.
	BypassApprovalsAndSandbox bool
	Sandbox                   SandboxMode
	Cwd                       string
	Profile                   string
	Model                     string
}

// Invocation is the assembled package handed to the dispatcher: the
// executor's argument tokens plus the override sequence, which travels
// alongside them and must keep its order.
type Invocation struct {
	Args      []string
	Overrides []string
}

// BuildInvocation assembles the executor argument vector for req and
// attaches the already merged override sequence. Pure and deterministic:
// boolean flags appear only when set, value flags only when present, and
// the prompt, if any, is the final positional token.
func BuildInvocation(req RunRequest, overrides []string) Invocation {
	var args []string
	if req.JSON {
		args = append(args, "--json")
	}
	if req.OSS {
		args = append(args, "--oss")
	}
	if req.FullAuto {
		args = append(args, "--full-auto")
	}
	if req.BypassApprovalsAndSandbox {
		args = append(args, "--dangerously-bypass-approvals-and-sandbox")
	}
	if req.Sandbox != SandboxUnset {
		args = append(args, "--sandbox", string(req.Sandbox))
	}
	if req.Model != "" {
		args = append(args, "-m", req.Model)
	}
	if req.Profile != "" {
		args = append(args, "-p", req.Profile)
	}
	if req.Cwd != "" {
		args = append(args, "-C", req.Cwd)
	}
	if req.Prompt != nil {
		args = append(args, *req.Prompt)
	}
	return Invocation{Args: args, Overrides: overrides}
}
