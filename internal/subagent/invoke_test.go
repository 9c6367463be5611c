package subagent

import (
	"reflect"
	"testing"
)

func TestBuildInvocationMinimal(t *testing.T) {
	inv := BuildInvocation(RunRequest{Name: "tester"}, nil)
	if len(inv.Args) != 0 {
		t.Errorf("no flags set, args = %v", inv.Args)
	}
}

func TestBuildInvocationAllFlags(t *testing.T) {
	req := RunRequest{
		Name:                      "reviewer",
		Prompt:                    strptr("look at the diff"),
		JSON:                      true,
		OSS:                       true,
		FullAuto:                  true,
		BypassApprovalsAndSandbox: true,
		Sandbox:                   SandboxWorkspaceWrite,
		Cwd:                       "/work/repo",
		Profile:                   "ci",
		Model:                     "gpt-5-codex",
	}

	inv := BuildInvocation(req, []string{"a=1"})

	want := []string{
		"--json",
		"--oss",
		"--full-auto",
		"--dangerously-bypass-approvals-and-sandbox",
		"--sandbox", "workspace-write",
		"-m", "gpt-5-codex",
		"-p", "ci",
		"-C", "/work/repo",
		"look at the diff",
	}
	if !reflect.DeepEqual(inv.Args, want) {
		t.Errorf("args = %v, want %v", inv.Args, want)
	}
	if !reflect.DeepEqual(inv.Overrides, []string{"a=1"}) {
		t.Errorf("overrides = %v", inv.Overrides)
	}
}

func TestBuildInvocationBooleanFlagsOmittedWhenFalse(t *testing.T) {
	inv := BuildInvocation(RunRequest{Name: "x", Prompt: strptr("p")}, nil)
	if !reflect.DeepEqual(inv.Args, []string{"p"}) {
		t.Errorf("args = %v, want just the prompt", inv.Args)
	}
}

func TestBuildInvocationEmptyPromptForwarded(t *testing.T) {
	// An explicit empty prompt is still a prompt; only absence omits the
	// positional.
	inv := BuildInvocation(RunRequest{Name: "x", JSON: true, Prompt: strptr("")}, nil)
	if !reflect.DeepEqual(inv.Args, []string{"--json", ""}) {
		t.Errorf("args = %v, want trailing empty positional", inv.Args)
	}

	inv = BuildInvocation(RunRequest{Name: "x", JSON: true}, nil)
	if !reflect.DeepEqual(inv.Args, []string{"--json"}) {
		t.Errorf("args = %v, absent prompt must add nothing", inv.Args)
	}
}

func TestBuildInvocationPromptLast(t *testing.T) {
	inv := BuildInvocation(RunRequest{
		Name:    "x",
		Prompt:  strptr("the prompt"),
		Sandbox: SandboxReadOnly,
		Model:   "m",
	}, nil)

	if inv.Args[len(inv.Args)-1] != "the prompt" {
		t.Errorf("prompt must be the final positional token, args = %v", inv.Args)
	}
}

func TestBuildInvocationDeterministic(t *testing.T) {
	req := RunRequest{Name: "x", Prompt: strptr("p"), JSON: true, Model: "m"}
	a := BuildInvocation(req, []string{"a=1", "b=2"})
	b := BuildInvocation(req, []string{"a=1", "b=2"})
	if !reflect.DeepEqual(a, b) {
		t.Error("assembly must be deterministic for identical inputs")
	}
}

func TestSandboxModeSet(t *testing.T) {
	tests := []struct {
		input   string
		want    SandboxMode
		wantErr bool
	}{
		{"read-only", SandboxReadOnly, false},
		{"workspace-write", SandboxWorkspaceWrite, false},
		{"danger-full-access", SandboxDangerFullAccess, false},
		{"read_only", "", true},
		{"yolo", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var m SandboxMode
			err := m.Set(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Set(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if m != tt.want {
				t.Errorf("mode = %q, want %q", m, tt.want)
			}
		})
	}
}
