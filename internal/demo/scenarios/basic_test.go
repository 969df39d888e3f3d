package scenarios

import (
	"testing"

	"github.com/zhubert/launchpad/internal/demo"
)

func TestAll(t *testing.T) {
	scenarios := All()

	if len(scenarios) != 3 {
		t.Errorf("All() should return 3 scenarios, got %d", len(scenarios))
	}

	seen := make(map[string]bool)
	for _, s := range scenarios {
		if seen[s.Name] {
			t.Errorf("Duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.Validate(); err != nil {
			t.Errorf("Scenario %q validation failed: %v", s.Name, err)
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
	}{
		{"basic", true},
		{"mouse", true},
		{"confirm", true},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := Get(tt.name)
			found := scenario != nil

			if found != tt.wantFound {
				t.Errorf("Get(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
		})
	}
}

func TestScenariosRun(t *testing.T) {
	wantLaunches := map[string][]string{
		"basic":   {"vim"},
		"mouse":   {"http-server"},
		"confirm": {"htop"},
	}

	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			executor := demo.NewExecutor(demo.DefaultExecutorConfig())
			frames, err := executor.Run(s)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if len(frames) < len(s.Steps)/3 {
				t.Errorf("Expected a frame for most steps, got %d frames for %d steps", len(frames), len(s.Steps))
			}

			var names []string
			for _, l := range executor.Launches() {
				names = append(names, l.Name)
			}
			want := wantLaunches[s.Name]
			if len(names) != len(want) {
				t.Fatalf("launches = %v, want %v", names, want)
			}
			for i := range want {
				if names[i] != want[i] {
					t.Errorf("launch %d = %q, want %q", i, names[i], want[i])
				}
			}
		})
	}
}

func TestMouseScenario_StepTypes(t *testing.T) {
	stepTypes := make(map[demo.StepType]bool)
	for _, step := range Mouse.Steps {
		stepTypes[step.Type] = true
	}

	for _, want := range []demo.StepType{demo.StepClickEntry, demo.StepClick, demo.StepWheel, demo.StepAnnotate} {
		if !stepTypes[want] {
			t.Errorf("Mouse scenario should have a %s step", want)
		}
	}
}
