package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyTuningMergesPresentKeys(t *testing.T) {
	saved := Player
	defer func() { Player = saved }()

	cases := []struct {
		name string
		yaml string
		want func(PlayerConfig) bool
	}{
		{
			name: "single_key",
			yaml: "moveSpeed: 7.5\n",
			want: func(p PlayerConfig) bool {
				return p.MoveSpeed == 7.5 && p.JumpForce == saved.JumpForce
			},
		},
		{
			name: "several_keys",
			yaml: "jumpForce: 14\nwallJumpTime: 0.4\n",
			want: func(p PlayerConfig) bool {
				return p.JumpForce == 14 && p.WallJumpTime == 0.4 &&
					p.WallSlideSpeed == saved.WallSlideSpeed
			},
		},
		{
			name: "empty_keeps_everything",
			yaml: "",
			want: func(p PlayerConfig) bool { return p == saved },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			Player = saved
			if err := ApplyTuning([]byte(tc.yaml)); err != nil {
				t.Fatalf("ApplyTuning: %v", err)
			}
			if !tc.want(Player) {
				t.Fatalf("unexpected merge result: %+v", Player)
			}
		})
	}
}

func TestApplyTuningRejectsBadYAML(t *testing.T) {
	saved := Player
	defer func() { Player = saved }()

	if err := ApplyTuning([]byte("moveSpeed: [not a number")); err == nil {
		t.Fatal("expected a parse error")
	}
	if Player != saved {
		t.Fatalf("config changed on parse error: %+v", Player)
	}
}

func TestEmbeddedTuningParses(t *testing.T) {
	saved := Player
	defer func() { Player = saved }()

	if err := ApplyTuning(defaultTuning); err != nil {
		t.Fatalf("embedded tuning.yaml must parse: %v", err)
	}
}

func TestEnsureTuningFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")

	if err := EnsureTuningFile(path); err != nil {
		t.Fatalf("EnsureTuningFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created file: %v", err)
	}
	if string(data) != string(defaultTuning) {
		t.Fatal("created file should hold the embedded defaults")
	}

	// A second call must not clobber an edited file.
	if err := os.WriteFile(path, []byte("moveSpeed: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureTuningFile(path); err != nil {
		t.Fatalf("EnsureTuningFile on existing file: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "moveSpeed: 1\n" {
		t.Fatal("existing file was overwritten")
	}
}
