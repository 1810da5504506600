package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-b", "file", "-x", "1"},
			allowed: []string{"-b"},
			want:    []string{"-b", "file"},
		},
		{
			name:    "equals form",
			args:    []string{"-k=custom-key", "-v", "debug"},
			allowed: []string{"-k"},
			want:    []string{"-k=custom-key"},
		},
		{
			name:    "order preserved",
			args:    []string{"-d", "a.db", "-l", "zap", "-b", "sqlite"},
			allowed: []string{"-b", "-d"},
			want:    []string{"-d", "a.db", "-b", "sqlite"},
		},
		{
			name:    "nothing allowed matches",
			args:    []string{"positional", "-q"},
			allowed: []string{"-b"},
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-b"},
			allowed: []string{"-b"},
			want:    []string{"-b"},
		},
		{
			name:    "next arg is a flag",
			args:    []string{"-b", "-d", "x.db"},
			allowed: []string{"-b"},
			want:    []string{"-b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"bin", "-c", "conf.json"}, "conf.json"},
		{"long equals", []string{"bin", "-config=other.json", "-b", "file"}, "other.json"},
		{"absent", []string{"bin", "-b", "memory"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, ConfigFileFlag())
		})
	}
}
