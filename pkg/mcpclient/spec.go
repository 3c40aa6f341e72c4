// MCP server launch specification and YAML loading.
package mcpclient

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ServerSpec describes how to launch the MCP server subprocess.
type ServerSpec struct {
	Command string            `yaml:"command"`
	Args    []string          `yaml:"args"`
	Env     map[string]string `yaml:"env"`
}

// DefaultServerSpec returns the ClickHouse MCP server invocation used when no
// config file is supplied. The subprocess inherits the full environment so the
// server can pick up its own connection settings.
func DefaultServerSpec() ServerSpec {
	return ServerSpec{
		Command: "python",
		Args:    []string{"-m", "mcp_clickhouse.main"},
	}
}

// LoadServerSpec reads a ServerSpec from a YAML file.
func LoadServerSpec(path string) (ServerSpec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return ServerSpec{}, err
	}

	var spec ServerSpec
	if err := yaml.Unmarshal(content, &spec); err != nil {
		return ServerSpec{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if strings.TrimSpace(spec.Command) == "" {
		return ServerSpec{}, fmt.Errorf("%s: missing server command", path)
	}
	return spec, nil
}

// environ returns the subprocess environment: the inherited environment plus
// any overrides from the spec.
func (s ServerSpec) environ() []string {
	env := os.Environ()
	for key, value := range s.Env {
		env = append(env, key+"="+value)
	}
	return env
}
