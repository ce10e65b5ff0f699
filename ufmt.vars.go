package ufmt

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SetVars stores every entry of vars on the context. Nested maps
// flatten into dot-joined names, so {"server": {"port": 80}} stores the
// variable "server.port". Values convert through the context's normal
// SetVar rules.
func SetVars(ctx Context, vars map[string]any) {
	setVarsPrefixed(ctx, "", vars)
}

func setVarsPrefixed(ctx Context, prefix string, vars map[string]any) {
	for name, value := range vars {
		full := name
		if prefix != "" {
			full = prefix + VarsKeySeparator + name
		}
		if nested, ok := value.(map[string]any); ok {
			setVarsPrefixed(ctx, full, nested)
			continue
		}
		ctx.SetVar(full, value)
	}
}

// ImportVarsYAML parses YAML data and stores the result on the context
// through SetVars.
func ImportVarsYAML(ctx Context, data []byte) error {
	return importVarsYAML(ctx, data, "")
}

// ImportVarsTOML parses TOML data and stores the result on the context
// through SetVars.
func ImportVarsTOML(ctx Context, data []byte) error {
	return importVarsTOML(ctx, data, "")
}

// ImportVarsFile loads variables from a YAML or TOML file, chosen by
// extension.
func ImportVarsFile(ctx Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewVarsReadError(path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case FileExtYAML, FileExtYML:
		return importVarsYAML(ctx, data, path)
	case FileExtTOML:
		return importVarsTOML(ctx, data, path)
	default:
		return NewVarsExtensionError(path, ext)
	}
}

func importVarsYAML(ctx Context, data []byte, path string) error {
	var vars map[string]any
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return NewVarsParseError(ErrMsgVarsParseYAML, path, err)
	}
	SetVars(ctx, vars)
	return nil
}

func importVarsTOML(ctx Context, data []byte, path string) error {
	var vars map[string]any
	if err := toml.Unmarshal(data, &vars); err != nil {
		return NewVarsParseError(ErrMsgVarsParseTOML, path, err)
	}
	SetVars(ctx, vars)
	return nil
}
