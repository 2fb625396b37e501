package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/datalift/elasticsink/pkg/sinkerrors"
)

// envVarPattern matches ${VAR} references in configuration files.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// LoadProps reads a configuration file into the flat string properties that
// New consumes. The format is chosen by extension: .yaml and .yml are
// decoded with the YAML parser and flattened to dotted keys, .properties and
// .json go through viper. ${VAR} references are substituted from the
// environment before parsing; unset variables substitute to the empty
// string.
func LoadProps(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sinkerrors.Wrap(err, sinkerrors.ErrorTypeConfig, "reading config file").
			WithDetail("path", path)
	}
	data = substituteEnvVars(data)

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	switch ext {
	case "yaml", "yml":
		return parseYAMLProps(data, path)
	case "properties", "json":
		return parseViperProps(data, ext, path)
	default:
		return nil, sinkerrors.New(sinkerrors.ErrorTypeConfig,
			fmt.Sprintf("unsupported config file extension %q", ext)).
			WithDetail("path", path)
	}
}

func substituteEnvVars(data []byte) []byte {
	return envVarPattern.ReplaceAllFunc(data, func(match []byte) []byte {
		name := string(match[2 : len(match)-1])
		return []byte(os.Getenv(name))
	})
}

func parseYAMLProps(data []byte, path string) (map[string]string, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, sinkerrors.Wrap(err, sinkerrors.ErrorTypeConfig, "parsing YAML config").
			WithDetail("path", path)
	}
	props := make(map[string]string)
	flattenYAML("", doc, props)
	return props, nil
}

// flattenYAML turns nested YAML maps into dotted keys. Scalars and lists are
// rendered as the string form the resolver expects; list elements join with
// commas.
func flattenYAML(prefix string, node map[string]any, out map[string]string) {
	for key, value := range node {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			flattenYAML(full, v, out)
		case []any:
			parts := make([]string, len(v))
			for i, item := range v {
				parts[i] = fmt.Sprint(item)
			}
			out[full] = strings.Join(parts, ",")
		case nil:
			out[full] = ""
		default:
			out[full] = fmt.Sprint(v)
		}
	}
}

func parseViperProps(data []byte, format, path string) (map[string]string, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, sinkerrors.Wrap(err, sinkerrors.ErrorTypeConfig, "parsing config file").
			WithDetail("path", path).
			WithDetail("format", format)
	}
	props := make(map[string]string)
	for _, key := range v.AllKeys() {
		props[key] = v.GetString(key)
	}
	return props, nil
}
