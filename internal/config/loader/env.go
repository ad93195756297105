package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment variable notepad reads.
const EnvPrefix = "NOTEPAD_"

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // e.g. "NOTEPAD_"
	mapping map[string]string // env var -> config path
	environ func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix.
// The prefix should include the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		environ: os.Environ,
	}
}

// defaultEnvMapping names the variables that do not follow the
// SECTION_SETTING_NAME convention.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL":             "logging.level",
		prefix + "WHOLE_WORD":            "search.wholeWord",
		prefix + "LEGACY_SPACE_BOUNDARY": "search.legacySpaceBoundary",
		prefix + "WHOLE_WORD_REPLACE":    "search.wholeWordReplace",
		prefix + "NORMALIZE_TERM":        "search.normalizeTerm",
		prefix + "TAB_WIDTH":             "editor.tabWidth",
		prefix + "COLOR":                 "highlight.enabled",
	}
}

// SetEnviron replaces the function that lists the environment.
func (l *EnvLoader) SetEnviron(environ func() []string) {
	l.environ = environ
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// Load reads the environment and returns a configuration map.
// Empty values are kept; a set variable always overrides the file.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, kv := range l.environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		setByPath(config, path, parseEnvValue(value))
	}

	return config, nil
}

// envToPath converts NOTEPAD_HIGHLIGHT_TAB_SIZE to highlight.tabSize.
func (l *EnvLoader) envToPath(env string) string {
	parts := strings.Split(strings.TrimPrefix(env, l.prefix), "_")

	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	var name strings.Builder
	name.WriteString(strings.ToLower(parts[1]))
	for _, part := range parts[2:] {
		if part == "" {
			continue
		}
		name.WriteString(strings.ToUpper(part[:1]))
		name.WriteString(strings.ToLower(part[1:]))
	}
	return section + "." + name.String()
}

// parseEnvValue converts booleans and integers, leaving everything else
// as a string.
func parseEnvValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
