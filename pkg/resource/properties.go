package resource

import (
	"bytes"
	"cek-cuaca/configs"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"
)

var props = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// init loads the embedded application properties, then the override file if PROPERTIES_FILE_PATH is set
func init() {
	if err := Load(configs.ApplicationYAML); err != nil {
		log.Fatalf("Fail to read embedded properties: %v", err)
	}
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		Init(value)
	}
}

// Init reads a properties file from disk, replacing the current values.
func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
	if err := Load(content); err != nil {
		log.Fatalf("Fail to parse properties %s: %v", filepath, err)
	}
}

// Load parses YAML properties and resolves ${ENV:default} placeholders.
func Load(content []byte) error {
	v := viper.New()
	v.SetConfigType("yml")
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}

	resolved := make(map[string]any)
	parsePropertiesMap("", v.AllSettings(), resolved)
	for key, value := range resolved {
		v.Set(key, value)
	}

	props = v
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariable(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case map[string]interface{}:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariable replaces a ${ENV:default} value with the environment value or its default
func resolveEnvVariable(value string) string {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return value
	}

	if envValue, exists := os.LookupEnv(matches[1]); exists {
		return envValue
	}
	return matches[2]
}

func Get(key string) any {
	return props.Get(key)
}

func GetString(key string) string {
	return props.GetString(key)
}

func GetBool(key string) bool {
	return props.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return props.GetDuration(key)
}

func GetInt(key string) int {
	return props.GetInt(key)
}
