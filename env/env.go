package env

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/c2h5oh/datasize"
)

// GetEnv gets a string value from the environment and parses it
func GetEnv(name string, varName string) (string, error) {
	value, exists := os.LookupEnv(varName)
	if !exists {
		return "", fmt.Errorf("No environment variable found for the %s ('%s')", name, varName)
	}

	return value, nil
}

// GetEnvDefault gets a string value from the environment,
// falling back to the given default when the variable is unset
func GetEnvDefault(varName string, defaultValue string) string {
	if value, exists := os.LookupEnv(varName); exists {
		return value
	}

	return defaultValue
}

// GetIntEnv gets an integer value from the environment and parses it
func GetIntEnv(name string, varName string) (int, error) {
	value, err := GetEnv(name, varName)
	if err != nil {
		return 0, err
	}

	asInt, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("Environment variable value '%s' invalid for the %s ('%s'):\n%s",
			value, name, varName, err)
	}

	return asInt, nil
}

// GetDurationEnv gets a duration value from the environment and parses it
func GetDurationEnv(name string, varName string) (time.Duration, error) {
	value, err := GetEnv(name, varName)
	if err != nil {
		return 0, err
	}

	asDuration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("Environment variable value '%s' invalid for the %s ('%s'):\n%s",
			value, name, varName, err)
	}

	return asDuration, nil
}

// GetDurationEnvDefault gets a duration value from the environment,
// falling back to the given default when the variable is unset
func GetDurationEnvDefault(name string, varName string, defaultValue time.Duration) (time.Duration, error) {
	if _, exists := os.LookupEnv(varName); !exists {
		return defaultValue, nil
	}

	return GetDurationEnv(name, varName)
}

// GetByteSizeEnv gets a human-readable byte size value
// (such as '1MB' or '512KB') from the environment and parses it,
// falling back to the given default when the variable is unset
func GetByteSizeEnv(name string, varName string, defaultValue datasize.ByteSize) (datasize.ByteSize, error) {
	value, exists := os.LookupEnv(varName)
	if !exists {
		return defaultValue, nil
	}

	var asByteSize datasize.ByteSize
	err := asByteSize.UnmarshalText([]byte(value))
	if err != nil {
		return 0, fmt.Errorf("Environment variable value '%s' invalid for the %s ('%s'):\n%s",
			value, name, varName, err)
	}

	return asByteSize, nil
}
