package config

import "os"

// Environment is the key/value source configuration is read from.
type Environment interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
}

// OSEnvironment reads and writes the process environment
type OSEnvironment struct{}

// Lookup returns the value of an environment variable and whether it is set
func (OSEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Set sets an environment variable for the current process
func (OSEnvironment) Set(key, value string) error {
	return os.Setenv(key, value)
}

// MapEnvironment is an in-memory Environment
type MapEnvironment map[string]string

// Lookup returns the value stored under key
func (m MapEnvironment) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set stores value under key
func (m MapEnvironment) Set(key, value string) error {
	m[key] = value
	return nil
}
