package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
)

// Stage is the deployment stage of the process
type Stage string

const (
	StageDev        Stage = "dev"
	StageTest       Stage = "test"
	StageProduction Stage = "production"
)

// Mode is the runtime mode (NODE_ENV). It is independent of the stage: a dev
// deployment may still run in production mode.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeTest        Mode = "test"
	ModeProduction  Mode = "production"
)

// Environment variable names
const (
	KeyMode         = "NODE_ENV"
	KeyStage        = "APP_STAGE"
	KeyPort         = "PORT"
	KeyDatabaseURL  = "DATABASE_URL"
	KeyJWTSecret    = "JWT_SECRET"
	KeyJWTExpiresIn = "JWT_EXPIRES_IN"
	KeyBcryptRounds = "BCRYPT_ROUNDS"
	KeyLogLevel     = "LOG_LEVEL"
)

// DefaultSchema is the schema Load validates against
var DefaultSchema = Schema{
	{Name: KeyMode, Default: string(ModeDevelopment), HasDefault: true,
		Rules: []Rule{OneOf(string(ModeDevelopment), string(ModeTest), string(ModeProduction))}},
	{Name: KeyStage, Default: string(StageDev), HasDefault: true,
		Rules: []Rule{OneOf(string(StageDev), string(StageTest), string(StageProduction))}},
	{Name: KeyPort, Default: "3000", HasDefault: true,
		Rules: []Rule{Positive()}},
	{Name: KeyDatabaseURL,
		Rules: []Rule{HasPrefix("postgresql://")}},
	{Name: KeyJWTSecret,
		Rules: []Rule{MinLength(32, "Must be 32 chars long")}},
	{Name: KeyJWTExpiresIn, Default: "7d", HasDefault: true},
	{Name: KeyBcryptRounds, Default: "12", HasDefault: true,
		Rules: []Rule{Integer(), Between(10, 20)}},
	{Name: KeyLogLevel, Default: "info", HasDefault: true,
		Rules: []Rule{OneOf("debug", "info", "warn", "error")}},
}

// overrideFiles maps a stage to the dotenv file merged before validation.
// Production has no entry: its values must come from the host environment.
var overrideFiles = map[Stage]string{
	StageDev:  ".env",
	StageTest: ".env.test",
}

// Config holds the validated application configuration. It is built once by
// Load and never modified afterwards.
type Config struct {
	mode         Mode
	stage        Stage
	port         int
	databaseURL  string
	jwtSecret    string
	jwtExpiresIn string
	bcryptRounds int
	logLevel     string
	overrideFile string
}

type options struct {
	dir string
}

// Option customizes Load
type Option func(*options)

// WithDir sets the directory override files are read from (default: working directory)
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// Load defaults APP_STAGE, merges the stage override file into env and validates
// the result. It returns a *ValidationError when fields are invalid and a
// *LoadError for anything else.
func Load(env Environment, opts ...Option) (*Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	stage, ok := env.Lookup(KeyStage)
	if !ok || stage == "" {
		stage = string(StageDev)
		if err := env.Set(KeyStage, stage); err != nil {
			return nil, &LoadError{Op: "set", Path: KeyStage, Err: err}
		}
	}

	overridePath, err := mergeOverrideFile(env, Stage(stage), o.dir)
	if err != nil {
		return nil, err
	}

	values, verr := DefaultSchema.Validate(env)
	if verr != nil {
		return nil, verr
	}

	return &Config{
		mode:         Mode(values.String(KeyMode)),
		stage:        Stage(values.String(KeyStage)),
		port:         values.Int(KeyPort),
		databaseURL:  values.String(KeyDatabaseURL),
		jwtSecret:    values.String(KeyJWTSecret),
		jwtExpiresIn: values.String(KeyJWTExpiresIn),
		bcryptRounds: values.Int(KeyBcryptRounds),
		logLevel:     values.String(KeyLogLevel),
		overrideFile: overridePath,
	}, nil
}

// mergeOverrideFile copies keys from the stage's dotenv file into env without
// replacing keys env already has. It returns the path that was merged, or ""
// when the stage has no file or the file does not exist.
func mergeOverrideFile(env Environment, stage Stage, dir string) (string, error) {
	name, ok := overrideFiles[stage]
	if !ok {
		return "", nil
	}
	path := filepath.Join(dir, name)

	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", &LoadError{Op: "read", Path: path, Err: err}
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, exists := env.Lookup(k); exists {
			continue
		}
		if err := env.Set(k, vars[k]); err != nil {
			return "", &LoadError{Op: "set", Path: k, Err: fmt.Errorf("merging %s: %w", path, err)}
		}
	}
	return path, nil
}

// Mode returns the runtime mode
func (c *Config) Mode() Mode { return c.mode }

// Stage returns the deployment stage
func (c *Config) Stage() Stage { return c.stage }

// Port returns the HTTP listen port
func (c *Config) Port() int { return c.port }

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string { return fmt.Sprintf(":%d", c.port) }

// DatabaseURL returns the PostgreSQL connection URL
func (c *Config) DatabaseURL() string { return c.databaseURL }

// JWTSecret returns the token signing secret
func (c *Config) JWTSecret() string { return c.jwtSecret }

// JWTExpiresIn returns the token lifetime, e.g. "7d"
func (c *Config) JWTExpiresIn() string { return c.jwtExpiresIn }

// BcryptRounds returns the password hashing cost factor
func (c *Config) BcryptRounds() int { return c.bcryptRounds }

// LogLevel returns the configured log level name
func (c *Config) LogLevel() string { return c.logLevel }

// OverrideFile returns the dotenv file merged during Load, or "" if none was
func (c *Config) OverrideFile() string { return c.overrideFile }

// IsDev reports whether the process runs in the local dev stage
func (c *Config) IsDev() bool { return c.stage == StageDev }

// IsTest reports whether the process runs in the automated test stage
func (c *Config) IsTest() bool { return c.stage == StageTest }

// IsProduction reports whether the process runs in the production stage
func (c *Config) IsProduction() bool { return c.stage == StageProduction }

// IsProductionMode reports whether NODE_ENV selects production optimizations
func (c *Config) IsProductionMode() bool { return c.mode == ModeProduction }
