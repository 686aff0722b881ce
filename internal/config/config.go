// Package config resolves tspctl settings from defaults, an optional .env
// file, LVTSP_* environment variables, an optional YAML file and bound flags.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvtsp/tsp"
)

// EnvPrefix prefixes every environment override: solver.algorithm ⇒ LVTSP_SOLVER_ALGORITHM.
const EnvPrefix = "LVTSP"

// Keys.
const (
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	KeyAlgorithm        = "solver.algorithm"
	KeyStart            = "solver.start"
	KeyMatching         = "solver.matching"
	KeyDeadEnd          = "solver.deadend"
	KeyMaxExactVertices = "solver.max_exact_vertices"
	KeyPrune            = "solver.prune"
	KeyLocalSearch      = "solver.local_search"
	KeyDirected         = "graph.directed"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved, validated configuration.
type Config struct {
	LogLevel  string
	LogFormat string

	// Algorithm is empty when "all" solvers were requested.
	Algorithm string
	Solver    tsp.Options
	Directed  bool
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyAlgorithm, tsp.Christofides.String())
	v.SetDefault(KeyStart, 0)
	v.SetDefault(KeyMatching, "greedy")
	v.SetDefault(KeyDeadEnd, tsp.DeadEndFail.String())
	v.SetDefault(KeyMaxExactVertices, tsp.DefaultMaxExactVertices)
	v.SetDefault(KeyPrune, false)
	v.SetDefault(KeyLocalSearch, false)
	v.SetDefault(KeyDirected, false)

	return v
}

// LoadDotEnv loads path (".env" when empty) into the process environment.
// A missing file is not an error; existing variables are not overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "load %s", path)
	}

	return nil
}

// ReadFile merges a YAML config file into v; an empty path is a no-op.
func ReadFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}

	return nil
}

// Load is New + LoadDotEnv + ReadFile + Resolve.
func Load(path string) (*Config, error) {
	if err := LoadDotEnv(""); err != nil {
		return nil, err
	}
	v := New()
	if err := ReadFile(v, path); err != nil {
		return nil, err
	}

	return Resolve(v)
}

// Resolve validates v into a Config.
func Resolve(v *viper.Viper) (*Config, error) {
	c := &Config{
		LogLevel:  v.GetString(KeyLogLevel),
		LogFormat: v.GetString(KeyLogFormat),
		Directed:  v.GetBool(KeyDirected),
		Solver:    tsp.DefaultOptions(),
	}

	name := strings.ToLower(strings.TrimSpace(v.GetString(KeyAlgorithm)))
	if name != "all" {
		algo, err := tsp.ParseAlgorithm(name)
		if err != nil {
			return nil, invalid(KeyAlgorithm, err)
		}
		c.Algorithm = algo.String()
		c.Solver.Algo = algo
	}

	m, err := tsp.MatcherFor(strings.ToLower(strings.TrimSpace(v.GetString(KeyMatching))))
	if err != nil {
		return nil, invalid(KeyMatching, err)
	}
	c.Solver.Matcher = m

	p, err := tsp.ParseDeadEndPolicy(v.GetString(KeyDeadEnd))
	if err != nil {
		return nil, invalid(KeyDeadEnd, err)
	}
	c.Solver.DeadEnd = p

	c.Solver.Start = v.GetInt(KeyStart)
	if c.Solver.Start < 0 {
		return nil, invalid(KeyStart, errors.Errorf("negative start %d", c.Solver.Start))
	}
	c.Solver.MaxExactVertices = v.GetInt(KeyMaxExactVertices)
	if c.Solver.MaxExactVertices < 0 {
		return nil, invalid(KeyMaxExactVertices, errors.Errorf("negative limit %d", c.Solver.MaxExactVertices))
	}
	c.Solver.Prune = v.GetBool(KeyPrune)
	c.Solver.LocalSearch = v.GetBool(KeyLocalSearch)

	return c, nil
}

func invalid(key string, cause error) error {
	return errors.Wrapf(ErrInvalidConfig, "%s: %v", key, cause)
}
