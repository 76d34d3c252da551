package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/blockray/raycast"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// config is the configuration of blockray, read from blockray.toml.
type config struct {
	Ray struct {
		// Mode is one of trace, fill or dig.
		Mode        string
		Origin      []float64
		Direction   []float64
		MaxDistance float64
		// Stepper is either dda or trace.
		Stepper string
		// Selection is either last or nearest.
		Selection string
	}
	World struct {
		// Radius is the half width of the square dirt plane.
		Radius int
		PlaneY int
	}
	Log struct {
		Level string
	}
	Sentry struct {
		DSN string
	}
	Debug struct {
		Trace     bool
		StatsView bool
		StatsAddr string
	}
}

// defaultConfig returns the configuration written on first run.
func defaultConfig() config {
	c := config{}
	c.Ray.Mode = "trace"
	c.Ray.Origin = []float64{0.5, 70.5, 0.5}
	c.Ray.Direction = []float64{1, -0.5, 0.25}
	c.Ray.MaxDistance = 32
	c.Ray.Stepper = "dda"
	c.Ray.Selection = "last"
	c.World.Radius = 16
	c.World.PlaneY = 64
	c.Log.Level = "info"
	c.Debug.StatsAddr = "localhost:8080"
	return c
}

// readConfig reads the configuration from the file at path, or creates the
// file with the default configuration if it does not yet exist.
func readConfig(path string) (config, error) {
	c := defaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("encode default config: %v", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return c, fmt.Errorf("create default config: %v", err)
		}
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %v", err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %v", err)
	}
	return c, nil
}

// vec3 converts a configured vector to an mgl64.Vec3.
func vec3(v []float64) (mgl64.Vec3, error) {
	if len(v) != 3 {
		return mgl64.Vec3{}, fmt.Errorf("vector must have 3 components, got %d", len(v))
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// caster builds the raycast.Caster described by the configuration.
func (c config) caster(log *logrus.Logger) (raycast.Caster, error) {
	var cs raycast.Caster
	switch strings.ToLower(c.Ray.Stepper) {
	case "", "dda":
	case "trace":
		cs.Stepper = raycast.TraceStepper{}
	default:
		return cs, fmt.Errorf("unknown stepper %q", c.Ray.Stepper)
	}
	switch strings.ToLower(c.Ray.Selection) {
	case "", "last":
	case "nearest":
		cs.Selection = raycast.SelectNearest
	default:
		return cs, fmt.Errorf("unknown selection %q", c.Ray.Selection)
	}
	if c.Debug.Trace {
		cs.Debugf = log.Debugf
	}
	return cs, nil
}
