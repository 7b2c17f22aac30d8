package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"pixel-ocean/internal/ocean"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not in key=value form", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	Cell     int
	HUDWidth int
	TPS      int
	Seed     int64
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := ocean.DefaultConfig()
	return &Config{
		Width:    def.Width,
		Height:   def.Height,
		Cell:     def.Controls.CellSize,
		HUDWidth: 240,
		TPS:      60,
		Seed:     def.Seed,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "ocean viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "ocean viewport height in pixels")
	fs.IntVar(&c.Cell, "cell", c.Cell, "pixel block size")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for generation and simulation")
	fs.Var(&c.Set, "set", "ocean parameter override in key=value form (repeatable)")
}

// Ocean builds the renderer configuration. Flags are applied first and
// -set overrides win over them.
func (c *Config) Ocean() ocean.Config {
	kv := map[string]string{
		"w":         strconv.Itoa(c.Width),
		"h":         strconv.Itoa(c.Height),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"cell_size": strconv.Itoa(c.Cell),
	}
	for k, v := range c.Set.Map() {
		kv[k] = v
	}
	return ocean.FromMap(kv)
}
