package api

import (
	"strconv"
	"time"

	"github.com/gobuffalo/envy"
	. "github.com/tinywasm/fmt"
)

// Config of the companion server. Values come from the environment and
// fall back to the defaults below; command line flags win over both.
type Config struct {
	Port            string
	PublicDir       string
	DataFile        string
	DefaultWidth    int
	DefaultHeight   int
	ShutdownTimeout time.Duration
}

// LoadConfig reads PORT, PUBLIC_DIR, DATA_FILE, DEFAULT_WIDTH and DEFAULT_HEIGHT.
func LoadConfig() (Config, error) {
	c := Config{
		Port:            envy.Get("PORT", "4430"),
		PublicDir:       envy.Get("PUBLIC_DIR", "public"),
		DataFile:        envy.Get("DATA_FILE", ""),
		ShutdownTimeout: 15 * time.Second,
	}

	var err error
	if c.DefaultWidth, err = positiveInt("DEFAULT_WIDTH", envy.Get("DEFAULT_WIDTH", "600")); err != nil {
		return Config{}, err
	}
	if c.DefaultHeight, err = positiveInt("DEFAULT_HEIGHT", envy.Get("DEFAULT_HEIGHT", "400")); err != nil {
		return Config{}, err
	}
	return c, nil
}

func positiveInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, Errf("%s must be a positive integer, got '%s'", name, value)
	}
	return n, nil
}
