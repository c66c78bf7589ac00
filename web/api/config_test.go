package api

import (
	"reflect"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gobuffalo/envy"
)

func TestLoadConfig(t *testing.T) {
	envy.Temp(func() {
		envy.Set("PORT", "8080")
		envy.Set("PUBLIC_DIR", "/srv/public")
		envy.Set("DATA_FILE", "bins.json")
		envy.Set("DEFAULT_WIDTH", "800")
		envy.Set("DEFAULT_HEIGHT", "300")

		got, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		want := Config{
			Port:            "8080",
			PublicDir:       "/srv/public",
			DataFile:        "bins.json",
			DefaultWidth:    800,
			DefaultHeight:   300,
			ShutdownTimeout: 15 * time.Second,
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("LoadConfig() = %v, want %v", spew.Sdump(got), spew.Sdump(want))
		}
	})
}

func TestLoadConfigInvalidSize(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DEFAULT_WIDTH", "wide"},
		{"DEFAULT_WIDTH", "0"},
		{"DEFAULT_HEIGHT", "-20"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			envy.Temp(func() {
				envy.Set(tt.key, tt.value)
				if _, err := LoadConfig(); err == nil {
					t.Errorf("LoadConfig() should reject %s=%s", tt.key, tt.value)
				}
			})
		})
	}
}
