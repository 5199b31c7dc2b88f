// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Overlay  OverlayConfig  `yaml:"overlay"`
	Scene    SceneConfig    `yaml:"scene"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	Background [3]float32 `yaml:"background"`
}

// CameraConfig holds the initial orbit camera.
type CameraConfig struct {
	FovDeg   float32    `yaml:"fov_deg"`
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Distance float32    `yaml:"distance"`
	Pitch    float32    `yaml:"pitch"` // radians
	Yaw      float32    `yaml:"yaw"`   // radians
	Target   [3]float32 `yaml:"target"`
}

// OverlayConfig holds label and debug-draw settings.
type OverlayConfig struct {
	FontSize     float64 `yaml:"font_size"`      // used when a label asks for size 0
	LabelOffsetY float32 `yaml:"label_offset_y"` // world units above the proxy
	ShowBounds   bool    `yaml:"show_bounds"`
}

// SceneConfig selects the scene to load.
type SceneConfig struct {
	Path  string `yaml:"path"` // empty loads the built-in demo
	Watch bool   `yaml:"watch"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			Background: [3]float32{0.16, 0.18, 0.22},
		},
		Camera: CameraConfig{
			FovDeg:   60,
			Near:     0.1,
			Far:      500,
			Distance: 10,
			Pitch:    0.4,
			Yaw:      0,
		},
		Overlay: OverlayConfig{
			FontSize:     14,
			LabelOffsetY: 0,
			ShowBounds:   false,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "colliderviz",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
