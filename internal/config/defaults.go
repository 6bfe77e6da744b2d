package config

import (
	"image/color"
	"time"
)

// Default values for configuration options.
const (
	// DefaultWidth is the default canvas width.
	DefaultWidth = 400
	// DefaultHeight is the default canvas height.
	DefaultHeight = 300
	// DefaultFrames is the default number of draw calls.
	DefaultFrames = 1
	// DefaultCPULimit is the default per-call Lua instruction budget.
	DefaultCPULimit = 50_000_000
	// DefaultMemoryLimit is the default per-call Lua allocation budget.
	DefaultMemoryLimit = 64 * 1024 * 1024
	// DefaultDebounce is the default watch debounce interval.
	DefaultDebounce = 200 * time.Millisecond
	// MaxDimension is the largest canvas side cairo accepts.
	MaxDimension = 32767
)

// TransparentColor represents fully transparent.
var TransparentColor = color.RGBA{R: 0, G: 0, B: 0, A: 0}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Format: FormatAuto,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Frames: DefaultFrames,
		Lua: LuaConfig{
			CPULimit:    DefaultCPULimit,
			MemoryLimit: DefaultMemoryLimit,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
	}
}

// DefaultLuaConfig returns a LuaConfig with default values.
func DefaultLuaConfig() LuaConfig {
	return DefaultConfig().Lua
}
