package lua

import (
	rt "github.com/arnodel/golua/runtime"
)

// ModuleName is the name scripts pass to require.
const ModuleName = "cairo"

// registerModule publishes the module table as the global cairo and in
// package.loaded, so both of these work:
//
//	cairo.set_source_rgb(cr, 1, 0, 0)
//	local cairo = require 'cairo'
func (b *Bindings) registerModule() {
	b.runtime.SetGlobal(ModuleName, rt.TableValue(b.module))
	b.runtime.Preload(ModuleName, b.module)
}

// Module returns the cairo module table.
func (b *Bindings) Module() *rt.Table {
	return b.module
}

// SetCanvas publishes the output dimensions as the global canvas table,
// {width, height, format}, so setup code can size things before the
// first draw.
func (b *Bindings) SetCanvas(width, height int, format string) {
	table := rt.NewTable()
	table.Set(rt.StringValue("width"), rt.IntValue(int64(width)))
	table.Set(rt.StringValue("height"), rt.IntValue(int64(height)))
	table.Set(rt.StringValue("format"), rt.StringValue(format))
	b.runtime.SetGlobal("canvas", rt.TableValue(table))
}

// SetFrame publishes the 1-based number of the frame being drawn as the
// global frame.
func (b *Bindings) SetFrame(n int) {
	b.runtime.SetGlobal("frame", rt.IntValue(int64(n)))
}
