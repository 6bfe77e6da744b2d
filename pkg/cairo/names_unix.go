//go:build !darwin && !windows

package cairo

var defaultLibraryNames = []string{
	"libcairo.so.2",
	"libcairo.so",
}
