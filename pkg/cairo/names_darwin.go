package cairo

var defaultLibraryNames = []string{
	"libcairo.2.dylib",
	"/opt/homebrew/lib/libcairo.2.dylib",
	"/usr/local/lib/libcairo.2.dylib",
	"/opt/local/lib/libcairo.2.dylib",
}
