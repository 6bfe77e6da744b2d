package cairo

var defaultLibraryNames = []string{
	"libcairo-2.dll",
	"cairo-2.dll",
	"cairo.dll",
}
