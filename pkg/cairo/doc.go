// Package cairo binds the native cairo 2D graphics library at runtime.
// No C toolchain is needed: libcairo is opened with dlopen (LoadLibrary on
// Windows) on first use and every entry point is resolved by name.
//
// # Basic Usage
//
//	surface, err := cairo.NewImageSurface(cairo.FormatARGB32, 256, 256)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer surface.Destroy()
//
//	cr, err := cairo.NewContext(surface.Surface)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer cr.Destroy()
//
//	cr.SetSourceRGB(0.2, 0.4, 0.8)
//	cr.Arc(128, 128, 96, 0, 2*math.Pi)
//	cr.Fill()
//	err = surface.WriteToPNG("out.png")
//
// # Loading
//
// [Load] is called implicitly by every constructor. The library is looked
// up under its usual names for the platform; set the GOCAIRO_LIBRARY
// environment variable to a path to override. A build of libcairo missing
// an optional backend still loads; [Supports] reports which [Feature]s are
// usable and the affected calls return [ErrUnsupported].
//
// # Ownership
//
// Each proxy (Context, Surface, Pattern, FontFace, ScaledFont, FontOptions,
// Region, Device, Path) holds one native reference. Destroy drops it.
// A proxy that is never destroyed has its reference dropped by the garbage
// collector, which is fine for small objects but can delay output of
// document surfaces; call Finish or Destroy on those. Getters that return
// objects owned by another object, such as [Context.Target], take a
// reference of their own. Using a proxy after Destroy panics with
// [ErrDestroyed].
//
// # Errors
//
// Native failures surface as [*Error], which carries the [Status] and the
// name of the failing operation, so
// errors.Is(err, cairo.StatusInvalidMatrix.Err()) works. Conditions detected on the Go side use the Err* sentinels.
//
// # Threads
//
// Proxies are not safe for concurrent use. Distinct objects may be used
// from different goroutines.
package cairo
