// ABOUTME: Version and product information
// ABOUTME: Shown in the startup banner and -version output
package version

import "fmt"

const (
	Product   = "VHDL SinusGenerator"
	Version   = "1.1.0"
	Copyright = "Copyright (C) 2014-2015"
	Author    = "Sebastian Mach"
)

// Banner returns the line printed when a command starts.
func Banner() string {
	return fmt.Sprintf("%s by %s %s", Product, Author, Copyright)
}
