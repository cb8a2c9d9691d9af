// Package platform maps the host operating system to the SQL checker binary name.
package platform

import "runtime"

// BaseBinaryName is the checker executable name without a platform suffix.
const BaseBinaryName = "sql_tool"

// OS enumerates the operating system families the checker ships for.
type OS int

// Supported operating system families.
const (
	Linux OS = iota
	Mac
	Windows
)

func (o OS) String() string {
	switch o {
	case Mac:
		return "mac"
	case Windows:
		return "windows"
	default:
		return "linux"
	}
}

// Arch enumerates host CPU architectures.
type Arch string

// Known architectures; any other GOARCH is passed through unchanged.
const (
	AMD64 Arch = "amd64"
	ARM64 Arch = "arm64"
	X86   Arch = "x86"
)

// Platform describes the host the checker will run on.
type Platform struct {
	OS   OS
	Arch Arch
}

var (
	goos   = runtime.GOOS
	goarch = runtime.GOARCH
)

// Current returns the platform of the running process.
// Any GOOS other than darwin and windows is treated as a unix-like Linux host.
func Current() Platform {
	return FromGo(goos, goarch)
}

// FromGo maps GOOS/GOARCH values to a Platform.
func FromGo(osName string, arch string) Platform {
	p := Platform{OS: Linux, Arch: Arch(arch)}
	switch osName {
	case "darwin":
		p.OS = Mac
	case "windows":
		p.OS = Windows
	}
	if arch == "386" {
		p.Arch = X86
	}
	return p
}

// ExecutableSuffix returns the suffix executables carry on os.
func ExecutableSuffix(os OS) string {
	if os == Windows {
		return ".exe"
	}
	return ""
}

// BinaryName returns the checker executable file name for os.
func BinaryName(os OS) string {
	return BaseBinaryName + ExecutableSuffix(os)
}

// BinaryName returns the checker executable file name for p.
func (p Platform) BinaryName() string {
	return BinaryName(p.OS)
}
