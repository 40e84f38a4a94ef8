package frames

import "fmt"

// Pattern names frame files as {Directory}{Prefix}{index}.{Extension}, with the
// 1-based index zero-padded to PadWidth digits.
type Pattern struct {
	Directory string
	Prefix    string
	PadWidth  int
	Extension string
}

// Path returns the resource path for the 1-based frame index.
func (p Pattern) Path(index int) string {
	return fmt.Sprintf("%s%s%0*d.%s", p.Directory, p.Prefix, p.PadWidth, index, p.Extension)
}

// Example is the path of the first frame, shown while loading.
func (p Pattern) Example() string {
	return p.Path(1)
}

func (p Pattern) String() string {
	return fmt.Sprintf("DIR=%q  PREFIX=%q  PAD=%d  EXT=%q", p.Directory, p.Prefix, p.PadWidth, p.Extension)
}
