package component

const maxDiskNotices = 4

// Diagnostics holds operator-facing notes shown on the loading screen.
type Diagnostics struct {
	// DiskNotices are the most recent frame-file changes seen on disk.
	DiskNotices []string
	// ClipboardStatus is the result of the last copy request, if any.
	ClipboardStatus string
}

// AddDiskNotice appends a notice, keeping only the newest few.
func (d *Diagnostics) AddDiskNotice(notice string) {
	d.DiskNotices = append(d.DiskNotices, notice)
	if n := len(d.DiskNotices); n > maxDiskNotices {
		d.DiskNotices = append([]string(nil), d.DiskNotices[n-maxDiskNotices:]...)
	}
}

var DiagnosticsComponent = NewComponent[Diagnostics]()
