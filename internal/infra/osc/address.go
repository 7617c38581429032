package osc

import "fmt"

// Console OSC addresses. Both take the 0-based snapshot index as the last
// path segment.
const (
	AddressNewSnapshot    = "/Snapshots/New_Snapshot/%d"
	AddressRenameSnapshot = "/Snapshots/Rename_Snapshot/%d"
)

func NewSnapshotAddress(index int) string {
	return fmt.Sprintf(AddressNewSnapshot, index)
}

func RenameSnapshotAddress(index int) string {
	return fmt.Sprintf(AddressRenameSnapshot, index)
}
