package tokcore

// FileTable is the ordered list of normalized source paths a Stream's
// tokens reference by index. It grows monotonically during lexing.
type FileTable struct {
	paths []string
}

// Index returns the index of path in the table, appending it if it is
// not already present.
func (ft *FileTable) Index(path string) int {
	for i, p := range ft.paths {
		if p == path {
			return i
		}
	}
	ft.paths = append(ft.paths, path)
	return len(ft.paths) - 1
}

// Path returns the path stored at index, or "" if index is out of
// range.
func (ft *FileTable) Path(index int) string {
	if index < 0 || index >= len(ft.paths) {
		return ""
	}
	return ft.paths[index]
}

// Len returns the number of files recorded in the table.
func (ft *FileTable) Len() int {
	return len(ft.paths)
}

// Paths returns the recorded paths in table order. The caller must not
// mutate the returned slice.
func (ft *FileTable) Paths() []string {
	return ft.paths
}
