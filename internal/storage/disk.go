// Package storage reports on-disk sizes of the served site.
package storage

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Usage is the size of a set of paths.
type Usage struct {
	Files int   `json:"files"`
	Bytes int64 `json:"bytes"`
}

// DiskUsage returns the number of files and total size in bytes of the given paths.
// Each path may be a file or a directory (recursively summed).
// Missing paths are skipped; errors during the walk are returned.
func DiskUsage(paths ...string) (Usage, error) {
	var total Usage
	for _, p := range paths {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Usage{}, err
		}
		if !info.IsDir() {
			total.Files++
			total.Bytes += info.Size()
			continue
		}
		err = filepath.WalkDir(p, func(_ string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			fi, err := d.Info()
			if err != nil {
				return err
			}
			total.Files++
			total.Bytes += fi.Size()
			return nil
		})
		if err != nil {
			return Usage{}, err
		}
	}
	return total, nil
}
