package main

import "fmt"

const (
	appMajor = 1
	appMinor = 0
	appPatch = 0
)

// version returns the build version string.
func version() string {
	return fmt.Sprintf("seedtocss %d.%d.%d", appMajor, appMinor, appPatch)
}
