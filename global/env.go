package global

import (
	"github.com/picup-app/picup/pkg/fileurl"
)

var (
	// ROOT is the directory the executable runs from
	ROOT string
)

func init() {
	filename := fileurl.GetExePath()
	ROOT = filename + "/"
}
