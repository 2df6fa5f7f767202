package fileurl

import (
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
)

// IsExist determines if the given path exists
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// GetFileExt gets file extension, dot included
func GetFileExt(name string) string {
	return path.Ext(name)
}

// IsContainExt determines if the file extension is within the allowed range
func IsContainExt(name string, allowExts []string) bool {
	ext := strings.TrimPrefix(strings.ToLower(GetFileExt(name)), ".")
	if ext == "" {
		return false
	}
	for _, allowExt := range allowExts {
		if strings.ToLower(allowExt) == ext {
			return true
		}
	}
	return false
}

// CreatePath creates the parent directory of dst
func CreatePath(dst string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(dst), perm)
}

// GetExePath gets the directory of the current executable
func GetExePath() string {
	file, _ := exec.LookPath(os.Args[0])
	p, _ := filepath.Abs(file)
	index := strings.LastIndex(p, string(os.PathSeparator))
	return p[:index]
}

// PathSuffixCheckAdd checks the path suffix, adds it if missing
func PathSuffixCheckAdd(path string, suffix string) string {
	if path != "" && !strings.HasSuffix(path, suffix) {
		path = path + suffix
	}
	return path
}

// JoinKey joins object-store key segments with forward slashes regardless
// of the local filesystem convention. Empty segments are skipped.
func JoinKey(segments ...string) string {
	var parts []string
	for _, s := range segments {
		s = strings.ReplaceAll(s, "\\", "/")
		s = strings.Trim(s, "/")
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "/")
}
