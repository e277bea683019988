package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// MaxFilenameLength is the maximum length for a filename
const MaxFilenameLength = 200

var windowsReserved = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true,
	"COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true,
	"LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

var (
	invalidCharsRegex = regexp.MustCompile(`[<>:"|?*\\/]`)
	separatorsRegex   = regexp.MustCompile(`[-_\s]+`)
)

// SanitizeFilename makes name safe to use as a file name on any platform.
// The extension is kept; an empty result becomes "untitled".
func SanitizeFilename(name string) string {
	name = invalidCharsRegex.ReplaceAllString(name, "-")
	name = separatorsRegex.ReplaceAllString(name, "-")

	ext := filepath.Ext(name)
	base := strings.Trim(strings.TrimSuffix(name, ext), "- .")
	if base == "" {
		base = "untitled"
	}

	if windowsReserved[strings.ToUpper(base)] {
		base = "_" + base
	}
	if len(base)+len(ext) > MaxFilenameLength {
		base = base[:MaxFilenameLength-len(ext)]
	}
	return base + ext
}

// SiteFilename names an output file after the manifest's host,
// e.g. https://example.org/site.json with ext "json" gives "example.org.json".
func SiteFilename(canonical, ext string) string {
	host := GetDomain(canonical)
	if host == "" {
		host = "site"
	}
	return SanitizeFilename(host + "." + strings.TrimPrefix(ext, "."))
}

// EnsureDir ensures the parent directory of path exists
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
