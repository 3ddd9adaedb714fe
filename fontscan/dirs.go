package fontscan

import (
	"os"
	"path/filepath"
	"strings"
)

// PreferredFamilies is the ordered list of well-known font family names
// tried before coverage scoring. The first candidate file whose base
// name matches one of these (case-insensitively) wins, in list order.
var PreferredFamilies = []string{
	"Arial",
	"Helvetica",
	"DejaVuSans",
	"LiberationSans",
	"SegoeUI",
	"Segoe UI",
	"NotoSans-Regular",
	"NotoSans",
	"Cantarell-Regular",
}

// fontExtensions are the file extensions collected during discovery.
var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
}

// searchDirs maps a GOOS value to its standard font directories, as
// pure configuration data rather than conditional branches. "~" expands
// to the user's home directory and "$WINDIR" to that environment
// variable. The empty key is the Linux/BSD fallback.
var searchDirs = map[string][]string{
	"darwin": {
		"/System/Library/Fonts",
		"/Library/Fonts",
		"~/Library/Fonts",
	},
	"windows": {
		"$WINDIR/Fonts",
		"C:/Windows/Fonts",
	},
	"": {
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"~/.fonts",
		"~/.local/share/fonts",
	},
}

// SearchDirs returns the standard font directories for the given GOOS,
// with home and environment placeholders expanded. Entries whose
// placeholder cannot be resolved are dropped.
func SearchDirs(goos string) []string {
	entries, ok := searchDirs[goos]
	if !ok {
		entries = searchDirs[""]
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry, "~") {
			home, err := os.UserHomeDir()
			if err != nil {
				continue
			}
			entry = filepath.Join(home, entry[1:])
		} else if strings.HasPrefix(entry, "$WINDIR") {
			win := os.Getenv("WINDIR")
			if win == "" {
				continue
			}
			entry = filepath.Join(win, entry[len("$WINDIR"):])
		}
		dirs = append(dirs, entry)
	}
	return dirs
}
