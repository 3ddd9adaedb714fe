// Package fontscan locates a usable TrueType or OpenType font on the
// host, so the renderer does not have to ship a font asset.
//
// Discovery is a two-tier heuristic: candidate files from the
// platform's standard font directories are first matched against a
// list of well-known family names, and when none matches, every
// parseable candidate is scored by how many printable ASCII code
// points it covers. It is a heuristic, not a guarantee; callers must
// handle ErrFontNotFound.
//
// The BINGO_FONT_PATH environment variable names an explicit font file
// and takes absolute precedence: when it is set, discovery never runs,
// even if the file turns out to be unreadable or not a font.
//
// Discovery can be swapped or mocked through the Provider interface;
// ExplicitPath and HostDiscovery are the two shipped implementations.
package fontscan
