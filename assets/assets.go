// Package assets embeds the range map and the bundled weapon definitions.
package assets

import "embed"

// FS holds levels/ and weapons/. It satisfies fs.FS so the loaders accept it
// the same way they accept os.DirFS.
//
//go:embed all:levels all:weapons
var FS embed.FS
