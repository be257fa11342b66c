package driver

import (
	"crypto/sha256"
	"fmt"

	"ponyfmt/internal/format"
	"ponyfmt/internal/version"
)

// Digest identifies a file content together with the settings it was formatted under.
type Digest [sha256.Size]byte

// cacheKey: H(version || options || content).
// Смена версии или опций делает старые записи недостижимыми.
func cacheKey(content []byte, opts format.Options) Digest {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%s\x00%d\x00%d\x00", version.Version, opts.IndentWidth, opts.InlineLimit)
	_, _ = h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
