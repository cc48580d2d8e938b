package obsidian

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"vaultsearch/internal/domain"
	"vaultsearch/internal/ports"
)

const scheme = "obsidian://"

// LinkConfig selects how deep links are built. It is read-only after startup.
type LinkConfig struct {
	VaultName       string // Enables vault+file links when set
	ContainerPrefix string // Path prefix as seen by this process (e.g. /vault)
	HostPrefix      string // Same location as seen by Obsidian on the host
}

// LinkBuilder implements ports.LinkBuilder
type LinkBuilder struct {
	cfg LinkConfig
}

// Ensure LinkBuilder implements ports.LinkBuilder
var _ ports.LinkBuilder = (*LinkBuilder)(nil)

// NewLinkBuilder creates a link builder for the given configuration
func NewLinkBuilder(cfg LinkConfig) *LinkBuilder {
	return &LinkBuilder{cfg: cfg}
}

// BuildURI constructs the obsidian:// URI for a document.
//
// With a vault name and a known vault root the link names the vault and the
// vault-relative file. Otherwise it carries the absolute path, translated
// from the container prefix to the host prefix.
func (b *LinkBuilder) BuildURI(doc domain.Document, vaultRoot string) string {
	if b.cfg.VaultName != "" && vaultRoot != "" {
		return fmt.Sprintf("%sopen?vault=%s&file=%s",
			scheme,
			escape(b.cfg.VaultName),
			escape(vaultRelative(doc, vaultRoot)),
		)
	}

	hostPath := MapContainerToHost(doc.AbsPath, b.cfg.ContainerPrefix, b.cfg.HostPrefix)
	return fmt.Sprintf("%sopen?path=%s", scheme, escape(hostPath))
}

// vaultRelative returns the forward-slash path of doc inside vaultRoot,
// falling back to the stored relative path or the bare file name.
func vaultRelative(doc domain.Document, vaultRoot string) string {
	rel, err := filepath.Rel(resolve(vaultRoot), resolve(doc.AbsPath))
	if err == nil && rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(rel)
	}

	if doc.RelPath != "" {
		return filepath.ToSlash(doc.RelPath)
	}
	return filepath.Base(doc.AbsPath)
}

// resolve cleans p and follows symlinks when p exists
func resolve(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return filepath.Clean(p)
}

// MapContainerToHost replaces a leading containerPrefix of absPath with hostPrefix.
// The prefix only matches whole path segments, so /vault never matches /vaultage.
// Unset prefixes or a non-matching path return absPath unchanged.
func MapContainerToHost(absPath, containerPrefix, hostPrefix string) string {
	if !isSet(containerPrefix) || !isSet(hostPrefix) {
		return absPath
	}

	prefix := splitPath(containerPrefix)
	parts := splitPath(absPath)
	if len(parts) < len(prefix) {
		return absPath
	}
	for i, segment := range prefix {
		if parts[i] != segment {
			return absPath
		}
	}

	rest := parts[len(prefix):]
	host := filepath.Clean(hostPrefix)
	if len(rest) == 0 {
		return host
	}
	return filepath.Join(append([]string{host}, rest...)...)
}

// splitPath returns the segments of a cleaned path; the root is kept as the first segment
func splitPath(p string) []string {
	p = filepath.Clean(p)
	volume := filepath.VolumeName(p)
	rest := p[len(volume):]

	var segments []string
	if strings.HasPrefix(rest, string(filepath.Separator)) {
		segments = append(segments, volume+string(filepath.Separator))
		rest = strings.TrimPrefix(rest, string(filepath.Separator))
	} else if volume != "" {
		segments = append(segments, volume)
	}
	for _, s := range strings.Split(rest, string(filepath.Separator)) {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

func isSet(prefix string) bool {
	p := strings.TrimSpace(prefix)
	return p != "" && filepath.Clean(p) != "."
}

// escape percent-encodes s for a query value, using %20 for spaces as Obsidian expects
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
