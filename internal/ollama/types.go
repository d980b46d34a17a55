package ollama

import "time"

// VersionResponse mirrors /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}

// TagsResponse mirrors /api/tags.
type TagsResponse struct {
	Models []TagModel `json:"models"`
}

// TagModel describes one installed model as the server reports it.
type TagModel struct {
	Name       string `json:"name"`
	Model      string `json:"model"`
	Size       int64  `json:"size"`
	Digest     string `json:"digest"`
	ModifiedAt string `json:"modified_at"`
}

// PsResponse mirrors /api/ps.
type PsResponse struct {
	Models []ProcessModel `json:"models"`
}

// ProcessModel describes one model currently loaded into memory.
type ProcessModel struct {
	Name      string `json:"name"`
	Model     string `json:"model"`
	Size      int64  `json:"size"`
	SizeVRAM  int64  `json:"size_vram"`
	ExpiresAt string `json:"expires_at"`
}

// ParsedExpiry returns the expiry timestamp when the server sent one.
func (p ProcessModel) ParsedExpiry() time.Time {
	if p.ExpiresAt == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, p.ExpiresAt); err == nil {
			return t
		}
	}
	return time.Time{}
}
