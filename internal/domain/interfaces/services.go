package interfaces

import (
	"context"

	domaintypes "laydeck/internal/domain/types"
)

// PathResolver turns a raw definition file reference into a usable path.
type PathResolver interface {
	Resolve(raw string) string
}

// LayoutService runs the extraction and derivation pipeline over one layout.
type LayoutService interface {
	Process(ctx context.Context, layoutPath string) (domaintypes.LayoutResult, error)
}
