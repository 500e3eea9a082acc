package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// fill copies same-named fields and zero-argument getters from src into dst.
func fill(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		slog.Error("response mapping failed", "error", err.Error())
	}
}

func fillSlice[D any, S any](src []S) []D {
	out := make([]D, len(src))
	for i := range src {
		fill(&out[i], src[i])
	}
	return out
}
