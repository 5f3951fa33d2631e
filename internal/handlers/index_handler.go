package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/idanaslund/final-project-backend/internal/httpresp"
)

type routeDTO struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type IndexHandler struct {
	engine *gin.Engine
}

func NewIndexHandler(engine *gin.Engine) *IndexHandler {
	return &IndexHandler{engine: engine}
}

// List describes every registered route, sorted by path then method.
func (h *IndexHandler) List(c *gin.Context) {
	routes := h.engine.Routes()
	out := make([]routeDTO, 0, len(routes))
	for _, r := range routes {
		out = append(out, routeDTO{Method: r.Method, Path: r.Path})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	httpresp.List(c, out)
}
