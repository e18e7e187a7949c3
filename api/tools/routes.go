package tools

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/usda-mcp/nutrition-api/tools"
	"github.com/usda-mcp/nutrition-api/types"
	"github.com/usda-mcp/nutrition-api/util"
)

// Routes creates a new Chi router with the tool discovery and
// dispatch routes at the root level
func Routes(registry *tools.Registry) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", List(registry))
	router.Post("/{name}", Dispatch(registry))
	return router
}

// List returns metadata and input schemas for every registered tool
func List(registry *tools.Registry) http.HandlerFunc {
	// Use a closure to inject the registry
	return func(w http.ResponseWriter, r *http.Request) {
		infos := registry.Describe()
		listing := types.ToolListing{
			Tools:   infos,
			Count:   len(infos),
			Server:  "usda-nutrition-api",
			Version: "1.0.0",
		}

		util.WriteJSON(w, listing, http.StatusOK)
	}
}

// Dispatch runs a registered tool against the JSON request body and
// wraps the result in the uniform envelope.
// Every outcome is a well-formed envelope; raw errors never escape
func Dispatch(registry *tools.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if name == "" {
			util.ErrorWithCode(w, "", errors.New("the URL parameter is empty"),
				http.StatusBadRequest)
			return
		}

		tool, err := registry.GetTool(name)
		if err != nil {
			util.ErrorWithCode(w, name, err, http.StatusNotFound)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			util.ErrorWithCode(w, name, errors.New("could not read request body"),
				http.StatusBadRequest)
			return
		}
		if len(body) == 0 {
			body = []byte("{}")
		}

		data, message, err := tool.Run(r.Context(), json.RawMessage(body))
		if err != nil {
			util.Error(w, name, err)
			return
		}

		util.WriteJSON(w, types.NewSuccess(name, data, message), http.StatusOK)
	}
}
