package main

import (
	"fmt"
	"net/http"

	utilruntime "k8s.io/apimachinery/pkg/util/runtime"

	"myapp/internal/data"
)

// respond answers every request the same way, whatever its method, path or
// body.
func (app *application) respond(w http.ResponseWriter, r *http.Request) {
	body, err := data.NewPayload(app.config).Encode()
	if err != nil {
		utilruntime.HandleError(fmt.Errorf("instance %s: failed to encode payload: %w", app.instanceID, err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		// Client went away mid-write; nothing left to tell it.
		utilruntime.HandleError(fmt.Errorf("instance %s: failed to write response for %s %s from %s: %w",
			app.instanceID, r.Method, r.URL.Path, r.RemoteAddr, err))
	}
}
