package calculator

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all separator endpoints onto the given router
// under the /separator prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/separator", func(r chi.Router) {
		r.Get("/", Index)
		r.Get("/two-phase", TwoPhaseFields)
		r.Post("/two-phase", TwoPhase)
		r.Get("/three-phase", ThreePhaseFields)
		r.Post("/three-phase", ThreePhase)
	})
}
