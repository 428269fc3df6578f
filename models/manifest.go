package models

// RenderManifest records every route the prerender step emitted. It is
// written once per build, after all routes succeed, and consumed only by
// verification tooling.
type RenderManifest struct {
	GeneratedAt string   `json:"generatedAt"`
	RouteCount  int      `json:"routeCount"`
	Routes      []string `json:"routes"`
}
