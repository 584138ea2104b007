package models

// Module is one unit of tutorial content.
type Module struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

var catalog = []Module{
	{ID: "basics", Title: "Svelte Basics"},
	{ID: "lifecycle", Title: "Component Lifecycle"},
	{ID: "events", Title: "Events and Bindings"},
	{ID: "stores", Title: "Svelte Stores"},
	{ID: "advanced", Title: "Advanced Techniques"},
	{ID: "routing", Title: "SvelteKit Routing and SSR"},
	{ID: "authentication", Title: "Authentication with Laravel"},
	{ID: "api-integration", Title: "API Integration Techniques"},
	{ID: "forms", Title: "Form Handling and Validation"},
	{ID: "realtime", Title: "Real-time Features with WebSockets"},
}

// Modules returns the ordered module catalog. The slice is a copy.
func Modules() []Module {
	out := make([]Module, len(catalog))
	copy(out, catalog)
	return out
}

// FindModule looks up a catalog module by id.
func FindModule(id string) (Module, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return Module{}, false
}
