package api

import (
	"context"
	"net/url"
	"sync"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storeadmin.GO/core/registry"
)

var mu sync.Mutex

// Client is the upstream commerce API surface handlers depend on. The
// concrete *upstream.Client satisfies it; tests substitute fakes.
type Client interface {
	List(ctx context.Context, endpoint string, params url.Values) (map[string]interface{}, error)
	Create(ctx context.Context, endpoint string, body interface{}) (map[string]interface{}, error)
	Delete(ctx context.Context, endpoint, id string) error
}

// Deps carries what API modules need: the upstream client and the local
// console store. DB may be nil when no store is configured; handlers that
// need it must degrade, not panic.
type Deps struct {
	Client Client
	DB     *gorm.DB
}

// --- /api group modules (authenticated) ---

// ModuleFunc registers routes on the /api group.
type ModuleFunc func(g *echo.Group, deps Deps)

func getModules() []ModuleFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryAPI); ok && v != nil {
		return v.([]ModuleFunc)
	}
	return nil
}

// RegisterModule registers an API module. Call from init() in API packages.
func RegisterModule(fn ModuleFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryAPI) {
		panic("api/registry: API modules locked (register only during init)")
	}
	list := getModules()
	list = append(list, fn)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryAPI, list)
}

// ApplyModules calls all registered /api modules. Locks the registry.
func ApplyModules(g *echo.Group, deps Deps) {
	for _, fn := range getModules() {
		fn(g, deps)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
}

// --- Root-level routes (public: health, console HTML, custom) ---

// RouteFunc registers routes on the root Echo instance.
type RouteFunc func(e *echo.Echo, deps Deps)

func getRoutes() []RouteFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryRoutes); ok && v != nil {
		return v.([]RouteFunc)
	}
	return nil
}

// RegisterRoute registers a root-level route module. Call from init().
func RegisterRoute(fn RouteFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryRoutes) {
		panic("api/registry: routes locked (register only during init)")
	}
	list := getRoutes()
	list = append(list, fn)
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryRoutes, list)
}

// RegisterGET is shorthand for registering a simple GET route on root.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ Deps) {
		e.GET(path, handler)
	})
}

// RegisterPOST is shorthand for registering a simple POST route on root.
func RegisterPOST(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ Deps) {
		e.POST(path, handler)
	})
}

// ApplyRoutes calls all registered root-level routes. Locks the registry.
func ApplyRoutes(e *echo.Echo, deps Deps) {
	for _, fn := range getRoutes() {
		fn(e, deps)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
}
