package models

import "sort"

// pinnedVersions are the fallback constraints used whenever live version
// resolution is disabled or fails for a package. Every package the generator
// can declare has an entry here.
var pinnedVersions = map[string]string{
	// runtime
	"express":                   "^4.19.2",
	"fastify":                   "^4.26.2",
	"@fastify/cors":             "^9.0.1",
	"@fastify/swagger":          "^8.14.0",
	"fastify-type-provider-zod": "^1.1.9",
	"zod":                       "^3.23.4",

	// development
	"typescript":                       "^5.4.5",
	"tsx":                              "^4.7.3",
	"tsup":                             "^8.0.2",
	"jest":                             "^29.7.0",
	"ts-jest":                          "^29.1.2",
	"@types/jest":                      "^29.5.12",
	"@types/node":                      "^20.12.7",
	"@types/express":                   "^4.17.21",
	"eslint":                           "^8.57.0",
	"prettier":                         "^3.2.5",
	"husky":                            "^9.0.11",
	"lint-staged":                      "^15.2.2",
	"@typescript-eslint/parser":        "^7.7.0",
	"@typescript-eslint/eslint-plugin": "^7.7.0",
}

// PinnedDefault returns the fallback constraint for a package. Packages
// outside the built-in table (e.g. a custom fastify plugin list) fall back
// to "latest" so no manifest entry is ever left unset.
func PinnedDefault(name string) string {
	if v, ok := pinnedVersions[name]; ok {
		return v
	}
	return "latest"
}

// DependencySet holds the declared packages of a generated project, split
// into runtime and development groups. A set is always complete for the
// framework it was built for.
type DependencySet struct {
	Runtime map[string]string
	Dev     map[string]string
}

var commonDevPackages = []string{
	"typescript",
	"tsx",
	"tsup",
	"jest",
	"ts-jest",
	"@types/jest",
	"@types/node",
	"eslint",
	"prettier",
	"husky",
	"lint-staged",
	"@typescript-eslint/parser",
	"@typescript-eslint/eslint-plugin",
}

// NewDependencySet builds the complete dependency set for a framework,
// every entry populated with its pinned default constraint. For fastify the
// companion plugin list is a policy choice supplied by the caller.
func NewDependencySet(fw Framework, fastifyPlugins []string) *DependencySet {
	ds := &DependencySet{
		Runtime: make(map[string]string),
		Dev:     make(map[string]string),
	}

	for _, name := range commonDevPackages {
		ds.Dev[name] = PinnedDefault(name)
	}

	switch fw {
	case FrameworkFastify:
		ds.Runtime["fastify"] = PinnedDefault("fastify")
		for _, plugin := range fastifyPlugins {
			ds.Runtime[plugin] = PinnedDefault(plugin)
		}
	default:
		ds.Runtime["express"] = PinnedDefault("express")
		ds.Dev["@types/express"] = PinnedDefault("@types/express")
	}

	return ds
}

// Names returns all declared package names, runtime first, each group
// sorted. The order is what the version resolver iterates in.
func (ds *DependencySet) Names() []string {
	runtime := make([]string, 0, len(ds.Runtime))
	for name := range ds.Runtime {
		runtime = append(runtime, name)
	}
	sort.Strings(runtime)

	dev := make([]string, 0, len(ds.Dev))
	for name := range ds.Dev {
		dev = append(dev, name)
	}
	sort.Strings(dev)

	return append(runtime, dev...)
}

// ApplyResolved overlays resolved version constraints onto the set. Names
// missing from resolved keep their pinned default.
func (ds *DependencySet) ApplyResolved(resolved map[string]string) {
	for name, version := range resolved {
		if version == "" {
			continue
		}
		if _, ok := ds.Runtime[name]; ok {
			ds.Runtime[name] = version
		}
		if _, ok := ds.Dev[name]; ok {
			ds.Dev[name] = version
		}
	}
}
