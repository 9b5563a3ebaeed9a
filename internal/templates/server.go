package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/jakoblorz/create-node-api/internal/models"
)

// DefaultPort is the port the generated server listens on
const DefaultPort = 3000

// ServerData is the data every source template is rendered with
type ServerData struct {
	Name string
	Port int
}

const expressServerTemplate = `import express from "express"

const app = express()
const port = {{ .Port }}

app.get("/", (_req, res) => {
  res.send("Hello, World!")
})

app.listen(port, () => {
  console.log("{{ .Name | trim }} listening on port " + port)
})
`

const fastifyServerTemplate = `import Fastify from "fastify"

const app = Fastify()
const port = {{ .Port }}

app.get("/hello", async () => {
  return { message: "Hello, World!" }
})

const start = async () => {
  try {
    await app.listen({ port })
    console.log("{{ .Name | trim }} listening on port " + port)
  } catch (err) {
    app.log.error(err)
    process.exit(1)
  }
}

start()
`

const testStubTemplate = `describe("{{ .Name | trim }} server", () => {
  it.todo("responds with a greeting")
})
`

// ServerSource renders the server entry point for the chosen framework
func ServerSource(fw models.Framework, name string) (string, error) {
	switch fw {
	case models.FrameworkExpress:
		return render("server", expressServerTemplate, ServerData{Name: name, Port: DefaultPort})
	case models.FrameworkFastify:
		return render("server", fastifyServerTemplate, ServerData{Name: name, Port: DefaultPort})
	default:
		return "", fmt.Errorf("unknown framework: %s", fw)
	}
}

// TestStubSource renders the placeholder test file. It carries no
// assertions; it only seeds the location end users add tests to.
func TestStubSource(name string) (string, error) {
	return render("test", testStubTemplate, ServerData{Name: name, Port: DefaultPort})
}

func render(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.FuncMap()).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}

	return buf.String(), nil
}
