package mcpguide

import "context"

// Topic is a documentation topic key.
type Topic string

// The closed set of documented topics.
const (
	TopicOverview    Topic = "overview"
	TopicTools       Topic = "tools"
	TopicResources   Topic = "resources"
	TopicServerSetup Topic = "server_setup"
)

// TopicNotFound is the fixed sentinel returned for unrecognized topics.
const TopicNotFound = "Topic not found. Available topics: overview, tools, resources, server_setup"

const docOverview = `# Model Context Protocol (MCP)

MCP is an open protocol that standardizes how applications provide context to
large language models. An MCP server exposes capabilities (tools, resources,
prompts) over a JSON-RPC connection; an MCP client (editor, agent runtime,
chat application) discovers those capabilities and invokes them on behalf of
the model.

Key properties:
- Servers declare their capabilities up front; clients never guess.
- Every tool carries a JSON Schema describing its input, so the model can
  construct well-formed calls.
- Transports are pluggable. The common one is stdio: the client launches the
  server as a subprocess and frames JSON-RPC messages over stdin/stdout.

A server can be as small as a single binary exposing one tool. State, if any,
lives behind the server; the protocol itself is request/response.`

const docTools = `# MCP Tools

A tool is a named, schema-described operation the server exposes to a calling
model. The client lists tools with tools/list and invokes them with
tools/call.

Each tool declaration has:
- name: unique within the server (e.g. "validate_mcp_config")
- description: tells the model when and why to use the tool
- inputSchema: a JSON Schema object describing the argument shape

A tools/call response is an envelope: a list of typed content blocks (usually
one text block) plus an optional isError flag. Handler-level failures (e.g.
"this configuration is invalid") are reported in-band with isError set, so the
model can read the message and correct itself. Protocol-level failures (e.g.
calling a tool that does not exist) are JSON-RPC errors, not text responses.`

const docResources = `# MCP Resources

A resource is readable content addressed by a URI (e.g. "mcpguide://docs/overview").
Where tools are model-invoked operations, resources are application-driven
context: the client decides what to read and when to put it in front of the
model.

Each resource declaration has a uri, name, optional description, and mimeType.
The client lists resources with resources/list and reads one with
resources/read, which returns the contents as text or binary data tagged with
the URI and MIME type.

Use resources for reference material the model should be able to pull in whole
(documentation pages, file contents, schemas); use tools when the server must
compute something from arguments.`

const docServerSetup = `# Configuring MCP servers

Clients discover servers through an "mcpServers" mapping from server name to
an entry describing how to reach it. Two shapes exist:

A local entry tells the client to launch the server as a subprocess:

    {
      "mcpServers": {
        "mcpguide": {
          "command": "mcpguide",
          "args": ["serve"]
        }
      }
    }

A remote entry points the client at an already-running server by URL:

    {
      "mcpServers": {
        "shared-guide": {
          "url": "http://localhost:8081/mcp"
        }
      }
    }

The two shapes are mutually exclusive and discriminated by the presence of
"url". A local entry needs "command" (string) and "args" (array of strings);
a remote entry needs "url" (string). The validate_mcp_config tool checks a
document against exactly these rules.`

// docsTable is the static topic → prose mapping. Content is fixed at compile
// time; Lookup never computes anything.
var docsTable = map[Topic]string{
	TopicOverview:    docOverview,
	TopicTools:       docTools,
	TopicResources:   docResources,
	TopicServerSetup: docServerSetup,
}

// Topics returns the recognized topic keys in stable order.
func Topics() []Topic {
	return []Topic{TopicOverview, TopicTools, TopicResources, TopicServerSetup}
}

// Lookup returns the documentation text for a topic, or the TopicNotFound
// sentinel for unrecognized keys.
func Lookup(topic Topic) string {
	if text, ok := docsTable[topic]; ok {
		return text
	}
	return TopicNotFound
}

// DocsArgs is the input shape of the documentation lookup tool.
type DocsArgs struct {
	Topic string `json:"topic" description:"Documentation topic to retrieve" enum:"overview,tools,resources,server_setup"`
}

// NewDocsTool builds the documentation lookup tool.
func NewDocsTool() (Tool, error) {
	return NewTool("get_mcp_docs",
		"Get documentation about Model Context Protocol concepts (overview, tools, resources, server_setup)",
		func(_ context.Context, args DocsArgs) (Result, error) {
			// Unknown topics degrade to the sentinel text, not to a failure.
			return TextResult(Lookup(Topic(args.Topic))), nil
		})
}
