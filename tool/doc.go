// Package tool provides the tool registry and the built-in tools of the
// drafting agent.
//
// A [Registry] holds a fixed set of callable actions with declared JSON
// Schema signatures. Handlers return result content or an error; handler
// errors are captured in the [lexdraft.ToolResult] as error content rather
// than propagated, so the model can see the failure and react to it in the
// next turn.
//
// # Registering Tools
//
//	type WeatherArgs struct {
//	    Location string `json:"location" desc:"City name" required:"true"`
//	}
//
//	registry := tool.NewRegistry()
//	tool.MustRegisterFunc(registry, "get_weather", "Get current weather",
//	    func(ctx context.Context, args WeatherArgs) (string, error) {
//	        return lookup(args.Location)
//	    },
//	)
//
// # Built-in Tools
//
// [NewSearchTool] performs web searches through the Tavily API and
// [NewDocumentTool] renders content into a Word document. Both are thin
// glue over external collaborators; the agent core only sees their
// registry signatures.
package tool
