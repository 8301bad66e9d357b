package tools

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/xibo-tools/xibo-mcp/internal/envelope"
	"github.com/xibo-tools/xibo-mcp/internal/weather"
)

// registerGetWeather registers the get_weather tool.
func (ts *ToolServer) registerGetWeather() {
	tool := mcp.NewTool("get_weather",
		mcp.WithDescription("Get current weather conditions for coordinates, for use in signage widgets."),
		mcp.WithNumber("latitude",
			mcp.Required(),
			mcp.Description("Latitude in decimal degrees"),
		),
		mcp.WithNumber("longitude",
			mcp.Required(),
			mcp.Description("Longitude in decimal degrees"),
		),
	)

	ts.server.AddTool(tool, ts.handleGetWeather)
}

func (ts *ToolServer) handleGetWeather(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	latitude, ok := req.Params.Arguments["latitude"].(float64)
	if !ok {
		return result(envelope.InputFailure("latitude is required")), nil
	}
	longitude, ok := req.Params.Arguments["longitude"].(float64)
	if !ok {
		return result(envelope.InputFailure("longitude is required")), nil
	}

	report, err := ts.weather.CurrentConditions(ctx, latitude, longitude)
	if err != nil {
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OK(report)), nil
}

// registerGetWeatherByName registers the get_weather_by_name tool.
func (ts *ToolServer) registerGetWeatherByName() {
	tool := mcp.NewTool("get_weather_by_name",
		mcp.WithDescription("Get current weather conditions for a named place. The name is geocoded first; a name that matches nothing fails without a forecast call."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Place name, e.g. 'Berlin'"),
		),
	)

	ts.server.AddTool(tool, ts.handleGetWeatherByName)
}

func (ts *ToolServer) handleGetWeatherByName(ctx context.Context, req mcp.CallToolRequest) (res *mcp.CallToolResult, _ error) {
	defer guard(&res)

	name := stringArg(req, "name")
	if name == "" {
		return result(envelope.InputFailure("name is required")), nil
	}

	report, err := ts.weather.CurrentConditionsByName(ctx, name)
	if err != nil {
		if errors.Is(err, weather.ErrNoGeocodeResults) {
			return result(envelope.InputFailure("no location found for %q", name)), nil
		}
		return result(envelope.FromError(err)), nil
	}

	return result(envelope.OK(report)), nil
}
