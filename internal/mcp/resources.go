package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResources(server *mcp.Server, astrology AstrologyReader, numbers NumerologyReader) {
	server.AddResource(&mcp.Resource{
		URI:         "zodiac://signs",
		Name:        "zodiac-signs",
		Description: "The twelve zodiac signs in ecliptic order with ranges, traits and compatibility lists",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if astrology == nil {
			return nil, fmt.Errorf("astrology service unavailable")
		}
		return jsonResource(req.Params.URI, signCatalogOutput{Signs: astrology.Signs(ctx)})
	})

	server.AddResource(&mcp.Resource{
		URI:         "zodiac://aspects",
		Name:        "zodiac-aspects",
		Description: "Major aspects with their angles and nature",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if astrology == nil {
			return nil, fmt.Errorf("astrology service unavailable")
		}
		return jsonResource(req.Params.URI, aspectCatalogOutput{Aspects: astrology.Aspects(ctx)})
	})

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "numerology://life-numbers/{number}",
		Name:        "life-number-profile",
		Description: "Interpretation profile for a life number (1-9, 11, 22, 33)",
		MIMEType:    "application/json",
	}, func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if numbers == nil {
			return nil, fmt.Errorf("numerology service unavailable")
		}

		parsed, err := url.Parse(req.Params.URI)
		if err != nil {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		if parsed.Scheme != "numerology" || parsed.Host != "life-numbers" {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}

		raw := strings.Trim(strings.TrimSpace(parsed.Path), "/")
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid life number: %s", raw)
		}
		profile := numbers.LookupLifeNumberProfile(ctx, n)
		if profile == nil {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return jsonResource(req.Params.URI, profile)
	})
}

func jsonResource(uri string, payload any) (*mcp.ReadResourceResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(body),
		}},
	}, nil
}
