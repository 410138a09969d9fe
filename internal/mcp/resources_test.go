package mcp

import (
	"context"
	"testing"
	"time"

	"divination/internal/domain"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestResourcesStaticAndTemplated(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, _, _ := testServer()
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	list, err := session.ListResources(ctx, &sdkmcp.ListResourcesParams{})
	if err != nil {
		t.Fatalf("list resources failed: %v", err)
	}
	if len(list.Resources) != 2 {
		t.Fatalf("expected 2 static resources, got %d", len(list.Resources))
	}

	templates, err := session.ListResourceTemplates(ctx, &sdkmcp.ListResourceTemplatesParams{})
	if err != nil {
		t.Fatalf("list templates failed: %v", err)
	}
	if len(templates.ResourceTemplates) != 1 {
		t.Fatalf("expected 1 resource template, got %d", len(templates.ResourceTemplates))
	}

	readRes, err := session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "zodiac://signs"})
	if err != nil {
		t.Fatalf("read signs resource failed: %v", err)
	}
	var signs signCatalogOutput
	if err := decodeResourceJSON(readRes, &signs); err != nil {
		t.Fatalf("decode signs failed: %v", err)
	}
	if len(signs.Signs) != 12 || signs.Signs[0].ID != "aries" {
		t.Fatalf("unexpected sign catalog: %d signs", len(signs.Signs))
	}

	readRes, err = session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "zodiac://aspects"})
	if err != nil {
		t.Fatalf("read aspects resource failed: %v", err)
	}
	var aspects aspectCatalogOutput
	if err := decodeResourceJSON(readRes, &aspects); err != nil {
		t.Fatalf("decode aspects failed: %v", err)
	}
	if len(aspects.Aspects) != 5 {
		t.Fatalf("expected 5 aspects, got %d", len(aspects.Aspects))
	}

	readRes, err = session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "numerology://life-numbers/22"})
	if err != nil {
		t.Fatalf("read life number resource failed: %v", err)
	}
	var profile domain.LifeNumberProfile
	if err := decodeResourceJSON(readRes, &profile); err != nil {
		t.Fatalf("decode life number failed: %v", err)
	}
	if profile.Number != 22 || !profile.IsMaster() {
		t.Fatalf("unexpected life number profile: %+v", profile)
	}
}

func TestUnknownLifeNumberResource(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	srv, _, _ := testServer()
	session, shutdown, err := connectInMemory(ctx, srv)
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer shutdown()
	defer session.Close()

	for _, uri := range []string{"numerology://life-numbers/10", "numerology://life-numbers/abc", "numerology://other/1"} {
		if _, err := session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: uri}); err == nil {
			t.Fatalf("expected error for %s", uri)
		}
	}
}
