package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerProjectsResource(srv, svc)
	registerLogbookResource(srv, svc)
	registerFilterTemplate(srv, svc)
	registerTaskTemplate(srv, svc)
}

func registerProjectsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"zentask://projects",
		"Projects",
		mcp.WithResourceDescription("The inbox and every project with sections and open task counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		projects, err := svc.ListProjects()
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"projects": projects,
			"count":    len(projects),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerLogbookResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"zentask://logbook",
		"Logbook",
		mcp.WithResourceDescription("The activity log, newest first."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		entries, err := svc.Logbook(0)
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"entries":  entries,
			"count":    len(entries),
			"progress": svc.App.WeeklyProgress(),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerFilterTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"zentask://filters/{name}",
		"Filtered Tasks",
		mcp.WithTemplateDescription("Tasks visible under inbox, today, upcoming, completed or a project id."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArg(request.Params.Arguments, "name")
		if name == "" {
			return nil, fmt.Errorf("filter name is required")
		}
		tasks, err := svc.ListTasks(name, "")
		if err != nil {
			return nil, err
		}
		payload := map[string]any{
			"filter": name,
			"count":  len(tasks),
			"tasks":  tasks,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerTaskTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"zentask://tasks/{id}",
		"Task Details",
		mcp.WithTemplateDescription("Detailed information about a single task."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments, "id")
		if id == "" {
			return nil, fmt.Errorf("task id is required")
		}
		dto, err := svc.TaskByID(id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"task": dto})
	})
}

// templateArg reads a URI template variable, which the server may hand over
// as a string or a one-element list.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
