package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/task"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerCreateTaskTool(srv, svc)
	registerToggleTaskTool(srv, svc)
	registerDeleteTaskTool(srv, svc)
	registerUpdateTaskTool(srv, svc)
	registerMoveTaskTool(srv, svc)
	registerListTasksTool(srv, svc)
	registerListProjectsTool(srv, svc)
	registerSearchTasksTool(srv, svc)
	registerGetTaskTool(srv, svc)
	registerCreateProjectTool(srv, svc)
	registerCreateSectionTool(srv, svc)
	registerLogbookTool(srv, svc)
}

func registerCreateTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_task",
		mcp.WithDescription("Create a task at the end of its project or section."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title."),
		),
		mcp.WithString("project",
			mcp.Description("Project id; defaults to the active project or the inbox."),
		),
		mcp.WithString("section",
			mcp.Description("Section id within the project."),
		),
		mcp.WithString("priority",
			mcp.Description("Task priority."),
			mcp.Enum("low", "medium", "high"),
		),
		mcp.WithString("deadline",
			mcp.Description("Deadline as an ISO-8601 date or date-time."),
		),
		mcp.WithString("working",
			mcp.Description("Working date as an ISO-8601 date or date-time."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title    string `json:"title"`
			Project  string `json:"project"`
			Section  string `json:"section"`
			Priority string `json:"priority"`
			Deadline string `json:"deadline"`
			Working  string `json:"working"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		in := app.NewTask{
			Title:        args.Title,
			ProjectID:    strings.TrimSpace(args.Project),
			SectionID:    strings.TrimSpace(args.Section),
			DeadlineDate: strings.TrimSpace(args.Deadline),
			WorkingDate:  strings.TrimSpace(args.Working),
		}
		if strings.TrimSpace(args.Priority) != "" {
			p, err := task.ParsePriority(args.Priority)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			in.Priority = p
		}

		dto, err := svc.CreateTask(in)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_task",
		mcp.WithDescription("Mark a task completed, or reopen a completed task."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to toggle."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.ToggleTask(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_task",
		mcp.WithDescription("Delete a task permanently."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.DeleteTask(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": dto})
	})
}

func registerUpdateTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_task",
		mcp.WithDescription("Change fields of a task. Omitted fields are left alone; an empty string clears dates, notes and color."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to update."),
		),
		mcp.WithString("title", mcp.Description("New title.")),
		mcp.WithString("priority", mcp.Description("New priority."), mcp.Enum("low", "medium", "high")),
		mcp.WithString("project", mcp.Description("Project id; the task joins the end of that project.")),
		mcp.WithString("deadline", mcp.Description("Deadline as an ISO-8601 date or date-time.")),
		mcp.WithString("working", mcp.Description("Working date as an ISO-8601 date or date-time.")),
		mcp.WithString("notes", mcp.Description("Markdown notes.")),
		mcp.WithString("repeat", mcp.Description("Recurrence hint."), mcp.Enum("none", "daily", "weekly", "monthly", "yearly")),
		mcp.WithString("color", mcp.Description("Hex color override.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		args := request.GetArguments()
		str := func(name string) *string {
			v, ok := args[name].(string)
			if !ok {
				return nil
			}
			return &v
		}

		u := app.TaskUpdate{
			Title:        str("title"),
			ProjectID:    str("project"),
			DeadlineDate: str("deadline"),
			WorkingDate:  str("working"),
			Notes:        str("notes"),
			Color:        str("color"),
		}
		if v := str("priority"); v != nil {
			p, err := task.ParsePriority(*v)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			u.Priority = &p
		}
		if v := str("repeat"); v != nil {
			r, err := task.ParseRepeat(*v)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			u.Repeat = &r
		}

		dto, err := svc.UpdateTask(id, u)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMoveTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_task",
		mcp.WithDescription("Move a task to a position within a project section. Positions count open tasks only."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to move."),
		),
		mcp.WithString("project", mcp.Description("Destination project id; defaults to the task's project.")),
		mcp.WithString("section", mcp.Description("Destination section id; empty for the unsectioned list.")),
		mcp.WithNumber("index", mcp.Description("Zero-based destination position, clamped to the list.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		project := request.GetString("project", "")
		section := request.GetString("section", "")
		index := request.GetInt("index", 0)

		dto, err := svc.MoveTask(id, strings.TrimSpace(project), strings.TrimSpace(section), index)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListTasksTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tasks",
		mcp.WithDescription("List the tasks visible under a filter, in display order."),
		mcp.WithString("filter",
			mcp.Description("inbox, today, upcoming, completed, or a project id. Defaults to the active filter."),
		),
		mcp.WithString("priority",
			mcp.Description("Only tasks with this priority."),
			mcp.Enum("low", "medium", "high"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := request.GetString("filter", "")
		priority := request.GetString("priority", "")
		tasks, err := svc.ListTasks(filter, priority)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"filter": filter,
			"tasks":  tasks,
			"count":  len(tasks),
		})
	})
}

func registerListProjectsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_projects",
		mcp.WithDescription("List the inbox and every project with sections and open counts."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projects, err := svc.ListProjects()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"projects": projects,
			"count":    len(projects),
		})
	})
}

func registerSearchTasksTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_tasks",
		mcp.WithDescription("Search task titles and notes."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive text to look for."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default 20)."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)
		results, err := svc.SearchTasks(query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerGetTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_task",
		mcp.WithDescription("Fetch a single task by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.TaskByID(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCreateProjectTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_project",
		mcp.WithDescription("Create a project with a random color."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Project name.")),
		mcp.WithString("icon", mcp.Description("Emoji icon.")),
		mcp.WithString("description", mcp.Description("Short description.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		p, err := svc.CreateProject(name, request.GetString("icon", ""), request.GetString("description", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(p)
	})
}

func registerCreateSectionTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_section",
		mcp.WithDescription("Append a section to a project or the inbox."),
		mcp.WithString("project", mcp.Required(), mcp.Description("Project id, or inbox.")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Section title.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		project, err := request.RequireString("project")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		title, err := request.RequireString("title")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		sec, err := svc.CreateSection(project, title)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sec)
	})
}

func registerLogbookTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_logbook",
		mcp.WithDescription("Recent task activity, newest first, with weekly goal progress."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of entries (default 20).")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := svc.Logbook(request.GetInt("limit", 20))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries":  entries,
			"count":    len(entries),
			"progress": svc.App.WeeklyProgress(),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
