package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"jobhunt/internal/delivery/http/dto"
	"jobhunt/internal/search"
	"jobhunt/internal/usecase"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var criteriaArgs = map[string]string{
	"title":      "Case-insensitive substring of the job title",
	"location":   "Case-insensitive substring of the job location",
	"type":       "Case-insensitive substring of the employment type",
	"salary_min": "Substring matched against the salary text",
	"salary_max": "Substring matched against the salary text",
	"experience": "Experience level tag; accepted but not filtered on",
	"skills":     "Comma-separated skills; every skill must appear in description or requirements",
}

func searchJobsProperties() map[string]interface{} {
	props := map[string]interface{}{}
	for name, desc := range criteriaArgs {
		props[name] = map[string]interface{}{"type": "string", "description": desc}
	}
	props["experience"].(map[string]interface{})["enum"] = search.ExperienceLevels
	props["salary_from"] = map[string]interface{}{"type": "integer", "description": "Lower numeric salary bound parsed from the salary text"}
	props["salary_to"] = map[string]interface{}{"type": "integer", "description": "Upper numeric salary bound parsed from the salary text"}
	return props
}

func registerSearchJobs(s *server.MCPServer, uc usecase.JobSearchUsecase) {
	tool := mcp.NewTool("search_jobs",
		mcp.WithDescription("Search active job postings; results are ordered newest first"),
	)

	tool.InputSchema = mcp.ToolInputSchema{Type: "object", Properties: searchJobsProperties()}

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, ok := request.Params.Arguments.(map[string]interface{})
		if !ok && request.Params.Arguments != nil {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		items, err := uc.Search(ctx, criteriaFromArgs(args))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to search jobs: %v", err)), nil
		}
		return jsonResult(dto.NewJobListResponse(items))
	})
}

func registerRecommendJobs(s *server.MCPServer, uc usecase.JobRecommendationUsecase) {
	tool := mcp.NewTool("recommend_jobs",
		mcp.WithDescription("Recommend active jobs for a user by overlap between profile skills and job text"),
	)
	tool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"user_id": map[string]interface{}{"type": "string", "description": "UUID of the job seeker"},
			"limit":   map[string]interface{}{"type": "integer", "description": "Max recommendations (default: 5)"},
		},
		Required: []string{"user_id"},
	}

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		raw, _ := args["user_id"].(string)
		userID, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return mcp.NewToolResultError("user_id must be a UUID"), nil
		}
		limit := 0
		if v, ok := args["limit"].(float64); ok && v > 0 {
			limit = int(v)
		}

		items, err := uc.GetRecommendations(ctx, userID, limit)
		if errors.Is(err, usecase.ErrUserNotFound) {
			return mcp.NewToolResultError("user not found"), nil
		}
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to recommend jobs: %v", err)), nil
		}
		return jsonResult(dto.NewRecommendationListResponse(items))
	})
}

func criteriaFromArgs(args map[string]interface{}) search.Criteria {
	str := func(key string) string {
		v, _ := args[key].(string)
		return strings.TrimSpace(v)
	}
	bound := func(key string) *int64 {
		v, ok := args[key].(float64)
		if !ok || v < 0 {
			return nil
		}
		n := int64(v)
		return &n
	}

	return search.Criteria{
		Title:           str("title"),
		Location:        str("location"),
		JobType:         str("type"),
		SalaryMin:       str("salary_min"),
		SalaryMax:       str("salary_max"),
		ExperienceLevel: str("experience"),
		Skills:          str("skills"),
		SalaryFrom:      bound("salary_from"),
		SalaryTo:        bound("salary_to"),
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
