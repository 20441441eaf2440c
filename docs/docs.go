// Package docs holds the generated swagger spec registered for the
// /docs UI. Regenerate with `swag init -g cmd/api/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {"name": "MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search players or parents with their household",
                "parameters": [
                    {"type": "string", "enum": ["player", "parent"], "name": "type", "in": "query", "required": true},
                    {"type": "string", "name": "year", "in": "query"},
                    {"type": "string", "name": "keyword", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/search-team": {
            "get": {
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Search teams",
                "parameters": [
                    {"type": "string", "name": "keyword", "in": "query"},
                    {"type": "string", "name": "year", "in": "query"},
                    {"type": "string", "name": "level", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/team-player": {
            "get": {
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Team roster ordered by grade",
                "parameters": [
                    {"type": "string", "name": "team_id", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/team-inrole": {
            "get": {
                "produces": ["application/json"],
                "tags": ["teams"],
                "summary": "Team staff list",
                "parameters": [
                    {"type": "string", "name": "team_id", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/search-game": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Search league games",
                "parameters": [
                    {"type": "string", "name": "keyword", "in": "query"},
                    {"type": "string", "name": "season", "in": "query"},
                    {"type": "string", "name": "level", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/umpire-ranking": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Umpire attendance ranking",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/standings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["games"],
                "summary": "Team standings",
                "parameters": [
                    {"type": "string", "name": "season", "in": "query", "required": true},
                    {"type": "string", "name": "round", "in": "query", "required": true},
                    {"type": "string", "name": "level", "in": "query", "required": true},
                    {"type": "string", "name": "group", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/admin/preview-excel": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Preview a spreadsheet upload",
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "enum": ["player", "parent", "relative"], "name": "type", "in": "formData"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/admin/confirm-import": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Confirm a previewed import",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/admin/delete-player/{player_id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Delete a player",
                "parameters": [
                    {"type": "string", "name": "player_id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Leaguedesk API",
	Description:      "Youth-baseball league administration API: player/parent/household search, team rosters, game schedules, standings, and staged spreadsheet imports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
