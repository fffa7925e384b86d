// Package docs registers the Swagger document served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the store can serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/lists": {
            "get": {
                "description": "Returns the whole collection in insertion order.",
                "produces": ["application/json"],
                "tags": ["Lists"],
                "summary": "List all to-do lists",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.listResp"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "post": {
                "description": "Stores a new list. A missing id is generated by the server.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Lists"],
                "summary": "Create a to-do list",
                "parameters": [
                    {"description": "List", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.listReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Conflict - id already exists", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/lists/{id}": {
            "get": {
                "description": "Returns a single list with its tasks.",
                "produces": ["application/json"],
                "tags": ["Lists"],
                "summary": "Get a to-do list",
                "parameters": [
                    {"type": "string", "description": "List ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "put": {
                "description": "Overwrites the list stored under id with the request body.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Lists"],
                "summary": "Replace a to-do list",
                "parameters": [
                    {"type": "string", "description": "List ID", "name": "id", "in": "path", "required": true},
                    {"description": "Full list", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.listReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.listResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.taskReq": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "completed": {"type": "boolean"}
            }
        },
        "http.listReq": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/http.taskReq"}}
            }
        },
        "http.taskResp": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "completed": {"type": "boolean"}
            }
        },
        "http.listResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/http.taskResp"}}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Todolist Sync Store API",
	Description:      "REST collection resource holding to-do lists.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
