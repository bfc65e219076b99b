// Package docs holds the swagger spec served at /swagger. Regenerate with
// `swag init -g cmd/server/main.go -o docs`.
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
        "/startup": {
            "get": {
                "produces": ["text/plain"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/boards": {
            "get": {
                "produces": ["application/json"],
                "summary": "List all boards, newest write first (summary projection, no state)",
                "responses": {"200": {"description": "{error:0, boards:[{id,boardName,createdAt,userName}]}"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Create or update a board keyed by (userName, boardName)",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "{error:0, isCreate:bool}"},
                    "400": {"description": "{error:-1, msg}"}
                }
            }
        },
        "/boards/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Board detail including the full grid state",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "{error:0, board, boardName, userName}"},
                    "400": {"description": "{error:-1, msg}"},
                    "404": {"description": "{error:1, msg}"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Replace a board's owner, name and state",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "{error:0}"},
                    "400": {"description": "{error:-1|-2, msg}"},
                    "404": {"description": "{error:1, msg}"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "summary": "Delete a board",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "{error:0}"},
                    "404": {"description": "{error:1, msg}"}
                }
            }
        },
        "/user/{name}": {
            "get": {
                "produces": ["application/json"],
                "summary": "List the named user's boards",
                "parameters": [{"name": "name", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "{error:0, userName, boards:[...]}"},
                    "400": {"description": "{error:-1, msg}"},
                    "404": {"description": "{error:1, msg}"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "summary": "Delete every board the named user owns",
                "parameters": [{"name": "name", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "{error:0}"},
                    "404": {"description": "{error:1, msg}"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Grid Board API",
	Description:      "Stores and retrieves fixed-size binary grid snapshots owned by named users.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
