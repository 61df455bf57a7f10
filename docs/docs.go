// Package docs registers the Swagger document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/departments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["departments"],
                "summary": "List departments",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive match on code or name", "name": "search", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Invalid query parameters", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/departments/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["departments"],
                "summary": "Get department details",
                "parameters": [{"type": "string", "description": "Department code", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Department not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["departments"],
                "summary": "Delete a department",
                "parameters": [{"type": "string", "description": "Department code", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Department deleted"},
                    "404": {"description": "Department not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List courses",
                "parameters": [
                    {"type": "string", "description": "Exact course code", "name": "code", "in": "query"},
                    {"type": "string", "description": "Case-insensitive match on code", "name": "codeContains", "in": "query"},
                    {"type": "string", "description": "Case-insensitive match on title", "name": "titleContains", "in": "query"},
                    {"type": "string", "description": "Exact department code", "name": "departmentCode", "in": "query"},
                    {"type": "string", "description": "Case-insensitive match on code or title", "name": "search", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/courses/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Get course details",
                "parameters": [{"type": "string", "description": "Course code", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Delete a course",
                "parameters": [{"type": "string", "description": "Course code", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Course deleted"},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/professors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["professors"],
                "summary": "List professors",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive match on name", "name": "nameContains", "in": "query"},
                    {"type": "string", "description": "Exact department code", "name": "departmentCode", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/professors/{idOrSlug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["professors"],
                "summary": "Get professor details",
                "parameters": [{"type": "string", "description": "Professor id or slug", "name": "idOrSlug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Professor not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/professors/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["professors"],
                "summary": "Delete a professor",
                "parameters": [{"type": "integer", "format": "int64", "description": "Professor ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Professor deleted"},
                    "404": {"description": "Professor not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/reviews": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "List reviews",
                "parameters": [
                    {"type": "string", "description": "Exact course code", "name": "courseCode", "in": "query"},
                    {"type": "integer", "description": "Professor ID", "name": "professorId", "in": "query"},
                    {"type": "string", "description": "Free-text search", "name": "search", "in": "query"},
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Page size", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Submit a review",
                "parameters": [{"description": "Review", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateReviewRequest"}}],
                "responses": {
                    "201": {"description": "Review created", "schema": {"$ref": "#/definitions/dto.CreateReviewResponse"}},
                    "400": {"description": "Malformed request body", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "422": {"description": "Validation failed", "schema": {"$ref": "#/definitions/dto.CreateReviewResponse"}}
                }
            }
        },
        "/reviews/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Get a review",
                "parameters": [{"type": "integer", "format": "int64", "description": "Review ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Review not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["reviews"],
                "summary": "Delete a review",
                "parameters": [{"type": "integer", "format": "int64", "description": "Review ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Review deleted"},
                    "404": {"description": "Review not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "RES_001"},
                "message": {"type": "string"},
                "field": {"type": "string"},
                "severity": {"type": "string", "example": "ERROR"},
                "details": {}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.CreateReviewRequest": {
            "type": "object",
            "required": ["courseCode", "rating", "workload", "difficulty"],
            "properties": {
                "courseCode": {"type": "string", "example": "STAT 311"},
                "professorId": {"type": "integer", "example": 2},
                "rating": {"type": "integer", "example": 5},
                "workload": {"type": "integer", "example": 2},
                "difficulty": {"type": "integer", "example": 2},
                "comment": {"type": "string", "example": "Excellent professor!"}
            }
        },
        "dto.CreateReviewResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "review": {"$ref": "#/definitions/dto.ReviewResponse"}
            }
        },
        "dto.ReviewResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 12},
                "courseId": {"type": "integer", "example": 4},
                "courseCode": {"type": "string", "example": "STAT 311"},
                "professorId": {"type": "integer", "example": 2},
                "professorName": {"type": "string", "example": "Jon Wellner"},
                "rating": {"type": "integer", "example": 5},
                "workload": {"type": "integer", "example": 2},
                "difficulty": {"type": "integer", "example": 2},
                "comment": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "HuskyDen API",
	Description:      "Course and professor reviews for the University of Washington. GraphQL is served at /graphql.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
