// Package swagger registers the generated OpenAPI spec with swag.
// Regenerate with: swag init -g cmd/api/main.go -o docs/swagger
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@campusmart.example"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign up",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignUpRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/SessionResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign out",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/auth/session": {
            "get": {
                "tags": ["auth"],
                "summary": "Session state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SessionStateResponse"}}
                }
            }
        },
        "/listings": {
            "get": {
                "tags": ["listings"],
                "summary": "List campus listings",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "category", "in": "query", "type": "string"},
                    {"name": "price_bucket", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ListingsResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["listings"],
                "summary": "Post a listing",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateListingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ListingResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/listings/image": {
            "post": {
                "tags": ["listings"],
                "summary": "Upload a listing image",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "image", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ImageUploadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/listings/{id}/sold": {
            "patch": {
                "tags": ["listings"],
                "summary": "Set sold state",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetSoldRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SetSoldResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/listings/{id}/contact": {
            "get": {
                "tags": ["listings"],
                "summary": "Contact seller",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ContactResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "SignUpRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "alice@iitd.ac.in"},
                "password": {"type": "string", "example": "s3cret-pass"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "alice@iitd.ac.in"},
                "password": {"type": "string", "example": "s3cret-pass"}
            }
        },
        "SessionResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "alice@iitd.ac.in"},
                "campus": {"type": "string", "example": "iitd-ac-in"},
                "campus_name": {"type": "string", "example": "IIT Delhi"}
            }
        },
        "SessionStateResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean", "example": true},
                "email": {"type": "string", "example": "alice@iitd.ac.in"},
                "campus": {"type": "string", "example": "iitd-ac-in"},
                "campus_name": {"type": "string", "example": "IIT Delhi"}
            }
        },
        "CreateListingRequest": {
            "type": "object",
            "required": ["title", "description", "category", "condition", "seller_name", "contact"],
            "properties": {
                "title": {"type": "string", "example": "Engineering Mechanics Textbook"},
                "description": {"type": "string", "example": "Barely used, 3rd edition"},
                "price": {"type": "integer", "example": 450},
                "category": {"type": "string", "example": "Textbooks"},
                "condition": {"type": "string", "example": "Good"},
                "seller_name": {"type": "string", "example": "Alice"},
                "contact": {"type": "string", "example": "+919876543210"},
                "image": {"type": "string", "example": "listings/7f3b.jpg"}
            }
        },
        "ListingResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "title": {"type": "string", "example": "Engineering Mechanics Textbook"},
                "description": {"type": "string", "example": "Barely used, 3rd edition"},
                "price": {"type": "integer", "example": 450},
                "category": {"type": "string", "example": "Textbooks"},
                "condition": {"type": "string", "example": "Good"},
                "seller_name": {"type": "string", "example": "Alice"},
                "image": {"type": "string", "example": "/placeholder.svg"},
                "sold": {"type": "boolean", "example": false},
                "age": {"type": "string", "example": "3 days ago"},
                "own": {"type": "boolean", "example": false},
                "created_at": {"type": "string", "example": "2024-01-15T10:30:00Z"}
            }
        },
        "ListingsResponse": {
            "type": "object",
            "properties": {
                "listings": {"type": "array", "items": {"$ref": "#/definitions/ListingResponse"}},
                "total": {"type": "integer", "example": 12}
            }
        },
        "SetSoldRequest": {
            "type": "object",
            "required": ["sold"],
            "properties": {
                "sold": {"type": "boolean", "example": true}
            }
        },
        "SetSoldResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "123e4567-e89b-12d3-a456-426614174000"},
                "sold": {"type": "boolean", "example": true}
            }
        },
        "ContactResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string", "example": "https://wa.me/919876543210?text=..."}
            }
        },
        "ImageUploadResponse": {
            "type": "object",
            "properties": {
                "image_ref": {"type": "string", "example": "listings/7f3b1c2d.jpg"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "listing not found"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Campus Mart API",
	Description:      "Campus-restricted student marketplace.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
