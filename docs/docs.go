// Package docs holds the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.registerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.envelope"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.envelope"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Logout",
                "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/handler.tokenRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}}
            }
        },
        "/auth/session/check": {
            "post": {
                "tags": ["auth"],
                "summary": "Check a session token",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.tokenRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/auth/session/active": {
            "get": {
                "tags": ["auth"],
                "summary": "Most recent session (desktop mode)",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.activeSessionResponse"}}}
            }
        },
        "/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Get a user profile",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/members": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["members"],
                "summary": "List members",
                "parameters": [{"type": "string", "name": "search", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.membersResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["members"],
                "summary": "Add a member",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.memberRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.memberCreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/members/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["members"],
                "summary": "Update a member",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.memberRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["members"],
                "summary": "Delete a member",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}}
            }
        },
        "/membership-types": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["members"],
                "summary": "List membership types",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.membershipTypesResponse"}}}
            }
        },
        "/payments": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["payments"],
                "summary": "List payments",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "order", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.paymentsResponse"}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["payments"],
                "summary": "Record a payment",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.paymentRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.paymentCreatedResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.envelope"}}
                }
            }
        },
        "/payments/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["payments"],
                "summary": "Delete a payment",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.envelope"}}}
            }
        },
        "/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["dashboard"],
                "summary": "Dashboard summary",
                "parameters": [{"type": "string", "name": "date", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.dashboardResponse"}}}
            }
        }
    },
    "definitions": {
        "handler.envelope": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}}
        },
        "handler.registerRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.registerResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "userId": {"type": "integer"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.loginResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "user": {"$ref": "#/definitions/domain.User"}, "sessionToken": {"type": "string"}}
        },
        "handler.tokenRequest": {
            "type": "object",
            "properties": {"token": {"type": "string"}}
        },
        "handler.userResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "user": {"$ref": "#/definitions/domain.User"}}
        },
        "handler.activeSessionResponse": {
            "type": "object",
            "properties": {"userId": {"type": "integer"}, "sessionToken": {"type": "string"}}
        },
        "handler.memberRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"}, "address": {"type": "string"},
                "membership_type_id": {"type": "integer"}, "membership_start": {"type": "string"}, "membership_end": {"type": "string"}, "notes": {"type": "string"}
            }
        },
        "handler.membersResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "members": {"type": "array", "items": {"$ref": "#/definitions/domain.Member"}}}
        },
        "handler.membershipTypesResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "membershipTypes": {"type": "array", "items": {"$ref": "#/definitions/domain.MembershipType"}}}
        },
        "handler.memberCreatedResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "memberId": {"type": "integer"}}
        },
        "handler.paymentRequest": {
            "type": "object",
            "required": ["member_id"],
            "properties": {"member_id": {"type": "integer"}, "amount": {"type": "number"}, "payment_type": {"type": "string"}}
        },
        "handler.paymentsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}, "message": {"type": "string"}, "payments": {"type": "array", "items": {"$ref": "#/definitions/domain.Payment"}},
                "total": {"type": "integer"}, "page": {"type": "integer"}, "limit": {"type": "integer"}, "total_pages": {"type": "integer"}
            }
        },
        "handler.paymentCreatedResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "paymentId": {"type": "integer"}}
        },
        "handler.dashboardResponse": {
            "type": "object",
            "properties": {"success": {"type": "boolean"}, "message": {"type": "string"}, "summary": {"$ref": "#/definitions/domain.DashboardSummary"}}
        },
        "domain.User": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}}
        },
        "domain.MembershipType": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}, "price": {"type": "number"}, "duration_days": {"type": "integer"}}
        },
        "domain.Member": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}, "phone": {"type": "string"}, "address": {"type": "string"},
                "membership_type_id": {"type": "integer"}, "membership_start": {"type": "string", "format": "date", "x-nullable": true},
                "membership_end": {"type": "string", "format": "date", "x-nullable": true}, "notes": {"type": "string"}
            }
        },
        "domain.Payment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "member_id": {"type": "integer"}, "member_name": {"type": "string"},
                "date": {"type": "string", "format": "date"}, "amount": {"type": "number"}, "payment_type": {"type": "string"}
            }
        },
        "domain.MonthlyRevenue": {
            "type": "object",
            "properties": {"month": {"type": "string"}, "revenue": {"type": "number"}}
        },
        "domain.DashboardSummary": {
            "type": "object",
            "properties": {
                "as_of": {"type": "string", "format": "date"}, "total_members": {"type": "integer"}, "overdue_members": {"type": "integer"},
                "expiring_soon_members": {"type": "integer"},
                "projected_revenue": {"type": "array", "items": {"$ref": "#/definitions/domain.MonthlyRevenue"}},
                "collected_revenue": {"type": "array", "items": {"$ref": "#/definitions/domain.MonthlyRevenue"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Gym Manager API",
	Description:      "Members, membership types, payments and session-based staff login.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
