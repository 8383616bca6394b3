// Package docs registers the generated OpenAPI document with swag so the
// swagger UI route can serve it. Regenerate with `swag init -g cmd/api/main.go`.
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
                "summary": "Register a new account"
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login"
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Logout",
                "security": [{"BearerAuth": []}]
            }
        },
        "/v1/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current profile",
                "security": [{"BearerAuth": []}]
            },
            "patch": {
                "tags": ["auth"],
                "summary": "Update current profile",
                "security": [{"BearerAuth": []}]
            }
        },
        "/v1/experts": {
            "get": {
                "tags": ["experts"],
                "summary": "List experts"
            }
        },
        "/v1/experts/{id}": {
            "get": {
                "tags": ["experts"],
                "summary": "Get an expert"
            }
        },
        "/v1/experts/{id}/availability": {
            "get": {
                "tags": ["experts"],
                "summary": "Weekly availability windows"
            }
        },
        "/v1/experts/{id}/slots": {
            "get": {
                "tags": ["experts"],
                "summary": "Bookable slots for a day"
            }
        },
        "/v1/bookings": {
            "post": {
                "tags": ["bookings"],
                "summary": "Create a booking",
                "security": [{"BearerAuth": []}]
            }
        },
        "/v1/bookings/{reference}/feedback": {
            "post": {
                "tags": ["bookings"],
                "summary": "Rate a completed session",
                "security": [{"BearerAuth": []}]
            }
        },
        "/v1/dashboard": {
            "get": {
                "tags": ["dashboards"],
                "summary": "User dashboard",
                "security": [{"BearerAuth": []}]
            }
        },
        "/v1/expert-dashboard": {
            "get": {
                "tags": ["dashboards"],
                "summary": "Expert dashboard",
                "security": [{"BearerAuth": []}]
            }
        },
        "/v1/admin/experts": {
            "get": {
                "tags": ["admin"],
                "summary": "List all experts",
                "security": [{"BearerAuth": []}]
            },
            "post": {
                "tags": ["admin"],
                "summary": "Create an expert profile",
                "security": [{"BearerAuth": []}]
            }
        },
        "/v1/admin/experts/{id}/status": {
            "patch": {
                "tags": ["admin"],
                "summary": "Change an expert's status",
                "security": [{"BearerAuth": []}]
            }
        },
        "/v1/admin/experts/{id}/session-types": {
            "post": {
                "tags": ["admin"],
                "summary": "Add a session type to an expert",
                "security": [{"BearerAuth": []}]
            }
        },
        "/v1/admin/bookings": {
            "get": {
                "tags": ["admin"],
                "summary": "List all bookings",
                "security": [{"BearerAuth": []}]
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "SessionBook Booking API",
	Description:      "Expert session marketplace: directory, availability, bookings and dashboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
