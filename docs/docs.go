// Package docs holds the OpenAPI document for the service, registered with
// swaggo/swag so gin-swagger and the /docs page can serve it.
//
// Title, description and version are placeholders here; SetInfo overwrites
// them from configuration before the document is served or exported.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{escape .Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Root endpoint",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "Service banner",
                "operationId": "root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/responses.WelcomeResponse"
                        }
                    }
                }
            }
        },
        "/api/v1/hello/{name}": {
            "get": {
                "description": "Example endpoint",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Greetings"
                ],
                "summary": "Greet by name",
                "operationId": "hello",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Name to greet",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/responses.GreetingResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Health check endpoint",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "System"
                ],
                "summary": "Health check",
                "operationId": "health",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/responses.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "responses.GreetingResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Hello, World!"
                },
                "service": {
                    "type": "string",
                    "example": "hello-service"
                }
            }
        },
        "responses.HealthResponse": {
            "type": "object",
            "properties": {
                "service": {
                    "type": "string",
                    "example": "hello-service"
                },
                "status": {
                    "type": "string",
                    "example": "healthy"
                }
            }
        },
        "responses.WelcomeResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Welcome to hello-service"
                },
                "status": {
                    "type": "string",
                    "example": "running"
                },
                "version": {
                    "type": "string",
                    "example": "0.1.0"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "hello-service",
	Description:      "A minimal HTTP service",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
