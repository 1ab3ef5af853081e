// Package swagger holds the OpenAPI document served at /swagger/*.
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
            "name": "API Support"
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
        "/ticket": {
            "post": {
                "description": "Prices the given cart lines and renders the fixed-width ticket",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json",
                    "text/plain"
                ],
                "tags": [
                    "tickets"
                ],
                "summary": "Issue ticket",
                "parameters": [
                    {
                        "description": "Cart lines",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateTicketRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/TicketResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "CreateTicketRequest": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "maxItems": 1000,
                    "items": {
                        "$ref": "#/definitions/TicketItemRequest"
                    }
                }
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "line 1: invalid argument: illegal title"
                }
            }
        },
        "TicketItemRequest": {
            "type": "object",
            "properties": {
                "price": {
                    "type": "string",
                    "example": "20.00"
                },
                "quantity": {
                    "type": "integer",
                    "example": 4
                },
                "title": {
                    "type": "string",
                    "example": "Banana"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "NEW",
                        "REGULAR",
                        "SECOND_FREE",
                        "SALE"
                    ],
                    "example": "SECOND_FREE"
                }
            }
        },
        "TicketResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "123e4567-e89b-12d3-a456-426614174000"
                },
                "issued_at": {
                    "type": "string",
                    "example": "2024-01-15T10:30:00Z"
                },
                "item_count": {
                    "type": "integer",
                    "example": 4
                },
                "ticket": {
                    "type": "string"
                },
                "total": {
                    "type": "string",
                    "example": "$550.11"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Shopping Cart API",
	Description:      "Prices shopping carts and renders fixed-width tickets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
