// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/book": {
            "post": {
                "tags": ["bookings"],
                "summary": "Create a booking",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "booking", "in": "body", "required": true, "schema": {"$ref": "#/definitions/bookings.CreateBookingRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/bookings.BookingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/bookings": {
            "get": {
                "tags": ["bookings"],
                "summary": "List all bookings",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/bookings.Booking"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/booking/{id}": {
            "put": {
                "tags": ["bookings"],
                "summary": "Patch a booking",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "patch", "in": "body", "required": true, "schema": {"$ref": "#/definitions/bookings.UpdateBookingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/bookings.BookingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["bookings"],
                "summary": "Delete a booking",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/bookings.BookingResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/booking/payment/{id}": {
            "put": {
                "tags": ["bookings"],
                "summary": "Record payment amount and status",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payment", "in": "body", "required": true, "schema": {"$ref": "#/definitions/bookings.UpdatePaymentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/bookings.BookingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/bookings/invoice/{id}": {
            "get": {
                "tags": ["bookings"],
                "summary": "Fetch a booking for invoicing",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/bookings.InvoiceBookingResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/bookings/invoice/{id}/pdf": {
            "get": {
                "tags": ["invoices"],
                "summary": "Download a PDF receipt for a booking",
                "produces": ["application/pdf"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/generate-invoice": {
            "post": {
                "tags": ["invoices"],
                "summary": "Render an invoice image and share link",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "invoice", "in": "body", "required": true, "schema": {"$ref": "#/definitions/invoices.InvoiceRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/invoices.InvoiceResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "bookings.Booking": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "email": {"type": "string"},
                "contact": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "tripType": {"type": "string", "enum": ["oneway", "roundtrip"]},
                "date": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "passenger": {"type": "integer"},
                "paymentAmount": {"type": "number"},
                "paymentStatus": {"type": "string", "enum": ["pending", "paid", "failed"]},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "bookings.BookingResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "booking": {"$ref": "#/definitions/bookings.Booking"}
            }
        },
        "bookings.InvoiceBookingResponse": {
            "type": "object",
            "properties": {
                "booking": {"$ref": "#/definitions/bookings.Booking"}
            }
        },
        "bookings.CreateBookingRequest": {
            "type": "object",
            "required": ["email", "contact", "from", "to", "tripType", "passenger"],
            "properties": {
                "email": {"type": "string"},
                "contact": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "tripType": {"type": "string", "enum": ["oneway", "roundtrip"]},
                "date": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "passenger": {"type": "integer", "minimum": 1}
            }
        },
        "bookings.UpdateBookingRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "contact": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "tripType": {"type": "string", "enum": ["oneway", "roundtrip"]},
                "date": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "passenger": {"type": "integer", "minimum": 1},
                "paymentAmount": {"type": "number", "minimum": 0},
                "paymentStatus": {"type": "string", "enum": ["pending", "paid", "failed"]}
            }
        },
        "bookings.UpdatePaymentRequest": {
            "type": "object",
            "required": ["paymentAmount", "paymentStatus"],
            "properties": {
                "paymentAmount": {"type": "number", "minimum": 0},
                "paymentStatus": {"type": "string", "enum": ["pending", "paid", "failed"]}
            }
        },
        "invoices.InvoiceRequest": {
            "type": "object",
            "required": ["contactNo", "customerName", "from", "to", "date", "amount"],
            "properties": {
                "contactNo": {"type": "string"},
                "customerName": {"type": "string"},
                "from": {"type": "string"},
                "to": {"type": "string"},
                "date": {"type": "string"},
                "amount": {"type": "number", "minimum": 0}
            }
        },
        "invoices.InvoiceResult": {
            "type": "object",
            "properties": {
                "imageUrl": {"type": "string"},
                "whatsappURL": {"type": "string"}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tripbook API",
	Description:      "Trip booking lifecycle and invoice rendering.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
