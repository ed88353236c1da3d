// Package docs holds the swagger document served at /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/api/contacts": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "List contacts",
                "parameters": [
                    {"type": "boolean", "name": "favorite", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.ContactResponse"}}},
                    "401": {"description": "Not authorized", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Create contact",
                "parameters": [
                    {"name": "contact", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateContactRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ContactResponse"}},
                    "400": {"description": "Missing or invalid fields", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            }
        },
        "/api/contacts/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Get contact",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ContactResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Update contact",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "contact", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateContactRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ContactResponse"}},
                    "400": {"description": "Missing fields", "schema": {"$ref": "#/definitions/apperrors.AppError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Delete contact",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DeleteContactResponse"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/dto.DeleteContactResponse"}}
                }
            }
        },
        "/api/contacts/{id}/favorite": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Set favorite flag",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "favorite", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateFavoriteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ContactResponse"}},
                    "400": {"description": "missing field favorite", "schema": {"$ref": "#/definitions/apperrors.AppError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            }
        },
        "/api/users": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Change subscription",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateSubscriptionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            }
        },
        "/api/users/avatars": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Upload avatar",
                "parameters": [{"type": "file", "name": "avatar", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AvatarResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperrors.AppError"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            }
        },
        "/api/users/current": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "401": {"description": "Not authorized", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            }
        },
        "/api/users/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Login",
                "parameters": [
                    {"name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Email or password is wrong", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            }
        },
        "/api/users/logout": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Logout",
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Not authorized", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            }
        },
        "/api/users/signup": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Signup",
                "parameters": [
                    {"name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.SignupResponse"}},
                    "409": {"description": "Email in use", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            }
        },
        "/api/users/verify": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Resend verification email",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ResendVerificationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperrors.AppError"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            }
        },
        "/api/users/verify/{verificationToken}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Verify email",
                "parameters": [{"type": "string", "name": "verificationToken", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.MessageResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/apperrors.AppError"}}
                }
            }
        }
    },
    "definitions": {
        "apperrors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "domain": {"type": "string"},
                "message": {"type": "string"},
                "details": {}
            }
        },
        "dto.ContactResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "favorite": {"type": "boolean"},
                "owner": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.CreateContactRequest": {
            "type": "object",
            "required": ["name", "email", "phone"],
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 50},
                "email": {"type": "string"},
                "phone": {"type": "string", "minLength": 6, "maxLength": 20}
            }
        },
        "dto.UpdateContactRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 50},
                "email": {"type": "string"},
                "phone": {"type": "string", "minLength": 6, "maxLength": 20}
            }
        },
        "dto.UpdateFavoriteRequest": {
            "type": "object",
            "properties": {"favorite": {"type": "boolean"}}
        },
        "dto.DeleteContactResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "deletedContact": {"$ref": "#/definitions/dto.ContactResponse"}
            }
        },
        "dto.SignupRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.ResendVerificationRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}}
        },
        "dto.UpdateSubscriptionRequest": {
            "type": "object",
            "required": ["subscription"],
            "properties": {"subscription": {"type": "string", "enum": ["starter", "pro", "business"]}}
        },
        "dto.UserResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "subscription": {"type": "string"},
                "avatarURL": {"type": "string"}
            }
        },
        "dto.SignupResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/dto.UserResponse"}}
        },
        "dto.LoginData": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/dto.UserResponse"}
            }
        },
        "dto.LoginResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "code": {"type": "integer"},
                "data": {"$ref": "#/definitions/dto.LoginData"}
            }
        },
        "dto.AvatarResponse": {
            "type": "object",
            "properties": {"avatarURL": {"type": "string"}}
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Contacts API",
	Description:      "Contacts book with per-user ownership, JWT auth, email verification and avatars.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
