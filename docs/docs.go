// Package docs holds the Swagger document served at /swagger/index.html.
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
        "/api/chart": {
            "get": {
                "description": "Deterministic chart with planet placements, aspects, houses and element balance",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "chart"
                ],
                "summary": "Generate a birth chart",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Birth date (YYYY-MM-DD)",
                        "name": "date",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Birth time (HH:MM), defaults to the configured clock",
                        "name": "time",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Birth place label",
                        "name": "place",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.BirthChart"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/chart/image": {
            "get": {
                "produces": [
                    "image/png"
                ],
                "tags": [
                    "chart"
                ],
                "summary": "Render a birth chart wheel",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Birth date (YYYY-MM-DD)",
                        "name": "date",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Birth time (HH:MM)",
                        "name": "time",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Birth place label",
                        "name": "place",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/compatibility/signs": {
            "get": {
                "description": "Symmetric 0-100 score for two signs; unknown signs score 50",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "compatibility"
                ],
                "summary": "Score sign compatibility",
                "parameters": [
                    {
                        "type": "string",
                        "description": "First sign id (e.g. aries)",
                        "name": "a",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Second sign id (e.g. leo)",
                        "name": "b",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "description": "Include breakdown, strengths and challenges",
                        "name": "detailed",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/five-grid": {
            "get": {
                "description": "Stroke-count analysis of a CJK surname and given name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "numerology"
                ],
                "summary": "Five-grid name analysis",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Surname",
                        "name": "surname",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Given name",
                        "name": "given",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.NameAnalysis"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/numerology": {
            "get": {
                "description": "Life, expression, soul, personality, birthday, maturity and personal year numbers",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "numerology"
                ],
                "summary": "Numerology report",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Full name (Latin or CJK)",
                        "name": "name",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Birth date (YYYY-MM-DD)",
                        "name": "date",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "Target year for the personal year number",
                        "name": "year",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.NumerologyReport"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/numerology/compatibility": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "numerology"
                ],
                "summary": "Score life number compatibility",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "First life number",
                        "name": "a",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Second life number",
                        "name": "b",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "integer"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/numerology/life-numbers/{number}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "numerology"
                ],
                "summary": "Life number profile",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Life number (1-9, 11, 22, 33)",
                        "name": "number",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.LifeNumberProfile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/profile": {
            "post": {
                "description": "Birth chart, sun sign, numerology report and, when names are given, a five-grid analysis",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Build a combined profile",
                "parameters": [
                    {
                        "description": "Profile request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/domain.ProfileRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.DivinationProfile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/zodiac": {
            "get": {
                "description": "Returns the zodiac sign whose date range contains the birth date",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "zodiac"
                ],
                "summary": "Resolve a sun sign",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Birth date (YYYY-MM-DD)",
                        "name": "date",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.ZodiacSign"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/zodiac/signs": {
            "get": {
                "description": "Returns the twelve signs in ecliptic order",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "zodiac"
                ],
                "summary": "List zodiac signs",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Aspect": {
            "type": "object",
            "properties": {
                "angle": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "nature": {
                    "type": "string"
                }
            }
        },
        "domain.BirthChart": {
            "type": "object",
            "properties": {
                "ascendant": {
                    "type": "string"
                },
                "aspects": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.DetectedAspect"
                    }
                },
                "birth_date": {
                    "type": "string"
                },
                "birth_time": {
                    "type": "string"
                },
                "dominant_element": {
                    "type": "string"
                },
                "dominant_quality": {
                    "type": "string"
                },
                "elements": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "houses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.HouseOccupancy"
                    }
                },
                "moon_sign": {
                    "type": "string"
                },
                "place": {
                    "type": "string"
                },
                "placements": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.PlanetaryPlacement"
                    }
                },
                "qualities": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "sun_sign": {
                    "type": "string"
                }
            }
        },
        "domain.DetectedAspect": {
            "type": "object",
            "properties": {
                "aspect": {
                    "$ref": "#/definitions/domain.Aspect"
                },
                "exactness": {
                    "type": "number"
                },
                "first": {
                    "type": "string"
                },
                "second": {
                    "type": "string"
                },
                "separation": {
                    "type": "number"
                }
            }
        },
        "domain.DivinationProfile": {
            "type": "object",
            "properties": {
                "chart": {
                    "$ref": "#/definitions/domain.BirthChart"
                },
                "five_grid": {
                    "$ref": "#/definitions/domain.NameAnalysis"
                },
                "numerology": {
                    "$ref": "#/definitions/domain.NumerologyReport"
                },
                "sun": {
                    "$ref": "#/definitions/domain.ZodiacSign"
                }
            }
        },
        "domain.Fortune": {
            "type": "object",
            "properties": {
                "career": {
                    "$ref": "#/definitions/domain.FortuneReading"
                },
                "health": {
                    "$ref": "#/definitions/domain.FortuneReading"
                },
                "love": {
                    "$ref": "#/definitions/domain.FortuneReading"
                },
                "overall": {
                    "$ref": "#/definitions/domain.FortuneReading"
                },
                "wealth": {
                    "$ref": "#/definitions/domain.FortuneReading"
                }
            }
        },
        "domain.FortuneReading": {
            "type": "object",
            "properties": {
                "band": {
                    "type": "string"
                },
                "score": {
                    "type": "integer"
                }
            }
        },
        "domain.House": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "life_area": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "domain.HouseOccupancy": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "count": {
                    "type": "integer"
                },
                "house": {
                    "$ref": "#/definitions/domain.House"
                },
                "planets": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.LifeNumberProfile": {
            "type": "object",
            "properties": {
                "career": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "compatible": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "health": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "love": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "lucky_colors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "lucky_stones": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "meaning": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "number": {
                    "type": "integer"
                },
                "personality": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "strengths": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "weaknesses": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.LuckyElements": {
            "type": "object",
            "properties": {
                "colors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "directions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "element": {
                    "type": "string"
                },
                "numbers": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "season": {
                    "type": "string"
                }
            }
        },
        "domain.MonthDay": {
            "type": "object",
            "properties": {
                "day": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer"
                }
            }
        },
        "domain.NameAnalysis": {
            "type": "object",
            "properties": {
                "destiny_number": {
                    "type": "integer"
                },
                "earth_number": {
                    "type": "integer"
                },
                "external_number": {
                    "type": "integer"
                },
                "fortune": {
                    "$ref": "#/definitions/domain.Fortune"
                },
                "given_name": {
                    "type": "string"
                },
                "lucky_elements": {
                    "$ref": "#/definitions/domain.LuckyElements"
                },
                "personality_number": {
                    "type": "integer"
                },
                "surname": {
                    "type": "string"
                },
                "total_strokes": {
                    "type": "integer"
                }
            }
        },
        "domain.NumerologyReport": {
            "type": "object",
            "properties": {
                "birth_date": {
                    "type": "string"
                },
                "birthday_number": {
                    "type": "integer"
                },
                "expression_number": {
                    "type": "integer"
                },
                "life_number": {
                    "type": "integer"
                },
                "life_profile": {
                    "$ref": "#/definitions/domain.LifeNumberProfile"
                },
                "maturity_number": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "personal_year": {
                    "type": "integer"
                },
                "personal_year_for": {
                    "type": "integer"
                },
                "personality_number": {
                    "type": "integer"
                },
                "soul_number": {
                    "type": "integer"
                }
            }
        },
        "domain.PlanetaryPlacement": {
            "type": "object",
            "properties": {
                "degree": {
                    "type": "integer"
                },
                "house": {
                    "type": "integer"
                },
                "planet": {
                    "type": "string"
                },
                "position": {
                    "type": "number"
                },
                "sign": {
                    "type": "string"
                }
            }
        },
        "domain.ProfileRequest": {
            "type": "object",
            "properties": {
                "birth_date": {
                    "type": "string"
                },
                "birth_time": {
                    "type": "string"
                },
                "given_name": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "place": {
                    "type": "string"
                },
                "surname": {
                    "type": "string"
                },
                "year": {
                    "type": "integer"
                }
            }
        },
        "domain.ZodiacSign": {
            "type": "object",
            "properties": {
                "compatible": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "element": {
                    "type": "string"
                },
                "end": {
                    "$ref": "#/definitions/domain.MonthDay"
                },
                "id": {
                    "type": "string"
                },
                "lucky_colors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "lucky_numbers": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "name": {
                    "type": "string"
                },
                "quality": {
                    "type": "string"
                },
                "ruler": {
                    "type": "string"
                },
                "start": {
                    "$ref": "#/definitions/domain.MonthDay"
                },
                "strengths": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "symbol": {
                    "type": "string"
                },
                "traits": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "weaknesses": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
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
	Schemes:          []string{},
	Title:            "Divination API",
	Description:      "Deterministic astrology birth charts, sign compatibility and numerology with OpenTelemetry tracing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
