package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the CMS API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>leadcore-cms — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public and admin CMS endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "leadcore-cms", "version": "v0.1.0" },
  "paths": {
    "/api/blogs": {
      "get": { "summary": "List published blog posts, newest first", "responses": { "200": { "description": "published posts" } } }
    },
    "/api/blogs/{slug}": {
      "get": { "summary": "Get a blog post by slug", "responses": { "200": { "description": "post" }, "404": { "description": "not found" } } }
    },
    "/api/case-studies": {
      "get": { "summary": "List published case studies in display order", "responses": { "200": { "description": "published case studies" } } }
    },
    "/api/case-studies/{slug}": {
      "get": { "summary": "Get a case study by slug", "responses": { "200": { "description": "case study" }, "404": { "description": "not found" } } }
    },
    "/api/pricing-plans": {
      "get": { "summary": "List visible pricing plans in display order", "responses": { "200": { "description": "visible plans" } } }
    },
    "/api/team-members": {
      "get": { "summary": "List visible team members in display order", "responses": { "200": { "description": "visible members" } } }
    },
    "/api/contact-methods": {
      "get": { "summary": "List visible contact methods in display order", "responses": { "200": { "description": "visible methods" } } }
    },
    "/api/auth/login": {
      "post": {
        "summary": "Admin login",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}},
        "responses": { "200": { "description": "access and session tokens" }, "401": { "description": "invalid credentials" } }
      }
    },
    "/api/auth/refresh": {
      "post": { "summary": "Exchange a session token for a new access token", "responses": { "200": { "description": "new access token" }, "401": { "description": "no active session" } } }
    },
    "/api/auth/logout": {
      "post": { "summary": "End the admin session", "responses": { "204": { "description": "logged out" } } }
    },
    "/api/admin/blogs": {
      "get": { "summary": "List all blog posts (drafts included)", "responses": { "200": { "description": "posts" } } },
      "post": { "summary": "Create a blog post", "responses": { "201": { "description": "created" }, "400": { "description": "validation failed" }, "409": { "description": "slug conflict" } } }
    },
    "/api/admin/blogs/{id}/publish": {
      "post": { "summary": "Publish a blog post", "responses": { "200": { "description": "published" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
